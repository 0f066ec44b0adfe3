package router

import (
	"sarasblogg/internal/handler"
	"sarasblogg/internal/middleware"
	"sarasblogg/internal/model"
	"sarasblogg/internal/pkg"
	"sarasblogg/internal/repository/mysql"
	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg pkg.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	emailSvc := service.NewEmailService(cfg.SMTP)
	classifier := service.NewContentSafetyService(cfg.PerspectiveAPIKey, cfg.PerspectiveBaseURL, &mysql.ForbiddenWordRepository{})
	commentSvc := service.NewCommentService(&mysql.CommentRepository{}, &mysql.RoleRepository{}, classifier)
	storage := service.NewGitHubStorage(cfg.GitHub)
	imageSvc := service.NewImageService(storage)
	bloggSvc := service.NewBloggService(imageSvc)
	userSvc := service.NewUserService(emailSvc, cfg.OwnerEmail)
	contactSvc := service.NewContactMeService(cfg.SMTP, cfg.OwnerEmail)

	user := handler.NewUserHandler(userSvc)
	email := handler.NewEmailHandler(emailSvc)
	blogg := handler.NewBloggHandler(bloggSvc)
	comment := handler.NewCommentHandler(commentSvc)
	image := handler.NewImageHandler(imageSvc)
	like := handler.NewLikeHandler()
	aboutMe := handler.NewAboutMeHandler()
	contact := handler.NewContactMeHandler(contactSvc)
	role := handler.NewRoleHandler()

	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/:scope/code", email.SendCode)
	}

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
		authGroup.POST("/change-username", user.ChangeUserName)
		authGroup.GET("/me", user.Me)
		authGroup.GET("/personal-data", user.PersonalData)
		authGroup.POST("/delete", user.DeleteSelf)
	}

	bloggGroup := r.Group("/api/blogg")
	{
		bloggGroup.GET("", blogg.List)
		bloggGroup.GET("/:id", blogg.Get)
	}
	bloggAdmin := r.Group("/api/blogg")
	bloggAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	{
		bloggAdmin.POST("", blogg.Create)
		bloggAdmin.PUT("/:id", blogg.Update)
		bloggAdmin.DELETE("/:id", blogg.Delete)
	}

	commentGroup := r.Group("/api/comment")
	{
		commentGroup.GET("", comment.List)
		commentGroup.GET("/:id", comment.Get)
		commentGroup.GET("/blogg/:bloggId", comment.ListByBlogg)
		// identity is optional here, the service binds it when present
		commentGroup.POST("", middleware.OptionalAuth(), comment.Create)
		commentGroup.DELETE("/:id", middleware.AuthMiddleware(), comment.Delete)
		commentGroup.DELETE("/blogg/:bloggId", middleware.AuthMiddleware(), comment.DeleteByBlogg)
	}

	imageGroup := r.Group("/api/image")
	{
		imageGroup.GET("/blogg/:bloggId", image.ListByBlogg)
	}
	imageAdmin := r.Group("/api/image")
	imageAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	{
		imageAdmin.POST("/blogg/:bloggId", image.Upload)
		imageAdmin.PUT("/blogg/:bloggId/order", image.Reorder)
		imageAdmin.DELETE("/blogg/:bloggId", image.DeleteByBlogg)
		imageAdmin.DELETE("/:id", image.Delete)
	}

	likeGroup := r.Group("/api/like")
	{
		likeGroup.GET("/blogg/:bloggId", like.Get)
		likeGroup.POST("/blogg/:bloggId", like.Add)
		likeGroup.DELETE("/blogg/:bloggId", like.Remove)
	}

	aboutGroup := r.Group("/api/aboutme")
	{
		aboutGroup.GET("", aboutMe.Get)
	}
	aboutAdmin := r.Group("/api/aboutme")
	aboutAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	{
		aboutAdmin.PUT("", aboutMe.Save)
		aboutAdmin.DELETE("/:id", aboutMe.Delete)
	}

	contactGroup := r.Group("/api/contact")
	{
		contactGroup.POST("", contact.Create)
	}
	contactAdmin := r.Group("/api/contact")
	contactAdmin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	{
		contactAdmin.GET("", contact.List)
		contactAdmin.DELETE("/:id", contact.Delete)
	}

	adminUsers := r.Group("/api/admin/users")
	adminUsers.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleAdmin, model.RoleSuperadmin))
	{
		adminUsers.GET("", user.ListUsers)
		adminUsers.GET("/:id", user.GetUser)
		adminUsers.GET("/:id/roles", user.GetUserRoles)
		adminUsers.DELETE("/:id", user.DeleteUser)
		adminUsers.POST("/:id/roles", user.AddRole)
		adminUsers.DELETE("/:id/roles", user.RemoveRole)
		adminUsers.PUT("/:id/username", user.AdminChangeUserName)
	}

	adminRoles := r.Group("/api/admin/roles")
	adminRoles.Use(middleware.AuthMiddleware(), middleware.RequireRoles(model.RoleSuperadmin))
	{
		adminRoles.GET("", role.List)
		adminRoles.POST("", role.Create)
		adminRoles.DELETE("/:name", role.Delete)
	}

	return r
}
