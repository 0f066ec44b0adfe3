package handler

import (
	"errors"
	"net/http"

	"sarasblogg/internal/middleware"
	"sarasblogg/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required,len=6"`
}

type ResetReq struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type DeleteSelfReq struct {
	Password string `json:"password" binding:"required"`
}

type RoleReq struct {
	Role string `json:"role" binding:"required"`
}

type ChangeUserNameReq struct {
	UserName string `json:"user_name" binding:"required"`
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.Register(req.Username, req.Password, req.Email, req.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"AccessToken": token.AccessToken, "RefreshToken": token.RefreshToken})
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(middleware.UserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// TokenRefresh trades a refresh token for a new pair. Roles are
// re-read from the database on the way.
func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	token, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"AccessToken": token.AccessToken, "RefreshToken": token.RefreshToken})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "reset password successfully"})
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.ChangePassword(middleware.UserID(c), req.OldPassword, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "change password successfully"})
}

func (h *UserHandler) Me(c *gin.Context) {
	view, err := h.svc.Me(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get profile failed"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// PersonalData exports the caller's stored data.
func (h *UserHandler) PersonalData(c *gin.Context) {
	data, err := h.svc.PersonalData(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "export failed"})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *UserHandler) DeleteSelf(c *gin.Context) {
	var req DeleteSelfReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	if err := h.svc.DeleteSelf(middleware.UserID(c), req.Password); err != nil {
		if errors.Is(err, service.ErrRootUserProtected) {
			c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *UserHandler) ChangeUserName(c *gin.Context) {
	var req ChangeUserNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.ChangeUserName(middleware.UserID(c), req.UserName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

/*
Admin endpoints
*/

func (h *UserHandler) ListUsers(c *gin.Context) {
	views, err := h.svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list users failed"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	view, err := h.svc.GetUser(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get user failed"})
		return
	}
	if view == nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *UserHandler) GetUserRoles(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	roles, err := h.svc.UserRoles(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get roles failed"})
		return
	}
	c.JSON(http.StatusOK, roles)
}

// AdminChangeUserName renames another account.
func (h *UserHandler) AdminChangeUserName(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	var req ChangeUserNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.ChangeUserName(id, req.UserName); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	if err := h.svc.DeleteUser(id); err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, service.ErrRootUserProtected):
			status = http.StatusForbidden
		case errors.Is(err, service.ErrUserNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *UserHandler) AddRole(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	var req RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.AddRole(id, req.Role); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

func (h *UserHandler) RemoveRole(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}
	var req RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	if err := h.svc.RemoveRole(id, req.Role); err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, service.ErrRootUserProtected):
			status = http.StatusForbidden
		case errors.Is(err, service.ErrUserNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
