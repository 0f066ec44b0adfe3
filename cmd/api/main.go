package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"sarasblogg/internal/model"
	"sarasblogg/internal/pkg"
	"sarasblogg/internal/repository/mysql"
	"sarasblogg/internal/repository/redis"
	"sarasblogg/internal/router"
	"sarasblogg/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	cfg := pkg.LoadConfig()

	if err := pkg.InitLogger(false); err != nil {
		panic(err)
	}
	pkg.InitJWT(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MysqlDSN); err != nil {
		panic(err)
	}
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.UserRole{},
		&model.Blogg{},
		&model.BloggOutbox{},
		&model.BloggImage{},
		&model.BloggLike{},
		&model.Comment{},
		&model.AboutMe{},
		&model.ContactMe{},
		&model.ForbiddenWord{},
	); err != nil {
		panic(err)
	}
	if err := seed(cfg); err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
	if err != nil {
		panic(err)
	}
	defer producer.Close()

	relayer := service.NewOutboxRelayer(producer, cfg.SMTP, cfg.FrontendBaseURL)
	go relayer.Run(ctx)

	r := router.InitRouter(cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		pkg.Log.Fatal("server exited", zap.Error(err))
	}
}

// seed makes sure the role catalogue and the site owner account exist.
func seed(cfg pkg.Config) error {
	roleRepo := &mysql.RoleRepository{}
	for _, name := range model.KnownRoles {
		if err := roleRepo.Ensure(name); err != nil {
			return err
		}
	}

	userRepo := &mysql.UserRepository{}
	owner, err := userRepo.FindByEmail(cfg.OwnerEmail)
	if err == nil {
		return roleRepo.AddToUser(owner.ID, model.RoleSuperadmin)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password, err := pkg.RandDigits(12)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner = &model.User{
		UserName:       "admin",
		Email:          cfg.OwnerEmail,
		Password:       string(hash),
		EmailConfirmed: true,
	}
	if err := userRepo.Create(owner); err != nil {
		return err
	}
	pkg.Log.Info("seeded owner account, reset the password via the email flow",
		zap.String("email", cfg.OwnerEmail))
	return roleRepo.AddToUser(owner.ID, model.RoleSuperadmin)
}
