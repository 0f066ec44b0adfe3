package pkg

import (
	"os"
	"strconv"
	"strings"
)

// Config collects everything read from the environment. main loads
// .env first (godotenv) so local dev works without exported vars.
type Config struct {
	Port     string
	MysqlDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string

	SMTP SMTPConfig

	PerspectiveAPIKey  string
	PerspectiveBaseURL string

	GitHub GitHubConfig

	KafkaBrokers []string
	KafkaTopic   string

	FrontendBaseURL string
	OwnerEmail      string
}

type GitHubConfig struct {
	Token        string
	UserName     string
	Repository   string
	Branch       string
	UploadFolder string
}

func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getenv("REDIS_DB", "0"))
	smtpPort, _ := strconv.Atoi(getenv("SMTP_PORT", "587"))

	return Config{
		Port:     getenv("PORT", "8080"),
		MysqlDSN: getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/sarasblogg?charset=utf8mb4&parseTime=True"),

		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		AccessSecret:  getenv("JWT_ACCESS_SECRET", "secret-key"),
		RefreshSecret: getenv("JWT_REFRESH_SECRET", "refresh-key"),

		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     getenv("SMTP_FROM", "SarasBlogg <no-reply@sarasblogg.se>"),
		},

		PerspectiveAPIKey:  os.Getenv("PERSPECTIVE_API_KEY"),
		PerspectiveBaseURL: getenv("PERSPECTIVE_BASE_URL", "https://commentanalyzer.googleapis.com"),

		GitHub: GitHubConfig{
			Token:        os.Getenv("GITHUB_UPLOAD_TOKEN"),
			UserName:     os.Getenv("GITHUB_UPLOAD_USER"),
			Repository:   os.Getenv("GITHUB_UPLOAD_REPO"),
			Branch:       getenv("GITHUB_UPLOAD_BRANCH", "main"),
			UploadFolder: getenv("GITHUB_UPLOAD_FOLDER", "uploads"),
		},

		KafkaBrokers: strings.Split(getenv("KAFKA_BROKERS", "127.0.0.1:9092"), ","),
		KafkaTopic:   getenv("KAFKA_TOPIC", "blogg-events"),

		FrontendBaseURL: getenv("FRONTEND_BASE_URL", "https://sarasblogg.onrender.com"),
		OwnerEmail:      getenv("OWNER_EMAIL", "admin@sarasblogg.se"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
