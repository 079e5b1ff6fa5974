package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr      string
	GinMode      string
	DBDSN        string
	JWTSecret    string
	ReportLocale string
}

func LoadEnv() Env {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/flextrack?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "flextrack-dev-secret-change-me"
	}

	locale := strings.TrimSpace(os.Getenv("REPORT_LOCALE"))
	if locale == "" {
		locale = "pt-BR"
	}

	return Env{
		AppAddr:      appAddr,
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:        dsn,
		JWTSecret:    secret,
		ReportLocale: locale,
	}
}

// JWTSecretBytes is used by the auth handlers and middleware without having to
// thread Env through every call site.
func JWTSecretBytes() []byte {
	return []byte(LoadEnv().JWTSecret)
}
