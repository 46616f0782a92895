package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	UploadDir   string
	BaseURL     string
	BcryptCost  int
	LogLevel    string
	LogFormat   string
}

func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		UploadDir:   getEnv("UPLOAD_DIR", "images"),
		BaseURL:     getEnv("BASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters, got %d", len(cfg.JWTSecret))
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}

	cost := getEnv("BCRYPT_COST", "10")
	parsed, err := strconv.Atoi(cost)
	if err != nil {
		return nil, fmt.Errorf("BCRYPT_COST must be an integer: %w", err)
	}
	if parsed < 4 || parsed > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", parsed)
	}
	cfg.BcryptCost = parsed

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
