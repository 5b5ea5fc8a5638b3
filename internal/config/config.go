package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// devJWTSecret is the signing key fallback for non-production environments.
const devJWTSecret = "vyeya-dev-secret-key"

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string
	JWTExpiry  time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTExpiry:  parseExpiry(os.Getenv("JWT_EXPIRES_IN")),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "3000"
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv == "production" {
			log.Fatal("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg
}

// parseExpiry accepts Go duration strings ("168h"). Tokens live 7 days by default.
func parseExpiry(raw string) time.Duration {
	if raw == "" {
		return 7 * 24 * time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid JWT_EXPIRES_IN %q, falling back to 7 days", raw)
		return 7 * 24 * time.Hour
	}
	return d
}
