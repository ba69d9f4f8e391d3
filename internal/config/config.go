package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverMongo = "mongo"
	DriverFile  = "file"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	StoreDriver   string
	MongoURL      string
	MongoDatabase string
	DataDir       string

	RedisURL string

	JWTSecret string
	TokenTTL  time.Duration

	OpenRouterAPIKey string
	OpenRouterURL    string
	OpenRouterModel  string
	AlAdhanBaseURL   string
	UpstreamTimeout  time.Duration

	UploadFolder string

	RateLimitWindow time.Duration
	RateLimitMax    int
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		StoreDriver:   getEnv("STORE_DRIVER", DriverFile),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("DB_NAME", "ummahconnect"),
		DataDir:       getEnv("DATA_DIR", "./data"),

		RedisURL: os.Getenv("REDIS_URL"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterURL:    getEnv("OPENROUTER_API_URL", "https://openrouter.ai/api/v1/chat/completions"),
		OpenRouterModel:  getEnv("OPENROUTER_MODEL", "microsoft/phi-3-mini-128k-instruct:free"),
		AlAdhanBaseURL:   getEnv("ALADHAN_BASE_URL", "https://api.aladhan.com/v1"),

		UploadFolder: getEnv("UPLOAD_FOLDER", "ummahconnect"),
	}

	if cfg.StoreDriver != DriverMongo && cfg.StoreDriver != DriverFile {
		return nil, fmt.Errorf("invalid STORE_DRIVER %q (want %q or %q)", cfg.StoreDriver, DriverMongo, DriverFile)
	}

	var err error
	cfg.TokenTTL, err = parseDuration(getEnv("TOKEN_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.UpstreamTimeout, err = parseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	cfg.RateLimitWindow, err = parseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.RateLimitMax, err = strconv.Atoi(getEnv("RATE_LIMIT_MAX", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_MAX: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
