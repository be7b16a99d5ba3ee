package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string // debug | release | test
	FrontendURL string
	// Logging
	LogLevel  string
	LogFormat string // json | console
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	// Match generation
	MatchBatchSize int
	// Graceful shutdown
	ShutdownTimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		// Trailing slash would never equal a browser Origin header
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		MatchBatchSize:           getEnvInt("MATCH_BATCH_SIZE", 3),
		ShutdownTimeoutSeconds:   getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5),
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		log.Printf("WARNING: unknown GIN_MODE %q, using debug.", cfg.GinMode)
		cfg.GinMode = "debug"
	}

	if cfg.RateLimitWindowSeconds <= 0 || cfg.RateLimitGlobalThreshold <= 0 {
		log.Println("WARNING: rate limit settings must be positive. Rate limiting disabled.")
	}

	return cfg, nil
}

// RateLimitEnabled reports whether both limiter settings are usable
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitWindowSeconds > 0 && c.RateLimitGlobalThreshold > 0
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
