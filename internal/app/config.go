package app

import (
	"os"
	"strconv"
	"time"

	"github.com/teamhaven/haven/internal/service"
)

type Config struct {
	JWTSecret     string        // Required: HMAC secret for HS512 token signing
	AccessTTL     time.Duration // Optional: access token lifetime (default: 30m)
	RefreshTTL    time.Duration // Optional: refresh token lifetime (default: 14 days)
	AccessHeader  string        // Optional: response header carrying the access token (default: Authorization)
	RefreshHeader string        // Optional: response header carrying the refresh token (default: Authorization-Refresh)
	TokenPrefix   string        // Optional: prefix on token header values (default: "Bearer ")

	PasswordMode service.PasswordMode // Optional: PLAIN or PRE_HASHED (default: PLAIN)

	DatabaseFile string // Optional: path to SQLite database file (default: ./haven.db)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)
	DataDir      string // Optional: directory for encrypted record blobs (default: ./data)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AccessTTL:     getEnvDurationOrDefault("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTTL:    getEnvDurationOrDefault("REFRESH_TOKEN_TTL", 14*24*time.Hour),
		AccessHeader:  getEnvOrDefault("ACCESS_TOKEN_HEADER", "Authorization"),
		RefreshHeader: getEnvOrDefault("REFRESH_TOKEN_HEADER", "Authorization-Refresh"),
		TokenPrefix:   getEnvOrDefault("TOKEN_PREFIX", "Bearer "),

		PasswordMode: service.PasswordMode(getEnvOrDefault("PASSWORD_MODE", "PLAIN")),

		DatabaseFile: getEnvOrDefault("DATABASE_FILE", "haven.db"),
		PepperFile:   getEnvOrDefault("PEPPER_FILE", "pepper"),
		DataDir:      getEnvOrDefault("DATA_DIR", "data"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
