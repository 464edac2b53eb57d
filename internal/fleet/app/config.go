package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/fleetops/fleetcmd/pkg/jwtx"
)

type Config struct {
	Issuer    string // Optional: issuer claim for tokens (default: fleetcmd)
	JWTSecret string // Required: HMAC secret for signing tokens

	AccessTTL       time.Duration // Optional: access token lifetime (default: 30m)
	DeviceSecretTTL time.Duration // Optional: device-secret token lifetime (default: 720h)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./fleet.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:              getEnvOrDefault("FLEET_ISSUER", "fleetcmd"),
		JWTSecret:           os.Getenv("FLEET_JWT_SECRET"),
		AccessTTL:           getEnvDurationOrDefault("FLEET_ACCESS_TTL", jwtx.DefaultAccessTokenTTL),
		DeviceSecretTTL:     getEnvDurationOrDefault("FLEET_DEVICE_SECRET_TTL", jwtx.DefaultDeviceSecretTTL),
		DatabaseFile:        getEnvOrDefault("FLEET_DATABASE_FILE", "fleet.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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
