package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	DatabaseURL          string
	AdminDatabaseURL     string
	DatabaseName         string
	LogDir               string
	LogRetentionDays     int
	MetricsDiskPath      string
	MetricsSampleSeconds int
}

func Load() Config {
	return Config{
		DatabaseURL:          mustEnv("DATABASE_URL"),
		AdminDatabaseURL:     envOr("ADMIN_DATABASE_URL", ""),
		DatabaseName:         envOr("DATABASE_NAME", "disasterresponse"),
		LogDir:               envOr("LOG_DIR", "storage/logs"),
		LogRetentionDays:     envOrInt("LOG_RETENTION_DAYS", 7),
		MetricsDiskPath:      envOr("METRICS_DISK_PATH", "storage"),
		MetricsSampleSeconds: envOrInt("METRICS_SAMPLE_INTERVAL", 5),
	}
}

func mustEnv(key string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		panic("missing env var: " + key)
	}
	return value
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func envOrInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
