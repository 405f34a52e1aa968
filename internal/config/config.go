package config

import (
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the recurrence worker.
type Config struct {
	DatabaseURL   string
	SweepInterval time.Duration
	LogLevel      string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SweepInterval: parseInterval(strings.TrimSpace(os.Getenv("SWEEP_INTERVAL_HOURS"))),
		LogLevel:      strings.TrimSpace(os.Getenv("LOG_LEVEL")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "planner.db"
	}

	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = time.Hour
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
