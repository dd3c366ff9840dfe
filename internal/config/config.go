package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	WorldFile   string // empty means the built-in castle
	LogFile     string // empty discards logs, "-" is stderr
	Environment string
	LogLevel    slog.Level
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		WorldFile:   os.Getenv("WORLD_FILE"),
		LogFile:     os.Getenv("LOG_FILE"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	if cfg.WorldFile != "" {
		info, err := os.Stat(cfg.WorldFile)
		if err != nil {
			return nil, fmt.Errorf("WORLD_FILE: %w", err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("WORLD_FILE %s is a directory", cfg.WorldFile)
		}
	}

	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
