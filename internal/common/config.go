package common

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Ledger LedgerConfig
	Log    LogConfig
}

// LedgerConfig holds spreadsheet-related configuration
type LedgerConfig struct {
	SpreadsheetPath string
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is loaded first, best-effort.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Ledger: LedgerConfig{
			SpreadsheetPath: getEnv("BILLREADER_SPREADSHEET", "bills.xlsx"),
		},
		Log: LogConfig{
			Level: getEnv("BILLREADER_LOG_LEVEL", "info"),
		},
	}
}

// SlogLevel maps the configured log level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
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
