package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dkachur/poker-nights/internal/platform/logging"
)

// Config stores runtime configuration for the application.
type Config struct {
	DBPath         string `validate:"required"`
	ReportHTMLPath string `validate:"required"`
	ReportJSONPath string
	Currency       string `validate:"required,uppercase,len=3"`
	OpenReport     bool
	LogLevel       logging.Level
}

func Load() (Config, error) {
	openReport, err := strconv.ParseBool(getEnv("POKER_OPEN_REPORT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse POKER_OPEN_REPORT: %w", err)
	}

	cfg := Config{
		DBPath:         getEnv("POKER_DB_PATH", "poker.db"),
		ReportHTMLPath: getEnv("POKER_REPORT_PATH", filepath.Join(os.TempDir(), "poker_report.html")),
		ReportJSONPath: getEnv("POKER_REPORT_JSON_PATH", ""),
		Currency:       strings.ToUpper(getEnv("POKER_CURRENCY", "UAH")),
		OpenReport:     openReport,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
