package config

import (
	"testing"

	"github.com/dkachur/poker-nights/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POKER_DB_PATH", "")
	t.Setenv("POKER_CURRENCY", "")
	t.Setenv("POKER_OPEN_REPORT", "")
	t.Setenv("APP_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != "poker.db" {
		t.Fatalf("unexpected default db path: %q", cfg.DBPath)
	}
	if cfg.Currency != "UAH" {
		t.Fatalf("unexpected default currency: %q", cfg.Currency)
	}
	if !cfg.OpenReport {
		t.Fatalf("expected OpenReport=true by default")
	}
	if cfg.ReportHTMLPath == "" {
		t.Fatalf("expected a default report path")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected default log level: %s", cfg.LogLevel)
	}
}

func TestLoad_CurrencyValidation(t *testing.T) {
	t.Run("lowercase is normalized", func(t *testing.T) {
		t.Setenv("POKER_CURRENCY", "usd")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.Currency != "USD" {
			t.Fatalf("unexpected currency: %q", cfg.Currency)
		}
	})

	t.Run("non ISO length rejected", func(t *testing.T) {
		t.Setenv("POKER_CURRENCY", "HRYVNIA")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non three-letter currency")
		}
	})
}

func TestLoad_OpenReportParsing(t *testing.T) {
	t.Run("explicit false", func(t *testing.T) {
		t.Setenv("POKER_OPEN_REPORT", "false")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.OpenReport {
			t.Fatalf("expected OpenReport=false")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("POKER_OPEN_REPORT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid POKER_OPEN_REPORT")
		}
	})
}

func TestLoad_LogLevelParsing(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"warn":    logging.LevelWarn,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
		"bogus":   logging.LevelInfo,
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("POKER_CURRENCY", "")
			t.Setenv("POKER_OPEN_REPORT", "")
			t.Setenv("APP_LOG_LEVEL", raw)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("load config: %v", err)
			}
			if cfg.LogLevel != want {
				t.Fatalf("level %q: got %s, want %s", raw, cfg.LogLevel, want)
			}
		})
	}
}
