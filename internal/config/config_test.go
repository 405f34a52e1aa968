package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SWEEP_INTERVAL_HOURS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.DatabaseURL != "planner.db" {
		t.Errorf("DatabaseURL = %q, want planner.db", cfg.DatabaseURL)
	}
	if cfg.SweepInterval != time.Hour {
		t.Errorf("SweepInterval = %v, want 1h", cfg.SweepInterval)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "data/planner.db")
	t.Setenv("SWEEP_INTERVAL_HOURS", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.DatabaseURL != "data/planner.db" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.SweepInterval != 2*time.Hour {
		t.Errorf("SweepInterval = %v, want 2h", cfg.SweepInterval)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	for _, raw := range []string{"abc", "-3", "0"} {
		t.Setenv("SWEEP_INTERVAL_HOURS", raw)
		if cfg := Load(); cfg.SweepInterval != time.Hour {
			t.Errorf("interval %q: got %v, want the 1h default", raw, cfg.SweepInterval)
		}
	}
}
