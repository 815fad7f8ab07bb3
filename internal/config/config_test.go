package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("port = %s", cfg.Port)
	}
	if cfg.DataBackend != "bolt" {
		t.Fatalf("backend = %s", cfg.DataBackend)
	}
	if cfg.AMQPURL != "" {
		t.Fatalf("AMQP should be disabled by default, got %s", cfg.AMQPURL)
	}
	if cfg.StatsYearFrom != 2026 || cfg.StatsYearTo != 2050 {
		t.Fatalf("year window = %d-%d", cfg.StatsYearFrom, cfg.StatsYearTo)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("STATS_YEAR_FROM", "2020")

	cfg := Load()
	if cfg.Port != "9000" || cfg.DataBackend != "sqlite" || cfg.StatsYearFrom != 2020 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "must be between"},
		{"unknown backend", func(c *Config) { c.DataBackend = "redis" }, "invalid data backend"},
		{"empty bolt path", func(c *Config) { c.BoltDBPath = "" }, "bolt database path"},
		{"empty sqlite path", func(c *Config) { c.DataBackend = "sqlite"; c.SQLiteDBPath = "" }, "SQLite database path"},
		{"bad amqp scheme", func(c *Config) { c.AMQPURL = "http://broker" }, "invalid AMQP URL scheme"},
		{"empty amqp queue", func(c *Config) { c.AMQPURL = "amqp://guest@localhost"; c.AMQPQueue = "" }, "queue name cannot be empty"},
		{"inverted year window", func(c *Config) { c.StatsYearFrom = 2050; c.StatsYearTo = 2026 }, "stats year window"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}

	// Memory backend needs no paths at all.
	cfg := Load()
	cfg.DataBackend = "memory"
	cfg.BoltDBPath = ""
	cfg.SQLiteDBPath = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory backend: %v", err)
	}
}
