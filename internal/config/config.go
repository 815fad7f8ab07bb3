package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP Server
	Port string

	// Persistence backend: bolt (default), sqlite or memory.
	DataBackend  string
	BoltDBPath   string
	SQLiteDBPath string

	// Optional mutation-event publishing. Disabled when AMQPURL is empty.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Statistics year window offered by the presentation layer. The
	// aggregator itself accepts any year; this only bounds the picker.
	StatsYearFrom int
	StatsYearTo   int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DataBackend:  getEnv("DATA_BACKEND", "bolt"),
		BoltDBPath:   getEnv("BOLT_DB_PATH", "./data/petledger.db"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/petledger.sqlite"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "petledger"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "ledger_events"),

		StatsYearFrom: getEnvInt("STATS_YEAR_FROM", 2026),
		StatsYearTo:   getEnvInt("STATS_YEAR_TO", 2050),
	}
}

// Validate checks the configuration and returns all problems as one error.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "bolt":
		if c.BoltDBPath == "" {
			errors = append(errors, "bolt database path cannot be empty when using bolt backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		}
	case "memory":
		// Nothing to validate; state will not survive a restart.
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [bolt sqlite memory]", c.DataBackend))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.StatsYearFrom > c.StatsYearTo {
		errors = append(errors, fmt.Sprintf("invalid stats year window %d-%d: start must not exceed end", c.StatsYearFrom, c.StatsYearTo))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
