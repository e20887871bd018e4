// Package config loads RoomEase settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// DefaultReminderSchedule applies when REMINDER_SCHEDULE is not set at all.
// Setting it to an empty string, "off" or "none" disables reminders.
const DefaultReminderSchedule = "0 9 * * *"

// Backends accepted by STORE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	// Local API
	Addr       string `env:"ADDR" envDefault:"127.0.0.1:8080"`
	StaticPath string `env:"STATIC_PATH"`

	// Persistence
	StoreBackend string `env:"STORE_BACKEND" envDefault:"sqlite"`
	DBPath       string `env:"DB_PATH" envDefault:"./data/roomease.db"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Notifications
	ReminderSchedule     string `env:"REMINDER_SCHEDULE"`
	NotificationCapacity int    `env:"NOTIFICATION_CAPACITY" envDefault:"50"`

	// Assistant
	AssistantDelay time.Duration `env:"ASSISTANT_DELAY" envDefault:"1s"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	// Missing .env files are normal outside local development
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.ReminderSchedule = reminderSchedule(cfg.ReminderSchedule)
	return cfg, nil
}

// reminderSchedule resolves REMINDER_SCHEDULE. envDefault cannot tell an
// unset variable from an empty one, so the default is applied here.
func reminderSchedule(value string) string {
	if _, ok := os.LookupEnv("REMINDER_SCHEDULE"); !ok {
		return DefaultReminderSchedule
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "off", "none":
		return ""
	default:
		return strings.TrimSpace(value)
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if strings.TrimSpace(c.Addr) == "" {
		errors = append(errors, "listen address cannot be empty")
	}

	switch c.StoreBackend {
	case BackendSQLite:
		if c.DBPath == "" {
			errors = append(errors, "DB_PATH cannot be empty when using the sqlite backend")
		}
	case BackendMemory:
	default:
		errors = append(errors, fmt.Sprintf("invalid store backend '%s': must be one of [%s %s]", c.StoreBackend, BackendSQLite, BackendMemory))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if c.ReminderSchedule != "" {
		if _, err := cron.ParseStandard(c.ReminderSchedule); err != nil {
			errors = append(errors, fmt.Sprintf("invalid reminder schedule '%s': %v", c.ReminderSchedule, err))
		}
	}

	if c.NotificationCapacity < 1 || c.NotificationCapacity > 1000 {
		errors = append(errors, fmt.Sprintf("invalid notification capacity %d: must be between 1 and 1000", c.NotificationCapacity))
	}

	if c.AssistantDelay < 0 || c.AssistantDelay > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid assistant delay %v: must be between 0 and 1m", c.AssistantDelay))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}
