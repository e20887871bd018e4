package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "./data/roomease.db", cfg.DBPath)
	assert.Equal(t, "0 9 * * *", cfg.ReminderSchedule)
	assert.Equal(t, time.Second, cfg.AssistantDelay)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("ASSISTANT_DELAY", "250ms")
	t.Setenv("NOTIFICATION_CAPACITY", "10")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 250*time.Millisecond, cfg.AssistantDelay)
	assert.Equal(t, 10, cfg.NotificationCapacity)
}

func TestLoadReminderSchedule(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty disables", "", ""},
		{"off disables", "off", ""},
		{"none disables", "NONE", ""},
		{"custom schedule", "30 8 * * 1", "30 8 * * 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REMINDER_SCHEDULE", tt.value)

			cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.NoError(t, err)

			assert.Equal(t, tt.want, cfg.ReminderSchedule)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestLoadFromDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_PATH=/tmp/from-file.db\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")
	t.Cleanup(func() { os.Unsetenv("DB_PATH") })

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-file.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel, "the real environment wins over .env")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Addr:                 "127.0.0.1:8080",
			StoreBackend:         BackendSQLite,
			DBPath:               "./data/roomease.db",
			LogLevel:             "info",
			ReminderSchedule:     "0 9 * * *",
			NotificationCapacity: 50,
			AssistantDelay:       time.Second,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"valid", func(*Config) {}, ""},
		{"reminders disabled", func(c *Config) { c.ReminderSchedule = "" }, ""},
		{"unknown backend", func(c *Config) { c.StoreBackend = "postgres" }, "invalid store backend"},
		{"sqlite without path", func(c *Config) { c.DBPath = "" }, "DB_PATH"},
		{"warning log level", func(c *Config) { c.LogLevel = "warning" }, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"bad schedule", func(c *Config) { c.ReminderSchedule = "every day" }, "invalid reminder schedule"},
		{"zero capacity", func(c *Config) { c.NotificationCapacity = 0 }, "notification capacity"},
		{"negative delay", func(c *Config) { c.AssistantDelay = -time.Second }, "assistant delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
