package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Addr != ":8090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Reminder.CheckInterval != time.Minute {
		t.Errorf("CheckInterval = %s", cfg.Reminder.CheckInterval)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("REMINDER_CHECK_INTERVAL", "30s")

	cfg := Load()

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Telegram.BotToken != "env-token" {
		t.Errorf("BotToken = %q", cfg.Telegram.BotToken)
	}
	if cfg.Reminder.CheckInterval != 30*time.Second {
		t.Errorf("CheckInterval = %s", cfg.Reminder.CheckInterval)
	}
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("TEST_DURATION", "45")
	if got := getDurationEnv("TEST_DURATION", time.Minute); got != 45*time.Second {
		t.Errorf("bare integers should parse as seconds, got %s", got)
	}

	t.Setenv("TEST_DURATION", "garbage")
	if got := getDurationEnv("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("unparseable values should fall back, got %s", got)
	}
}
