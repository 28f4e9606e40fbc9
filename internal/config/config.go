// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Telegram TelegramConfig
	Reminder ReminderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string
	DataDir      string
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// TelegramConfig holds the build-time fallback credentials for the
// notification bot. Values stored in the settings table take precedence.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// ReminderConfig holds reminder dispatch loop settings.
type ReminderConfig struct {
	CheckInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         getEnv("SERVER_ADDR", ":8090"),
			DataDir:      getEnv("DATA_DIR", "./data"),
			StaticDir:    getEnv("STATIC_DIR", "./static"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
		Reminder: ReminderConfig{
			CheckInterval: getDurationEnv("REMINDER_CHECK_INTERVAL", time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
