// Package config loads bot settings from the environment, with an optional
// .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the bot's runtime settings
type Config struct {
	BotToken string
	ChatID   int64

	// Timezone is the IANA zone the weekly schedule runs in
	Timezone string

	// NotifyTime is the local HH:MM the scheduler posts the prompt at
	NotifyTime string

	// AdminIDs always pass the admin check regardless of chat role
	AdminIDs map[int64]bool

	RedisAddr     string
	RedisPassword string

	MetricsAddr string
}

// Load reads configuration from the environment. A missing .env file is not
// an error; missing required variables are.
func Load() (*Config, error) {
	_ = godotenv.Load()

	botToken, err := requireEnv("BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	chatIDRaw, err := requireEnv("CHAT_ID")
	if err != nil {
		return nil, err
	}
	chatID, err := strconv.ParseInt(chatIDRaw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_ID %q: %w", chatIDRaw, err)
	}

	cfg := &Config{
		BotToken:      botToken,
		ChatID:        chatID,
		Timezone:      getEnv("TIMEZONE", "Europe/Moscow"),
		NotifyTime:    getEnv("NOTIFY_TIME", "11:00"),
		AdminIDs:      parseAdminIDs(os.Getenv("ADMIN_IDS")),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		MetricsAddr:   getEnv("METRICS_ADDR", ":8000"),
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if _, _, err := ParseNotifyTime(cfg.NotifyTime); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the configured timezone. Load already validated it.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// ParseNotifyTime splits an HH:MM string into hour and minute
func ParseNotifyTime(value string) (int, int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid NOTIFY_TIME %q: expected HH:MM", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid NOTIFY_TIME hour %q", parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid NOTIFY_TIME minute %q", parts[1])
	}

	return hour, minute, nil
}

func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("missing required env var: %s", name)
	}
	return value, nil
}

func getEnv(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// parseAdminIDs accepts comma or whitespace separated numeric IDs and
// silently skips anything that does not parse
func parseAdminIDs(raw string) map[int64]bool {
	ids := make(map[int64]bool)
	for _, field := range strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}) {
		id, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			continue
		}
		ids[id] = true
	}
	return ids
}
