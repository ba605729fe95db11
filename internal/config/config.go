package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	ServerAddr  string
	DatabaseURL string

	// RedisURL enables the menu cache and order event publishing when set.
	// Empty means the service runs in DB-only mode.
	RedisURL string

	MenuCacheTTL        time.Duration
	MenuRefreshInterval time.Duration
	OrderEventsChannel  string

	StaffUsername string
	StaffPassword string
	AdminUsername string
	AdminPassword string
}

// LoadServerConfig reads server config from the environment (optionally
// seeded from a .env file) or returns defaults.
func LoadServerConfig() (*ServerConfig, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	// Non-positive values fall back to the defaults; a zero refresh
	// interval would be an invalid ticker period.
	cacheTTL := 60 * time.Second
	if v := os.Getenv("MENU_CACHE_TTL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			cacheTTL = time.Duration(i) * time.Second
		}
	}

	refresh := 300 * time.Second
	if v := os.Getenv("MENU_REFRESH_INTERVAL"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			refresh = time.Duration(i) * time.Second
		}
	}

	return &ServerConfig{
		ServerAddr:          envOrDefault("SERVER_ADDR", ":8000"),
		DatabaseURL:         envOrDefault("DATABASE_URL", "postgres://postgres:postgres@db:5432/mini_erp?sslmode=disable"),
		RedisURL:            os.Getenv("REDIS_URL"),
		MenuCacheTTL:        cacheTTL,
		MenuRefreshInterval: refresh,
		OrderEventsChannel:  envOrDefault("ORDER_EVENTS_CHANNEL", "order-events"),
		StaffUsername:       envOrDefault("STAFF_USER", "staff"),
		StaffPassword:       envOrDefault("STAFF_PASSWORD", "staffpass"),
		AdminUsername:       envOrDefault("ADMIN_USER", "admin"),
		AdminPassword:       envOrDefault("ADMIN_PASSWORD", "password"),
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
