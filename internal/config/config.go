package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPPort        string
	RedisAddr       string
	KafkaBrokers    []string // empty disables event publishing
	OrdersDBPath    string
	MigrationsPath  string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	SimulateLatency bool
}

func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:    splitList(getEnv("KAFKA_BROKERS", "")),
		OrdersDBPath:    getEnv("ORDERS_DB_PATH", "./orders.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./internal/orders/repository/migrations"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		SimulateLatency: getEnv("SIMULATE_LATENCY", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
