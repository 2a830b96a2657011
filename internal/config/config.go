// Package config centralises configuration parsing for the directory service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the directory service.
type Config struct {
	HTTPAddress     string
	MetricsAddress  string // standalone metrics listener for the auditor binary
	StaticDir       string
	CORSOrigin      string
	KafkaBrokers    []string // empty list disables roster eventing
	RosterTopic     string
	PublishTimeout  time.Duration
	ConsumerGroupID string
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:  getEnv("METRICS_ADDRESS", ":9090"),
		StaticDir:       getEnv("STATIC_DIR", "static"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
		RosterTopic:     getEnv("ROSTER_TOPIC", "roster_events"),
		PublishTimeout:  getDurationEnv("PUBLISH_TIMEOUT", 5*time.Second),
		ConsumerGroupID: getEnv("CONSUMER_GROUP_ID", "roster-auditor"),
	}

	cfg.KafkaBrokers = splitAndTrim(getEnv("KAFKA_BROKERS", ""))
	return cfg
}

// EventingEnabled reports whether roster events should be published.
func (c Config) EventingEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
