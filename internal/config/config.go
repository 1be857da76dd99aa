package config

import (
	"os"
	"strings"
	"time"
)

// Config aggregates the environment the service runs in. Values come from
// the environment (godotenv autoload in the mains fills it from .env for
// local runs).

type Config struct {
	HTTPAddr           string
	RedisAddr          string
	KafkaBrokers       []string
	NotificationsTopic string
	ConsumerGroup      string
	StripeSecretKey    string
	SweepInterval      time.Duration
	ServiceName        string
}

func Load() Config {
	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		RedisAddr:          getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers:       splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		NotificationsTopic: getenv("NOTIFICATIONS_TOPIC", "marketplace.notifications"),
		ConsumerGroup:      getenv("CONSUMER_GROUP", "notification-worker"),
		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		SweepInterval:      getenvDuration("SWEEP_INTERVAL", time.Minute),
		ServiceName:        getenv("SERVICE_NAME", "marketplace-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
