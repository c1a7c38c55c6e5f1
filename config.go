package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	awspkg "bakery-service/pkg/aws"
)

// Event bus selections for EVENT_BUS.
const (
	EventBusNone  = "none"
	EventBusSNS   = "sns"
	EventBusKafka = "kafka"
)

// Config holds all configuration for the bakery service.
type Config struct {
	Port         string
	Env          string
	DatabaseURL  string
	DatabaseName string
	RedisURL     string

	EventBus           string
	PaymentSNSTopicARN string
	KafkaBrokers       []string
	PaymentEventsTopic string

	AllowedOrigins     string
	RateLimitPerMinute int
	CloudWatchEnabled  bool
}

// secretGetter is satisfied by awspkg.SecretsClient; keys are unprefixed.
type secretGetter interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// LoadConfig reads configuration from .env and environment variables with
// an optional Secrets Manager override of DATABASE_URL.
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	cfg := configFromEnv()

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		if awsCfg, err := awspkg.LoadAWSConfig(context.Background()); err == nil {
			sm := awspkg.NewSecretsClient(awsCfg, getEnv("AWS_SECRETS_PREFIX", awspkg.DefaultSecretPrefix))
			applySecrets(context.Background(), cfg, sm)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFromEnv() *Config {
	return &Config{
		Port:               getEnv("PORT", "8000"),
		Env:                getEnv("APP_ENV", "development"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseName:       os.Getenv("DATABASE_NAME"),
		RedisURL:           os.Getenv("REDIS_URL"),
		EventBus:           strings.ToLower(getEnv("EVENT_BUS", EventBusNone)),
		PaymentSNSTopicARN: os.Getenv("PAYMENT_SNS_TOPIC_ARN"),
		KafkaBrokers:       splitList(os.Getenv("KAFKA_BROKERS")),
		PaymentEventsTopic: getEnv("PAYMENT_EVENTS_TOPIC", "bakery.payments"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "*"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 0),
		CloudWatchEnabled:  os.Getenv("CLOUDWATCH_ENABLED") == "true",
	}
}

// applySecrets overrides connection settings with any secret that exists.
func applySecrets(ctx context.Context, cfg *Config, sm secretGetter) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"DATABASE_NAME", &cfg.DatabaseName},
		{"REDIS_URL", &cfg.RedisURL},
	}
	for _, o := range overrides {
		if v, err := sm.GetSecret(ctx, o.key); err == nil && v != "" {
			*o.dst = v
		}
	}
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" || c.DatabaseName == "" {
		return fmt.Errorf("database config incomplete: DATABASE_URL and DATABASE_NAME are required")
	}
	switch c.EventBus {
	case EventBusNone:
	case EventBusSNS:
		if c.PaymentSNSTopicARN == "" {
			return fmt.Errorf("EVENT_BUS=sns requires PAYMENT_SNS_TOPIC_ARN")
		}
	case EventBusKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("EVENT_BUS=kafka requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown EVENT_BUS %q", c.EventBus)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
