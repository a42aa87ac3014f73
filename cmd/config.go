package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort               string
	GRPCPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	PublishTimeout         time.Duration
	RedisAddr              string
	IdempotencyTTL         time.Duration
	StatusReportSchedule   string
	LogLevel               string
	LogFormat              string
}

// SetConfigDefaults registers the default for every key LoadConfig reads.
func SetConfigDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("GRPC_PORT", "9090")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "orderflow")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_HOST", "")
	v.SetDefault("KAFKA_ORDER_CHANGED_TOPIC", "order.changed")
	v.SetDefault("PUBLISH_TIMEOUT", "2s")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("IDEMPOTENCY_TTL", "24h")
	v.SetDefault("STATUS_REPORT_SCHEDULE", "0 * * * * *")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// LoadConfig reads the configuration from v. Environment variables win over
// defaults; v is expected to have AutomaticEnv enabled.
func LoadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTPPort:               v.GetString("HTTP_PORT"),
		GRPCPort:               v.GetString("GRPC_PORT"),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetString("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		DBSslMode:              v.GetString("DB_SSLMODE"),
		KafkaHost:              v.GetString("KAFKA_HOST"),
		KafkaOrderChangedTopic: v.GetString("KAFKA_ORDER_CHANGED_TOPIC"),
		PublishTimeout:         v.GetDuration("PUBLISH_TIMEOUT"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		IdempotencyTTL:         v.GetDuration("IDEMPOTENCY_TTL"),
		StatusReportSchedule:   v.GetString("STATUS_REPORT_SCHEDULE"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		LogFormat:              v.GetString("LOG_FORMAT"),
	}

	if cfg.HTTPPort == "" {
		return Config{}, fmt.Errorf("HTTP_PORT must not be empty")
	}
	if cfg.PublishTimeout <= 0 {
		return Config{}, fmt.Errorf("PUBLISH_TIMEOUT must be positive, got %q", v.GetString("PUBLISH_TIMEOUT"))
	}
	if cfg.IdempotencyTTL <= 0 {
		return Config{}, fmt.Errorf("IDEMPOTENCY_TTL must be positive, got %q", v.GetString("IDEMPOTENCY_TTL"))
	}

	return cfg, nil
}

// DSN is the lib/pq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
