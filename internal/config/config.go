package config

import (
	"fmt"
	"os"
	"time"
)

// Config carries everything the process needs at startup. Values come from
// the environment with sane local defaults so the service can run bare.
type Config struct {
	Addr            string
	DataDir         string
	ReportDir       string
	ArchiveInterval time.Duration
	LogLevel        string

	Admin Credentials
	Cook  Credentials

	// RabbitMQ is nil unless RABBITMQ_HOST is set; the broadcast channel
	// then gains an external fanout leg for off-process viewers.
	RabbitMQ *RabbitMQConfig
}

// Credentials is a shared-secret pair gating a role's endpoints.
type Credentials struct {
	User     string
	Password string
}

type RabbitMQConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	VHost    string
}

// URL builds the AMQP dial string from the configured parts.
func (c *RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/%s", c.User, c.Password, c.Host, c.Port, c.VHost)
}

// Load reads the process configuration from the environment.
func Load() (*Config, error) {
	interval, err := time.ParseDuration(getEnv("ARCHIVE_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ARCHIVE_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("ARCHIVE_INTERVAL must be positive, got %s", interval)
	}

	cfg := &Config{
		Addr:            ":" + getEnv("PORT", "3000"),
		DataDir:         getEnv("DATA_DIR", "."),
		ReportDir:       getEnv("REPORT_DIR", "reports"),
		ArchiveInterval: interval,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Admin: Credentials{
			User:     getEnv("ADMIN_USER", "admin"),
			Password: getEnv("ADMIN_PASS", "admin"),
		},
		Cook: Credentials{
			User:     getEnv("COOK_USER", ""),
			Password: getEnv("COOK_PASS", ""),
		},
	}

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		cfg.RabbitMQ = &RabbitMQConfig{
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASS", "guest"),
			Host:     host,
			Port:     getEnv("RABBITMQ_PORT", "5672"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
