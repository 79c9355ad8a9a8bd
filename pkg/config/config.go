package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

type CommonConfig struct {
	LogLevel string `env:"COMMON_LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

type RedisConfig struct {
	Addr string        `env:"REDIS_ADDR"` // empty disables the catalog cache
	TTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

type RabbitConfig struct {
	URL string `env:"RABBIT_URL"` // empty disables order events
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"` // empty falls back to the log sender
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"MAIL_FROM" envDefault:"noreply@perfume-shop.local"`
}

type OutboxConfig struct {
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"1s"`
	BatchSize    int           `env:"OUTBOX_BATCH_SIZE" envDefault:"50"`
	MaxAttempts  int           `env:"OUTBOX_MAX_ATTEMPTS" envDefault:"10"`
	BackoffMax   time.Duration `env:"OUTBOX_BACKOFF_MAX" envDefault:"60s"`
}

type Config struct {
	Common   CommonConfig
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Rabbit   RabbitConfig
	SMTP     SMTPConfig
	Outbox   OutboxConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Each binary checks only the backends it actually talks to.

func (c Config) RequirePostgres() error {
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres dsn is empty: set POSTGRES_DSN")
	}
	return nil
}

func (c Config) RequireRabbit() error {
	if c.Rabbit.URL == "" {
		return fmt.Errorf("rabbit url is empty: set RABBIT_URL")
	}
	return nil
}
