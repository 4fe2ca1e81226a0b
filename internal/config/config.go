package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment   string `env:"APP_ENV" envDefault:"development"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	Server struct {
		Port            string        `env:"PORT" envDefault:"3000"`
		ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
		WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
		IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	} `envPrefix:"SERVER_"`

	Database struct {
		Driver     string `env:"DRIVER" envDefault:"postgres"`
		Host       string `env:"HOST" envDefault:"localhost"`
		Port       string `env:"PORT" envDefault:"5432"`
		User       string `env:"USER" envDefault:"postgres"`
		Password   string `env:"PASSWORD"`
		Name       string `env:"NAME" envDefault:"employees"`
		SSLMode    string `env:"SSLMODE" envDefault:"disable"`
		MaxRetries int    `env:"MAX_RETRIES" envDefault:"5"`
	} `envPrefix:"DB_"`

	Redis struct {
		Addr     string `env:"ADDR"`
		Password string `env:"PASSWORD"`
	} `envPrefix:"REDIS_"`

	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	RateLimit struct {
		RPS   float64 `env:"RPS" envDefault:"5"`
		Burst int     `env:"BURST" envDefault:"10"`
	} `envPrefix:"RATE_LIMIT_"`

	Kafka struct {
		Broker  string `env:"BROKER"`
		GroupID string `env:"GROUP_ID" envDefault:"employee-service-audit"`
	} `envPrefix:"KAFKA_"`

	Outbox struct {
		PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"3s"`
		BatchSize    int           `env:"BATCH_SIZE" envDefault:"50"`
	} `envPrefix:"OUTBOX_"`
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads the process environment. Only the first problem is reported
// to keep startup logs readable.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}
