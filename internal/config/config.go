package config

import (
	"fmt"
	"net"
	"time"

	"todolist/internal/utils"

	"github.com/ilyakaznacheev/cleanenv"
)

// durationSeconds parses env as time.Duration: "10s", "5m" or bare number = seconds (e.g. "10" -> 10s).
type durationSeconds time.Duration

// SetValue implements cleanenv.Setter.
func (d *durationSeconds) SetValue(data string) error {
	v, err := utils.ParseDurationEnv(data)
	if err != nil {
		return err
	}
	*d = durationSeconds(v)
	return nil
}

func (d durationSeconds) Duration() time.Duration { return time.Duration(d) }

type Config struct {
	App  AppConfig
	HTTP HTTPConfig
}

type AppConfig struct {
	Env     string `env:"APP_ENV" env-default:"dev"`
	Version string `env:"VERSION" env-default:"dev"`
}

type HTTPConfig struct {
	Host string `env:"HTTP_HOST" env-default:"localhost"`
	// The web UI is built against this port; change both together.
	Port string `env:"HTTP_PORT" env-default:"3001"`

	// Значение: "10s", "5m" или число секунд без суффикса (например 10).
	ReadTimeout     durationSeconds `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    durationSeconds `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     durationSeconds `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout durationSeconds `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr is the host:port the server listens on.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsProd reports whether gin should run in release mode.
func (c AppConfig) IsProd() bool {
	return c.Env == "prod" || c.Env == "production"
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.HTTP.Port == "" {
		return Config{}, fmt.Errorf("HTTP_PORT is required")
	}
	return cfg, nil
}
