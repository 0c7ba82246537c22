package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string `env:"PORT,         default=8080"`
	Env         string `env:"ENV,          default=production"`
	LogLevel    string `env:"LOG_LEVEL,    default=info"`
	DatabaseURL string `env:"DATABASE_URL, required"`
	JWTSecret   string `env:"JWT_SECRET,   required"`

	// MigrateReset rolls every migration back before applying them again.
	MigrateReset bool `env:"MIGRATE_RESET, default=false"`

	Redis RedisConfig
	Login LoginConfig
	Admin AdminConfig
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// LoginConfig controls the failed-login throttle.
type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=5"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=15m"`
}

// AdminConfig describes an optional admin account created at startup.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME, default=Administrator"`
	Email    string `env:"ADMIN_EMAIL"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Enabled reports whether both email and password were supplied.
func (a AdminConfig) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

func (c *Config) Addr() string { return ":" + c.Port }

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must not be empty")
	}
	if cfg.Login.MaxAttempts <= 0 {
		return nil, fmt.Errorf("config: LOGIN_MAX_ATTEMPTS must be positive, got %d", cfg.Login.MaxAttempts)
	}
	if cfg.Login.Window <= 0 {
		return nil, fmt.Errorf("config: LOGIN_WINDOW must be positive, got %s", cfg.Login.Window)
	}
	return &cfg, nil
}
