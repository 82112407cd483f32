// Package config loads service settings from a YAML file, an optional .env
// file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mcdev12/leaguehub/go/internal/dbconfig"
	"github.com/mcdev12/leaguehub/go/internal/leaguecode"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port            int           `yaml:"port" env:"PORT"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
}

type LeagueConfig struct {
	CodeAttempts int `yaml:"code_attempts" env:"LEAGUE_CODE_ATTEMPTS"`
}

// RateLimitConfig bounds public league lookups per client IP.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second" env:"RATE_LIMIT_PER_SECOND"`
	Burst     int     `yaml:"burst" env:"RATE_LIMIT_BURST"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	League    LeagueConfig    `yaml:"league"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Database  dbconfig.Config `yaml:"database"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Log:       LogConfig{Level: "info"},
		League:    LeagueConfig{CodeAttempts: leaguecode.DefaultAttempts},
		RateLimit: RateLimitConfig{PerSecond: 5, Burst: 20},
		Database:  dbconfig.Default(),
	}
}

// Load builds the configuration. An empty path skips the YAML file. A .env
// file in the working directory is loaded when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.League.CodeAttempts < 1 {
		return fmt.Errorf("league code attempts must be at least 1")
	}
	if c.RateLimit.PerSecond <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1")
	}
	return c.Database.Validate()
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
