package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultHost           = "localhost"
	defaultPort           = 8080
	defaultBaseURL        = "http://localhost:8080/"
	defaultMaxAttempts    = 3
	defaultShutdownPeriod = 10 * time.Second
	defaultJWTSecret      = "dev-secret-change-me"
)

// RetryConfig настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"RETRY_MAX_ATTEMPTS"`
}

// Config конфигурация сервиса наград
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	JWTSecret       string         `env:"JWT_SECRET"`
	TraceOutput     string         `env:"TRACE_OUTPUT"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	Retry           RetryConfig
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: defaultHost, Port: defaultPort},
		BaseURL:         URLPrefix(defaultBaseURL),
		JWTSecret:       defaultJWTSecret,
		ShutdownTimeout: defaultShutdownPeriod,
		Retry: RetryConfig{
			MaxAttempts: defaultMaxAttempts,
		},
	}
}

// Load загружает конфигурацию: значения по умолчанию, .env файл, флаги, переменные окружения.
// Переменные окружения имеют наивысший приоритет
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs загружает конфигурацию из переданных аргументов командной строки и окружения
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("rewards", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for reward redemption links")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to file storage")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database connection string")
	fs.IntVar(&cfg.Retry.MaxAttempts, "r", cfg.Retry.MaxAttempts, "max attempts to generate a unique code")
	fs.StringVar(&cfg.TraceOutput, "t", cfg.TraceOutput, "trace output: stdout or file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be positive, got %d", c.Retry.MaxAttempts)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT secret must not be empty")
	}
	return nil
}
