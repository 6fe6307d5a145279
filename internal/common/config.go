// Package common provides shared utilities for the AcuTrader terminal client
package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for the client
type Config struct {
	Backend BackendConfig `toml:"backend"`
	Session SessionConfig `toml:"session"`
	Trading TradingConfig `toml:"trading"`
	Logging LoggingConfig `toml:"logging"`
}

// BackendConfig holds AcuTrader API configuration
type BackendConfig struct {
	BaseURL   string `toml:"base_url"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *BackendConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// SessionConfig holds the local session store configuration
type SessionConfig struct {
	Path     string `toml:"path"`
	QuoteTTL string `toml:"quote_ttl"` // lifetime of cached quote snapshots, default "5m"
}

// GetQuoteTTL parses and returns the quote snapshot lifetime
func (c *SessionConfig) GetQuoteTTL() time.Duration {
	d, err := time.ParseDuration(c.QuoteTTL)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// TradingConfig holds simulated account parameters
type TradingConfig struct {
	StartingBalance float64 `toml:"starting_balance"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Backend: BackendConfig{
			BaseURL:   "http://localhost:4000/api",
			RateLimit: 10,
			Timeout:   "30s",
		},
		Session: SessionConfig{
			Path:     filepath.Join(home, ".acutrader", "session.db"),
			QuoteTTL: "5m",
		},
		Trading: TradingConfig{
			StartingBalance: 10000.00,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if url := os.Getenv("ACUTRADER_BACKEND_URL"); url != "" {
		config.Backend.BaseURL = url
	}

	if level := os.Getenv("ACUTRADER_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("ACUTRADER_SESSION_PATH"); path != "" {
		config.Session.Path = path
	}

	if bal := os.Getenv("ACUTRADER_STARTING_BALANCE"); bal != "" {
		if b, err := strconv.ParseFloat(bal, 64); err == nil {
			config.Trading.StartingBalance = b
		}
	}

	if to := os.Getenv("ACUTRADER_TIMEOUT"); to != "" {
		config.Backend.Timeout = to
	}
}
