// File path: internal/record/config.go
package record

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Path string

	MaxOpenConns int
	MaxIdleConns int
	BusyTimeout  time.Duration
}

func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Path) != "" {
		result.Path = strings.TrimSpace(override.Path)
	}
	if override.MaxOpenConns > 0 {
		result.MaxOpenConns = override.MaxOpenConns
	}
	if override.MaxIdleConns > 0 {
		result.MaxIdleConns = override.MaxIdleConns
	}
	if override.BusyTimeout > 0 {
		result.BusyTimeout = override.BusyTimeout
	}
	return result
}

// LoadConfig resolves store configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{Path: strings.TrimSpace(os.Getenv("DRAFTWISE_DB_PATH"))}
	if raw := strings.TrimSpace(os.Getenv("DRAFTWISE_DB_MAX_OPEN_CONNS")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse DRAFTWISE_DB_MAX_OPEN_CONNS: %w", err)
		}
		cfg.MaxOpenConns = parsed
	}
	if raw := strings.TrimSpace(os.Getenv("DRAFTWISE_DB_MAX_IDLE_CONNS")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse DRAFTWISE_DB_MAX_IDLE_CONNS: %w", err)
		}
		cfg.MaxIdleConns = parsed
	}
	if raw := strings.TrimSpace(os.Getenv("DRAFTWISE_DB_BUSY_TIMEOUT")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse DRAFTWISE_DB_BUSY_TIMEOUT: %w", err)
		}
		cfg.BusyTimeout = parsed
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 4
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 2
	}
	if c.BusyTimeout <= 0 {
		c.BusyTimeout = 5 * time.Second
	}
}
