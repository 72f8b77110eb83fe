// SPDX-License-Identifier: MIT

// Package config loads the lvtrace server configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedVersion indicates a config file with an unknown version.
var ErrUnsupportedVersion = errors.New("config: unsupported version")

// Store drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// Config is the versioned server configuration. Zero values fall back to the
// defaults returned by the accessor methods.
type Config struct {
	Version int `yaml:"version"`
	Server  struct {
		Addr            string        `yaml:"addr"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"server"`
	Execution struct {
		MaxSteps int           `yaml:"maxSteps"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"execution"`
	Store struct {
		Driver string `yaml:"driver"`
		Redis  struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"store"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns a version-1 config with every field at its default.
func Default() *Config {
	return &Config{Version: 1}
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes and validates YAML config bytes.
func Parse(b []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, cfg.Version)
	}
	switch cfg.Store.Driver {
	case "", DriverMemory, DriverRedis:
	default:
		return nil, fmt.Errorf("config: unknown store driver %q", cfg.Store.Driver)
	}
	return &cfg, nil
}

// Addr returns the HTTP listen address, defaulting to ":8080".
func (c *Config) Addr() string {
	if c.Server.Addr == "" {
		return ":8080"
	}
	return c.Server.Addr
}

// ShutdownTimeout returns the graceful shutdown budget, defaulting to 5s.
func (c *Config) ShutdownTimeout() time.Duration {
	if c.Server.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return c.Server.ShutdownTimeout
}

// MaxSteps returns the default trace cap, defaulting to 10000. A negative
// value disables the cap.
func (c *Config) MaxSteps() int {
	switch {
	case c.Execution.MaxSteps < 0:
		return 0
	case c.Execution.MaxSteps == 0:
		return 10000
	}
	return c.Execution.MaxSteps
}

// TTL returns how long executions are kept, defaulting to one hour.
func (c *Config) TTL() time.Duration {
	if c.Execution.TTL <= 0 {
		return time.Hour
	}
	return c.Execution.TTL
}

// Driver returns the store driver, defaulting to memory.
func (c *Config) Driver() string {
	if c.Store.Driver == "" {
		return DriverMemory
	}
	return c.Store.Driver
}

// RedisAddr returns the Redis address, defaulting to localhost:6379.
func (c *Config) RedisAddr() string {
	if c.Store.Redis.Addr == "" {
		return "localhost:6379"
	}
	return c.Store.Redis.Addr
}

// RedisPrefix returns the Redis key prefix, defaulting to "lvtrace:execution:".
func (c *Config) RedisPrefix() string {
	if c.Store.Redis.Prefix == "" {
		return "lvtrace:execution:"
	}
	return c.Store.Redis.Prefix
}

// LogLevel returns the configured log level name, defaulting to "info".
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}
