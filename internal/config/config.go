// Package config provides file- and environment-driven configuration for
// the ladder binary.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration values.
type Config struct {
	DictPath string `yaml:"dict"`
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	MaxDepth int    `yaml:"max_depth"`
	Alphabet string `yaml:"alphabet"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Addr:     "127.0.0.1:8080",
		LogLevel: "info",
		Alphabet: "abcdefghijklmnopqrstuvwxyz",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), LADDER_* environment variables and overrides, in
// increasing precedence. Validation runs once, after overrides are applied.
func Load(path string, overrides ...func(*Config)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	cfg.DictPath = envOrDefault("LADDER_DICT", cfg.DictPath)
	cfg.Addr = envOrDefault("LADDER_ADDR", cfg.Addr)
	cfg.LogLevel = envOrDefault("LADDER_LOG_LEVEL", cfg.LogLevel)
	cfg.Alphabet = envOrDefault("LADDER_ALPHABET", cfg.Alphabet)
	var depthErr error
	if v := os.Getenv("LADDER_MAX_DEPTH"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil {
			// fatal only if no override replaces it
			depthErr = fmt.Errorf("LADDER_MAX_DEPTH must be an integer: %w", err)
			d = -1
		}
		cfg.MaxDepth = d
	}

	for _, o := range overrides {
		o(cfg)
	}
	if depthErr != nil && cfg.MaxDepth == -1 {
		return nil, depthErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}

	if c.Alphabet == "" {
		return fmt.Errorf("alphabet must not be empty")
	}

	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return fmt.Errorf("addr %q is not host:port: %w", c.Addr, err)
	}

	return nil
}

// Logger returns a logrus logger at the configured level.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
