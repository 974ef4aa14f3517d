package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	OnErrorAbort    = "abort"
	OnErrorContinue = "continue"
)

type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Conversion ConversionConfig `yaml:"conversion"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ConversionConfig struct {
	// OnError is "abort" (stop at the first failing file) or "continue".
	OnError string `yaml:"on_error"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	// Defaults alone always validate.
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file and validates it
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Conversion.OnError == "" {
		c.Conversion.OnError = OnErrorAbort
	}

	c.Logging.Format = strings.ToLower(c.Logging.Format)
	c.Conversion.OnError = strings.ToLower(c.Conversion.OnError)

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	switch c.Conversion.OnError {
	case OnErrorAbort, OnErrorContinue:
	default:
		return fmt.Errorf("conversion.on_error must be %s or %s, got %q", OnErrorAbort, OnErrorContinue, c.Conversion.OnError)
	}

	return nil
}

// ContinueOnError reports whether a failing file should not stop the run
func (c *Config) ContinueOnError() bool {
	return c.Conversion.OnError == OnErrorContinue
}
