package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateModel() error {
	if c.Model.Path == "" {
		return errors.New("model.path must be set")
	}
	if c.Model.BenchmarkPath == "" {
		return errors.New("model.benchmark_path must be set")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Limit < 1 {
		return errors.New("history.limit must be >= 1")
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}
