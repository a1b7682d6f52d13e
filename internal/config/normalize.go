package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeModel(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeModel() error {
	if value, ok := os.LookupEnv(envModelPath); ok && strings.TrimSpace(value) != "" {
		c.Model.Path = value
	}
	c.Model.Path = strings.TrimSpace(c.Model.Path)
	if c.Model.Path == "" {
		c.Model.Path = defaultModelPath
	}
	var err error
	if c.Model.Path, err = expandPath(c.Model.Path); err != nil {
		return fmt.Errorf("model.path: %w", err)
	}
	c.Model.BenchmarkPath = strings.TrimSpace(c.Model.BenchmarkPath)
	if c.Model.BenchmarkPath == "" {
		c.Model.BenchmarkPath = defaultBenchmarkPath
	}
	if c.Model.BenchmarkPath, err = expandPath(c.Model.BenchmarkPath); err != nil {
		return fmt.Errorf("model.benchmark_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Path = strings.TrimSpace(c.History.Path)
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath
	}
	var err error
	if c.History.Path, err = expandPath(c.History.Path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	if c.History.Limit == 0 {
		c.History.Limit = defaultHistoryLimit
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		var err error
		if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	return nil
}
