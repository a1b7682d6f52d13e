package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"moviegenre/internal/config"
	"moviegenre/internal/history"
	"moviegenre/internal/logging"
)

type commandContext struct {
	configFlag *string
	modelFlag  *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, modelFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		modelFlag:  modelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.modelFlag != nil {
			if override := strings.TrimSpace(*c.modelFlag); override != "" {
				expanded, err := config.ExpandPath(override)
				if err != nil {
					c.configErr = fmt.Errorf("resolve model path: %w", err)
					return
				}
				cfg.Model.Path = expanded
			}
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// loggerFor returns the configured logger. Configuration errors fall back to
// warn-level console logging on stderr.
func (c *commandContext) loggerFor() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			logger, _ = logging.NewFromConfig(nil)
			logger.Warn("logger setup failed; using defaults", "error", err)
		}
		c.logger = logger
	})
	return c.logger
}

// requestContext tags ctx with a fresh request ID for log correlation.
func (c *commandContext) requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithRequestID(ctx, uuid.NewString())
}

func (c *commandContext) withHistory(ctx context.Context, fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return errHistoryDisabled
	}
	if err := cfg.EnsureHistoryDir(); err != nil {
		return err
	}
	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// displayPath shortens path relative to the working directory when it lives
// beneath it.
func displayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
