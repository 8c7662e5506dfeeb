package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reelmatch/internal/catalog"
	"reelmatch/internal/config"
	"reelmatch/internal/logging"
	"reelmatch/internal/recommend"
	"reelmatch/internal/textutil"
)

type commandContext struct {
	configFlag  *string
	catalogFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	closeLog   func() error
	loggerErr  error

	engineOnce sync.Once
	engine     *recommend.Engine
	engineErr  error
}

func newCommandContext(configFlag, catalogFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		catalogFlag: catalogFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.catalogFlag != nil {
			if err := cfg.SetCatalogPath(*c.catalogFlag); err != nil {
				c.configErr = fmt.Errorf("--catalog: %w", err)
				return
			}
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger once. Human-facing log lines go to
// w so stdout stays reserved for results.
func (c *commandContext) ensureLogger(w io.Writer) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, closeFn, err := logging.NewFromConfig(cfg, w)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logging: %w", err)
			return
		}
		c.logger = logger
		c.closeLog = closeFn
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) ensureEngine(cmd *cobra.Command) (*recommend.Engine, error) {
	c.engineOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.engineErr = err
			return
		}
		logger, err := c.ensureLogger(cmd.ErrOrStderr())
		if err != nil {
			c.engineErr = err
			return
		}

		cat, err := catalog.Load(cmd.Context(), cfg.CatalogSource())
		if err != nil {
			c.engineErr = fmt.Errorf("load catalog: %w", err)
			return
		}
		mode, err := textutil.ParseIDFMode(cfg.Recommend.IDF)
		if err != nil {
			c.engineErr = err
			return
		}
		engine, err := recommend.Build(cat, recommend.Options{
			Limit:            cfg.Recommend.Limit,
			IDF:              mode,
			DisableStopWords: !cfg.Recommend.StopWords,
			ExtraStopWords:   cfg.Recommend.ExtraStopWords,
			Logger:           logger,
		})
		if err != nil {
			c.engineErr = err
			return
		}
		c.engine = engine
	})
	return c.engine, c.engineErr
}

func (c *commandContext) close() error {
	if c.closeLog == nil {
		return nil
	}
	closeFn := c.closeLog
	c.closeLog = nil
	return closeFn()
}

// queryContext tags one recommendation request with a fresh correlation ID.
func queryContext(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return logging.WithRequestID(parent, uuid.NewString())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
