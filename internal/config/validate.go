package config

import (
	"errors"
	"fmt"

	"reelmatch/internal/catalog"
	"reelmatch/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCatalog() error {
	switch catalog.Kind(c.Catalog.Source) {
	case "", catalog.KindBuiltin:
		return nil
	case catalog.KindTOML, catalog.KindSQLite:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required when catalog.source is %q", c.Catalog.Source)
		}
		return nil
	default:
		return fmt.Errorf("catalog.source: unsupported value %q (expected builtin, toml or sqlite)", c.Catalog.Source)
	}
}

func (c *Config) validateRecommend() error {
	if c.Recommend.Limit < 1 {
		return errors.New("recommend.limit must be at least 1")
	}
	if _, err := textutil.ParseIDFMode(c.Recommend.IDF); err != nil {
		return fmt.Errorf("recommend.idf: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
