package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeRecommend()
	return c.normalizeLogging()
}

func (c *Config) normalizeCatalog() error {
	if value, ok := os.LookupEnv("REELMATCH_CATALOG"); ok && strings.TrimSpace(value) != "" {
		if err := c.SetCatalogPath(value); err != nil {
			return fmt.Errorf("REELMATCH_CATALOG: %w", err)
		}
	}

	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	c.Catalog.Path = strings.TrimSpace(c.Catalog.Path)
	c.Catalog.Table = strings.TrimSpace(c.Catalog.Table)
	if c.Catalog.Table == "" {
		c.Catalog.Table = defaultSQLiteTable
	}
	if c.Catalog.Source == "" {
		if c.Catalog.Path == "" {
			c.Catalog.Source = defaultCatalogSource
		} else if err := c.SetCatalogPath(c.Catalog.Path); err != nil {
			return err
		}
	}

	var err error
	if c.Catalog.Path, err = expandPath(c.Catalog.Path); err != nil {
		return fmt.Errorf("catalog.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeRecommend() {
	c.Recommend.IDF = strings.ToLower(strings.TrimSpace(c.Recommend.IDF))
	if c.Recommend.IDF == "" {
		c.Recommend.IDF = defaultIDFMode
	}
	if len(c.Recommend.ExtraStopWords) > 0 {
		words := make([]string, 0, len(c.Recommend.ExtraStopWords))
		seen := make(map[string]struct{}, len(c.Recommend.ExtraStopWords))
		for _, word := range c.Recommend.ExtraStopWords {
			normalized := strings.ToLower(strings.TrimSpace(word))
			if normalized == "" {
				continue
			}
			if _, exists := seen[normalized]; exists {
				continue
			}
			seen[normalized] = struct{}{}
			words = append(words, normalized)
		}
		c.Recommend.ExtraStopWords = words
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("REELMATCH_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
