package testsupport

import (
	"path/filepath"
	"testing"

	"reelmatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose optional paths point into a
// per-test temp directory, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Catalog.Source = "builtin"
	cfgVal.Logging.File = filepath.Join(base, "logs", "reelmatch.log")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLimit overrides the number of recommendations.
func WithLimit(limit int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Recommend.Limit = limit
	}
}

// WithTOMLCatalog writes records to a TOML catalog in the temp directory and
// points the config at it.
func WithTOMLCatalog(records []CatalogRecord) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "movies.toml")
		WriteCatalogTOML(b.t, path, records)
		b.cfg.Catalog.Source = "toml"
		b.cfg.Catalog.Path = path
	}
}

// WithSQLiteCatalog writes records to a SQLite catalog in the temp directory
// and points the config at it.
func WithSQLiteCatalog(records []CatalogRecord) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "movies.db")
		WriteCatalogSQLite(b.t, path, "movies", records)
		b.cfg.Catalog.Source = "sqlite"
		b.cfg.Catalog.Path = path
		b.cfg.Catalog.Table = "movies"
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Logging.File))
}
