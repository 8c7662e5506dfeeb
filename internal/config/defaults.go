package config

const (
	defaultConfigPath     = "~/.config/reelmatch/config.toml"
	defaultCatalogSource  = "builtin"
	defaultSQLiteTable    = "movies"
	defaultRecommendLimit = 5
	defaultIDFMode        = "smooth"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Table: defaultSQLiteTable,
		},
		Recommend: Recommend{
			Limit:     defaultRecommendLimit,
			IDF:       defaultIDFMode,
			StopWords: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
