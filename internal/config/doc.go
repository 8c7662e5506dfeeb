// Package config loads, normalizes, and validates reelmatch configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the REELMATCH_CATALOG and
// REELMATCH_LOG_LEVEL environment overrides. Catalog paths infer their source
// kind from the file extension when no explicit source is configured.
package config
