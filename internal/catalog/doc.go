// Package catalog holds the fixed, ordered set of movies that recommendations
// are drawn from.
//
// A Catalog is validated once at construction and never mutated afterwards:
// titles are unique and non-empty, descriptions are non-empty, and record
// order is preserved because it breaks ranking ties downstream. Records come
// from the built-in dataset, a TOML file of [[movie]] tables, or a read-only
// SQLite table. Every construction failure wraps ErrConfiguration.
package catalog
