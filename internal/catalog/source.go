package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind names where catalog records come from.
type Kind string

const (
	KindBuiltin Kind = "builtin"
	KindTOML    Kind = "toml"
	KindSQLite  Kind = "sqlite"
)

// Source describes a catalog location.
type Source struct {
	Kind  Kind
	Path  string
	Table string
}

// KindForPath infers the source kind from a file extension.
func KindForPath(path string) (Kind, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return KindTOML, true
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, true
	default:
		return "", false
	}
}

// Load builds the catalog described by src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	switch src.Kind {
	case "", KindBuiltin:
		return Builtin(), nil
	case KindTOML:
		return LoadTOML(src.Path)
	case KindSQLite:
		return LoadSQLite(ctx, src.Path, src.Table)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog source %q", ErrConfiguration, src.Kind)
	}
}
