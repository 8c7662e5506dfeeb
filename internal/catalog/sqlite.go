package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	_ "modernc.org/sqlite"
)

// DefaultTable is the table read when a SQLite source names none.
const DefaultTable = "movies"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads title and description columns from table, in rowid order.
// The database is opened query-only; a missing file is an error rather than a
// fresh empty database.
func LoadSQLite(ctx context.Context, path, table string) (*Catalog, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrConfiguration, table)
	}
	if info, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: open catalog: %w", ErrConfiguration, err)
	} else if info.IsDir() {
		return nil, fmt.Errorf("%w: open catalog: %s is a directory", ErrConfiguration, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite db: %w", ErrConfiguration, err)
	}
	defer db.Close()
	// query_only is per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, fmt.Errorf("%w: apply pragma: %w", ErrConfiguration, err)
	}

	query := fmt.Sprintf(`SELECT title, description FROM "%s" ORDER BY rowid`, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrConfiguration, table, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var title, description sql.NullString
		if err := rows.Scan(&title, &description); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", ErrConfiguration, table, err)
		}
		records = append(records, Record{Title: title.String, Description: description.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfiguration, table, err)
	}
	return New(records)
}
