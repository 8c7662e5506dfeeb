package testsupport

import (
	"database/sql"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"
)

// WriteCatalogSQLite creates a SQLite database at path with a
// (title, description) table holding records in order.
func WriteCatalogSQLite(t testing.TB, path, table string, records []CatalogRecord) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	defer db.Close()

	create := fmt.Sprintf(`CREATE TABLE %q (title TEXT, description TEXT)`, table)
	if _, err := db.Exec(create); err != nil {
		t.Fatalf("create table %s: %v", table, err)
	}
	insert := fmt.Sprintf(`INSERT INTO %q (title, description) VALUES (?, ?)`, table)
	for _, rec := range records {
		if _, err := db.Exec(insert, rec.Title, rec.Description); err != nil {
			t.Fatalf("insert %q: %v", rec.Title, err)
		}
	}
}

// SampleRecords returns a small catalog with predictable similarities.
func SampleRecords() []CatalogRecord {
	return []CatalogRecord{
		{Title: "Harbor", Description: "A sailor returns to the harbor town."},
		{Title: "Lighthouse", Description: "A keeper guards the harbor lighthouse."},
		{Title: "Desert", Description: "Nomads cross the burning desert."},
	}
}
