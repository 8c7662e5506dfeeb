package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

// CatalogRecord mirrors a catalog entry without importing the catalog package,
// so catalog tests can use these helpers too. Empty fields are written as-is.
type CatalogRecord struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// WriteCatalogTOML encodes records as [[movie]] tables at path.
func WriteCatalogTOML(t testing.TB, path string, records []CatalogRecord) {
	t.Helper()

	payload := struct {
		Movies []CatalogRecord `toml:"movie"`
	}{Movies: records}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal catalog: %v", err)
	}
	WriteFile(t, path, data)
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
