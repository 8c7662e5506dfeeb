package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type tomlFile struct {
	Movies []Record `toml:"movie"`
}

// LoadTOML reads a catalog file made of [[movie]] tables:
//
//	[[movie]]
//	title = "Dilwale"
//	description = "Two lovers are separated by family rivalry..."
func LoadTOML(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open catalog: %w", ErrConfiguration, err)
	}
	defer file.Close()
	return DecodeTOML(file)
}

// DecodeTOML parses a TOML catalog from r.
func DecodeTOML(r io.Reader) (*Catalog, error) {
	var payload tomlFile
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: parse catalog: %w", ErrConfiguration, err)
	}
	return New(payload.Movies)
}
