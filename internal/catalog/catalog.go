package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrConfiguration marks a catalog that cannot back a recommendation pipeline.
var ErrConfiguration = errors.New("configuration error")

// Record is one movie in the catalog.
type Record struct {
	Title       string `toml:"title" json:"title" validate:"required"`
	Description string `toml:"description" json:"description" validate:"required"`
}

// Catalog is an immutable ordered list of records.
type Catalog struct {
	records []Record
	index   map[string]int
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// New validates records and builds a catalog preserving their order.
// Surrounding whitespace is trimmed from titles and descriptions.
func New(records []Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrConfiguration)
	}

	c := &Catalog{
		records: make([]Record, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		rec.Title = strings.TrimSpace(rec.Title)
		rec.Description = strings.TrimSpace(rec.Description)
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrConfiguration, i+1, err)
		}
		if prev, dup := c.index[rec.Title]; dup {
			return nil, fmt.Errorf("%w: record %d: duplicate title %q (first seen at record %d)", ErrConfiguration, i+1, rec.Title, prev+1)
		}
		c.index[rec.Title] = len(c.records)
		c.records = append(c.records, rec)
	}
	return c, nil
}

func validateRecord(rec Record) error {
	err := recordValidator().Struct(rec)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		missing = append(missing, strings.ToLower(fe.Field()))
	}
	if rec.Title != "" {
		return fmt.Errorf("%q missing %s", rec.Title, strings.Join(missing, ", "))
	}
	return fmt.Errorf("missing %s", strings.Join(missing, ", "))
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Record returns the record at position i.
func (c *Catalog) Record(i int) Record {
	return c.records[i]
}

// Records returns a copy of all records in catalog order.
func (c *Catalog) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Titles returns all titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.Title
	}
	return out
}

// Descriptions returns all descriptions in catalog order.
func (c *Catalog) Descriptions() []string {
	out := make([]string, len(c.records))
	for i, rec := range c.records {
		out[i] = rec.Description
	}
	return out
}

// Index returns the position of title. Matching is exact and case-sensitive.
func (c *Catalog) Index(title string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.index[title]
	return i, ok
}
