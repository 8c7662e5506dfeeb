package textutil

import (
	"fmt"
	"math"
	"strings"
)

// IDFMode selects the inverse document frequency formula.
type IDFMode string

const (
	// IDFSmooth uses ln((1+n)/(1+df)) + 1. Terms present in every document
	// keep a weight of one.
	IDFSmooth IDFMode = "smooth"
	// IDFStrict uses ln((1+n)/(1+df)). Terms present in every document
	// weigh zero.
	IDFStrict IDFMode = "strict"
)

// ParseIDFMode converts a configuration value into an IDFMode.
// An empty value selects IDFSmooth.
func ParseIDFMode(value string) (IDFMode, error) {
	switch IDFMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", IDFSmooth:
		return IDFSmooth, nil
	case IDFStrict:
		return IDFStrict, nil
	default:
		return "", fmt.Errorf("idf mode: unsupported value %q", value)
	}
}

// Corpus collects document frequency statistics for IDF computation.
type Corpus struct {
	docCount int
	docFreq  map[string]int
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{docFreq: make(map[string]int)}
}

// Add registers one document. Each distinct token counts once.
func (c *Corpus) Add(tokens []string) {
	if c == nil {
		return
	}
	c.docCount++
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		c.docFreq[token]++
	}
}

// DocCount returns the number of registered documents, including empty ones.
func (c *Corpus) DocCount() int {
	if c == nil {
		return 0
	}
	return c.docCount
}

// DocFreq returns how many documents contain term.
func (c *Corpus) DocFreq(term string) int {
	if c == nil {
		return 0
	}
	return c.docFreq[term]
}

// IDF computes inverse document frequency weights for every known term.
func (c *Corpus) IDF(mode IDFMode) map[string]float64 {
	if c == nil || c.docCount == 0 {
		return nil
	}
	idf := make(map[string]float64, len(c.docFreq))
	n := float64(c.docCount)
	for term, df := range c.docFreq {
		w := math.Log((n + 1) / (1 + float64(df)))
		if mode != IDFStrict {
			w++
		}
		idf[term] = w
	}
	return idf
}
