package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// tokenPattern matches runs of two or more word characters. Apostrophes,
// hyphens and punctuation act as separators.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TokenizerOptions controls stop-word filtering.
type TokenizerOptions struct {
	// DisableStopWords keeps English function words in the output.
	DisableStopWords bool
	// ExtraStopWords are removed in addition to the English list.
	ExtraStopWords []string
}

// Tokenizer splits text into lowercase word tokens, filtering stop words.
// A Tokenizer is immutable and safe for concurrent use.
type Tokenizer struct {
	useEnglish bool
	extra      map[string]struct{}
}

// NewTokenizer creates a tokenizer from the provided options.
func NewTokenizer(opts TokenizerOptions) *Tokenizer {
	t := &Tokenizer{useEnglish: !opts.DisableStopWords}
	for _, word := range opts.ExtraStopWords {
		word = foldText(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if t.extra == nil {
			t.extra = make(map[string]struct{}, len(opts.ExtraStopWords))
		}
		t.extra[word] = struct{}{}
	}
	return t
}

var defaultTokenizer = NewTokenizer(TokenizerOptions{})

// Tokenize splits text with the default English tokenizer.
func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}

// Tokenize returns the surviving tokens of text in order of appearance.
// Repeated tokens are kept so callers can count term frequency.
func (t *Tokenizer) Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(foldText(text), -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		if t.isStopWord(token) {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// TokenizeAll tokenizes every document, preserving document order.
func (t *Tokenizer) TokenizeAll(docs []string) [][]string {
	out := make([][]string, len(docs))
	for i, doc := range docs {
		out[i] = t.Tokenize(doc)
	}
	return out
}

func (t *Tokenizer) isStopWord(token string) bool {
	if t.useEnglish && IsStopWord(token) {
		return true
	}
	_, ok := t.extra[token]
	return ok
}

// foldText applies compatibility normalization and Unicode case folding.
// Casers carry state, so one is created per call.
func foldText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Fold().String(norm.NFKC.String(text))
}
