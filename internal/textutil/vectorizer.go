package textutil

import "errors"

// ErrEmptyCorpus is returned when Fit receives no documents.
var ErrEmptyCorpus = errors.New("empty corpus")

// Vectorizer fits TF-IDF vectors over a fixed set of documents.
type Vectorizer struct {
	tokenizer *Tokenizer
	mode      IDFMode
}

// NewVectorizer creates a vectorizer. A nil tokenizer uses the default
// English tokenizer.
func NewVectorizer(tokenizer *Tokenizer, mode IDFMode) *Vectorizer {
	if tokenizer == nil {
		tokenizer = defaultTokenizer
	}
	if mode == "" {
		mode = IDFSmooth
	}
	return &Vectorizer{tokenizer: tokenizer, mode: mode}
}

// Model is the output of Fit. Vectors[i] belongs to the i-th document.
type Model struct {
	Tokens     [][]string
	Vocabulary *Vocabulary
	Corpus     *Corpus
	IDF        map[string]float64
	Vectors    []Vector
	Mode       IDFMode
}

// Fit tokenizes docs, builds the shared vocabulary, and weighs each document.
func (v *Vectorizer) Fit(docs []string) (*Model, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	tokens := v.tokenizer.TokenizeAll(docs)
	vocab := BuildVocabulary(tokens)

	corpus := NewCorpus()
	for _, doc := range tokens {
		corpus.Add(doc)
	}
	idf := corpus.IDF(v.mode)

	vectors := make([]Vector, len(tokens))
	for i, doc := range tokens {
		vectors[i] = Weigh(doc, vocab, idf)
	}

	return &Model{
		Tokens:     tokens,
		Vocabulary: vocab,
		Corpus:     corpus,
		IDF:        idf,
		Vectors:    vectors,
		Mode:       v.mode,
	}, nil
}
