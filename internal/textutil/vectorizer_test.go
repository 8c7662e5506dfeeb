package textutil

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"drops stop words", "A man with a plan", []string{"man", "plan"}},
		{"curly apostrophe splits", "A man’s journey", []string{"man", "journey"}},
		{"punctuation", "love, pride, and forgiveness.", []string{"love", "pride", "forgiveness"}},
		{"case folding", "MUMBAI Mumbai mumbai", []string{"mumbai", "mumbai", "mumbai"}},
		{"single characters dropped", "x y zz", []string{"zz"}},
		{"only stop words", "the and of with", []string{}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizerOptions(t *testing.T) {
	keep := NewTokenizer(TokenizerOptions{DisableStopWords: true})
	if got := keep.Tokenize("the man"); !reflect.DeepEqual(got, []string{"the", "man"}) {
		t.Fatalf("DisableStopWords tokenize = %v", got)
	}

	extra := NewTokenizer(TokenizerOptions{ExtraStopWords: []string{" Love ", ""}})
	if got := extra.Tokenize("love and justice"); !reflect.DeepEqual(got, []string{"justice"}) {
		t.Fatalf("ExtraStopWords tokenize = %v", got)
	}
}

func TestBuildVocabularySortedAndDeterministic(t *testing.T) {
	docs := [][]string{{"zeta", "alpha"}, {"mid", "alpha"}}
	vocab := BuildVocabulary(docs)

	want := []string{"alpha", "mid", "zeta"}
	if got := vocab.Terms(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Terms() = %v, want %v", got, want)
	}
	if col, ok := vocab.Index("mid"); !ok || col != 1 {
		t.Fatalf("Index(mid) = %d, %v", col, ok)
	}
	if _, ok := vocab.Index("missing"); ok {
		t.Fatal("expected missing term to be absent")
	}
	again := BuildVocabulary(docs)
	if !reflect.DeepEqual(vocab.Terms(), again.Terms()) {
		t.Fatal("vocabulary not deterministic")
	}
}

func TestCorpusIDF(t *testing.T) {
	corpus := NewCorpus()
	corpus.Add([]string{"shared", "rare", "rare"})
	corpus.Add([]string{"shared"})

	if corpus.DocCount() != 2 {
		t.Fatalf("DocCount() = %d", corpus.DocCount())
	}
	if corpus.DocFreq("rare") != 1 {
		t.Fatalf("DocFreq(rare) = %d, want 1", corpus.DocFreq("rare"))
	}

	strict := corpus.IDF(IDFStrict)
	if strict["shared"] != 0 {
		t.Fatalf("strict idf(shared) = %v, want 0", strict["shared"])
	}
	wantRare := math.Log(3.0 / 2.0)
	if math.Abs(strict["rare"]-wantRare) > 1e-12 {
		t.Fatalf("strict idf(rare) = %v, want %v", strict["rare"], wantRare)
	}

	smooth := corpus.IDF(IDFSmooth)
	if smooth["shared"] != 1 {
		t.Fatalf("smooth idf(shared) = %v, want 1", smooth["shared"])
	}
	if smooth["rare"] <= smooth["shared"] {
		t.Fatal("expected rare term to outweigh shared term")
	}
}

func TestParseIDFMode(t *testing.T) {
	for in, want := range map[string]IDFMode{"": IDFSmooth, "Smooth": IDFSmooth, " strict ": IDFStrict} {
		got, err := ParseIDFMode(in)
		if err != nil || got != want {
			t.Errorf("ParseIDFMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseIDFMode("bm25"); err == nil {
		t.Error("expected error for unsupported mode")
	}
}

func TestFitProducesNormalizedVectors(t *testing.T) {
	docs := []string{
		"An army officer falls in love with a woman",
		"A struggling actor falls in love with a superstar",
		"the of and",
	}
	model, err := NewVectorizer(nil, IDFSmooth).Fit(docs)
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	if len(model.Vectors) != len(docs) {
		t.Fatalf("got %d vectors, want %d", len(model.Vectors), len(docs))
	}
	for i, vec := range model.Vectors[:2] {
		if vec.Dim() != model.Vocabulary.Len() {
			t.Fatalf("vector %d dim = %d, want %d", i, vec.Dim(), model.Vocabulary.Len())
		}
		var sum float64
		for _, w := range vec.Dense() {
			sum += w * w
		}
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("vector %d squared norm = %v, want 1", i, sum)
		}
	}
	if !model.Vectors[2].IsZero() || model.Vectors[2].Norm() != 0 {
		t.Fatal("expected stop-word-only description to yield the zero vector")
	}
}

func TestFitStrictDropsUbiquitousTerms(t *testing.T) {
	model, err := NewVectorizer(nil, IDFStrict).Fit([]string{"love journey", "love adventure"})
	if err != nil {
		t.Fatalf("Fit returned error: %v", err)
	}
	col, ok := model.Vocabulary.Index("love")
	if !ok {
		t.Fatal("expected love in vocabulary")
	}
	for i, vec := range model.Vectors {
		if vec.Weight(col) != 0 {
			t.Fatalf("vector %d weight(love) = %v, want 0", i, vec.Weight(col))
		}
	}
	if got := CosineSimilarity(model.Vectors[0], model.Vectors[1]); got != 0 {
		t.Fatalf("similarity = %v, want 0 once shared term is dropped", got)
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	if _, err := NewVectorizer(nil, "").Fit(nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}
