package main

import (
	"testing"

	"github.com/goccy/go-json"

	"reelmatch/internal/catalog"
)

func TestCatalogList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"catalog", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("catalog list: %v", err)
	}
	requireContains(t, out, "Catalog (10 movies)")
	requireContains(t, out, "Kabhi Khushi Kabhie Gham")

	out, _, err = runCLI(t, []string{"catalog", "list", "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("catalog list --json: %v", err)
	}
	var records []catalog.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(records) != 10 || records[0].Title != "Chennai Express" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestCatalogVocabulary(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"catalog", "vocabulary"}, env.configPath, "")
	if err != nil {
		t.Fatalf("catalog vocabulary: %v", err)
	}
	requireContains(t, out, "Vocabulary (")
	requireContains(t, out, "rameswaram")
	requireNotContains(t, out, " the ")

	out, _, err = runCLI(t, []string{"catalog", "vocabulary", "--json"}, env.configPath, "")
	if err != nil {
		t.Fatalf("catalog vocabulary --json: %v", err)
	}
	var entries []vocabularyEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.Term == "man" {
			found = true
			if e.DocFreq != 4 {
				t.Fatalf("df(man) = %d, want 4", e.DocFreq)
			}
		}
	}
	if !found {
		t.Fatal("expected man in vocabulary")
	}
}
