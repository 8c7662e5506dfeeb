package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"reelmatch/internal/recommend"
	"reelmatch/internal/testsupport"
)

func TestRecommendCommandPrintsNumberedList(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"recommend", "Chennai Express"}, env.configPath, "")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	want := "1. Veer-Zaara\n2. My Name is Khan\n3. Jab Tak Hai Jaan\n4. Raees\n5. Kal Ho Naa Ho\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRecommendCommandJoinsUnquotedWords(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"recommend", "--limit", "1", "Chennai", "Express"}, env.configPath, "")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if out != "1. Veer-Zaara\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRecommendCommandNotFound(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"recommend", "Inception"}, env.configPath, "")
	if !errors.Is(err, recommend.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
}

func TestRecommendCommandScoresAndJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"recommend", "--scores", "Chennai Express"}, env.configPath, "")
	if err != nil {
		t.Fatalf("recommend --scores: %v", err)
	}
	requireContains(t, out, "Similar to Chennai Express")
	requireContains(t, out, "Veer-Zaara")
	requireContains(t, out, "0.16")

	out, _, err = runCLI(t, []string{"recommend", "--json", "--limit", "2", "Chennai Express"}, env.configPath, "")
	if err != nil {
		t.Fatalf("recommend --json: %v", err)
	}
	var view recommendationView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if view.Query != "Chennai Express" || len(view.Matches) != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.Matches[0].Title != "Veer-Zaara" || view.Matches[0].Rank != 1 || view.Matches[0].Score <= 0 {
		t.Fatalf("unexpected first match: %+v", view.Matches[0])
	}
}

func TestRecommendCommandUsesConfiguredLimit(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLimit(2))

	out, _, err := runCLI(t, []string{"recommend", "Chennai Express"}, env.configPath, "")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", lines, out)
	}
}

func TestRecommendCommandRejectsNegativeLimit(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"recommend", "--limit", "-1", "Raees"}, env.configPath, ""); err == nil {
		t.Fatal("expected error for negative limit")
	}
}

func TestRecommendCommandCatalogSources(t *testing.T) {
	records := testsupport.SampleRecords()

	for name, opt := range map[string]testsupport.ConfigOption{
		"toml":   testsupport.WithTOMLCatalog(records),
		"sqlite": testsupport.WithSQLiteCatalog(records),
	} {
		t.Run(name, func(t *testing.T) {
			env := setupCLITestEnv(t, opt)
			out, _, err := runCLI(t, []string{"recommend", "Harbor"}, env.configPath, "")
			if err != nil {
				t.Fatalf("recommend: %v", err)
			}
			if strings.Count(out, "\n") != len(records)-1 {
				t.Fatalf("expected %d matches, got %q", len(records)-1, out)
			}
			requireNotContains(t, out, "Harbor")
		})
	}
}

func TestCatalogFlagOverridesConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	tomlEnv := setupCLITestEnv(t, testsupport.WithTOMLCatalog(testsupport.SampleRecords()))

	out, _, err := runCLI(t, []string{"--catalog", tomlEnv.cfg.Catalog.Path, "recommend", "Lighthouse"}, env.configPath, "")
	if err != nil {
		t.Fatalf("recommend with --catalog: %v", err)
	}
	requireContains(t, out, "Harbor")

	if _, _, err := runCLI(t, []string{"--catalog", "movies.csv", "recommend", "Raees"}, env.configPath, ""); err == nil {
		t.Fatal("expected error for unsupported catalog extension")
	}
}
