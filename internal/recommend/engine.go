package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"reelmatch/internal/catalog"
	"reelmatch/internal/logging"
	"reelmatch/internal/similarity"
	"reelmatch/internal/textutil"
)

// DefaultLimit is the number of matches returned when Options.Limit is unset.
const DefaultLimit = 5

// ErrNotFound reports a query title that is not in the catalog.
var ErrNotFound = errors.New("movie not found")

// Options tune how an Engine is built.
type Options struct {
	Limit            int
	IDF              textutil.IDFMode
	DisableStopWords bool
	ExtraStopWords   []string
	Logger           *slog.Logger
}

// Match is one ranked recommendation.
type Match struct {
	Rank  int     `json:"rank"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Engine answers recommendation queries against a fixed catalog.
type Engine struct {
	catalog *catalog.Catalog
	model   *textutil.Model
	matrix  *similarity.Matrix
	limit   int
	logger  *slog.Logger
}

// Build fits the catalog descriptions and precomputes pairwise similarity.
func Build(cat *catalog.Catalog, opts Options) (*Engine, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", catalog.ErrConfiguration)
	}
	mode, err := textutil.ParseIDFMode(string(opts.IDF))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrConfiguration, err)
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	logger := logging.NewComponentLogger(opts.Logger, "recommend")

	tokenizer := textutil.NewTokenizer(textutil.TokenizerOptions{
		DisableStopWords: opts.DisableStopWords,
		ExtraStopWords:   opts.ExtraStopWords,
	})
	model, err := textutil.NewVectorizer(tokenizer, mode).Fit(cat.Descriptions())
	if err != nil {
		return nil, fmt.Errorf("%w: vectorize catalog: %w", catalog.ErrConfiguration, err)
	}
	for i, vec := range model.Vectors {
		if vec.IsZero() {
			logger.Warn("description has no indexable terms",
				logging.String(logging.FieldTitle, cat.Record(i).Title),
			)
		}
	}
	matrix := similarity.Build(model.Vectors)

	logger.Debug("engine built",
		logging.Int("movies", cat.Len()),
		logging.Int("terms", model.Vocabulary.Len()),
		logging.String("idf", string(mode)),
		logging.Int("limit", limit),
	)

	return &Engine{
		catalog: cat,
		model:   model,
		matrix:  matrix,
		limit:   limit,
		logger:  logger,
	}, nil
}

// Recommend returns up to the engine's limit of titles most similar to title.
func (e *Engine) Recommend(ctx context.Context, title string) ([]Match, error) {
	return e.RecommendN(ctx, title, e.limit)
}

// RecommendN is Recommend with a per-call limit. A limit <= 0 uses the
// engine default.
func (e *Engine) RecommendN(ctx context.Context, title string, limit int) ([]Match, error) {
	logger := logging.WithContext(ctx, e.logger)

	idx, ok := e.catalog.Index(title)
	if !ok {
		logger.Info("title not in catalog", logging.String(logging.FieldTitle, title))
		return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	if limit <= 0 {
		limit = e.limit
	}

	type scored struct {
		index int
		score float64
	}
	row := e.matrix.Row(idx)
	candidates := make([]scored, 0, len(row)-1)
	for j, score := range row {
		if j == idx {
			continue
		}
		candidates = append(candidates, scored{index: j, score: score})
	}
	// Stable so equal scores keep catalog order.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}
	matches := make([]Match, limit)
	for i := range matches {
		c := candidates[i]
		matches[i] = Match{
			Rank:  i + 1,
			Title: e.catalog.Record(c.index).Title,
			Score: c.score,
		}
	}

	if len(matches) > 0 {
		logger.Debug("recommendations ranked",
			logging.String(logging.FieldTitle, title),
			logging.Int("returned", len(matches)),
			logging.Float64("top_score", matches[0].Score),
		)
	}
	return matches, nil
}

// Titles returns only the titles of Recommend's matches.
func (e *Engine) Titles(ctx context.Context, title string) ([]string, error) {
	matches, err := e.Recommend(ctx, title)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = m.Title
	}
	return titles, nil
}

// Limit reports the default number of matches per query.
func (e *Engine) Limit() int { return e.limit }

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Vocabulary returns the fitted term vocabulary.
func (e *Engine) Vocabulary() *textutil.Vocabulary { return e.model.Vocabulary }

// Corpus returns document frequencies for the fitted descriptions.
func (e *Engine) Corpus() *textutil.Corpus { return e.model.Corpus }

// IDF returns the inverse document frequency of term, and false when the term
// is not in the vocabulary.
func (e *Engine) IDF(term string) (float64, bool) {
	w, ok := e.model.IDF[term]
	return w, ok
}

// Matrix returns the pairwise similarity matrix.
func (e *Engine) Matrix() *similarity.Matrix { return e.matrix }

// Vector returns the weighted vector of the i-th catalog entry.
func (e *Engine) Vector(i int) textutil.Vector { return e.model.Vectors[i] }
