// Copyright 2025 Prospekt Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/prospekt/leadrank/ai"
	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/storage"
)

const defaultWindowMultiplier = 5

// Searcher runs exhaustive vector similarity search over a bounded window
// of recently stored records.
type Searcher struct {
	repo             storage.RecordRepository
	embedder         ai.Embedder
	logger           *slog.Logger
	monitor          Monitor
	windowMultiplier int
	maxConcurrency   int
	batchOpts        ai.BatchOptions
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets the logger for the searcher.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		s.logger = logger.With("component", "searcher")
		return nil
	}
}

// WithMonitor sets the monitor receiving search notifications.
func WithMonitor(monitor Monitor) Option {
	return func(s *Searcher) error {
		s.monitor = monitor
		return nil
	}
}

// WithWindowMultiplier overrides the candidate window multiplier. The
// window fetched from storage is limit * multiplier records.
func WithWindowMultiplier(multiplier int) Option {
	return func(s *Searcher) error {
		if multiplier > 0 {
			s.windowMultiplier = multiplier
		}
		return nil
	}
}

// WithMaxConcurrency bounds the number of queries scored in parallel
// during batch search.
func WithMaxConcurrency(n int) Option {
	return func(s *Searcher) error {
		if n > 0 {
			s.maxConcurrency = n
		}
		return nil
	}
}

// WithBatchOptions overrides the embedding batch options used by
// BatchSearch.
func WithBatchOptions(opts ai.BatchOptions) Option {
	return func(s *Searcher) error {
		s.batchOpts = opts
		return nil
	}
}

// NewSearcher creates a searcher over the given repository and embedder.
func NewSearcher(repo storage.RecordRepository, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		repo:             repo,
		embedder:         embedder,
		logger:           slog.Default().With("component", "searcher"),
		monitor:          NopMonitor(),
		windowMultiplier: defaultWindowMultiplier,
		maxConcurrency:   4,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Search embeds the query and returns up to limit matches with similarity
// strictly above minSimilarity, best match first. A non-empty sourceFilter
// restricts candidates to records from that source document.
func (s *Searcher) Search(ctx context.Context, query, sourceFilter string, limit int, minSimilarity float64) ([]core.SimilarityMatch, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}

	window, err := s.fetchWindow(ctx, sourceFilter, limit)
	if err != nil {
		return nil, err
	}

	s.monitor.SearchStarted(query)
	start := time.Now()
	matches := s.rank(vector, window, limit, minSimilarity)
	s.monitor.SearchCompleted(query, len(matches), time.Since(start))
	return matches, nil
}

// SearchVector is Search for a pre-computed query vector.
func (s *Searcher) SearchVector(ctx context.Context, vector []float32, sourceFilter string, limit int, minSimilarity float64) ([]core.SimilarityMatch, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	window, err := s.fetchWindow(ctx, sourceFilter, limit)
	if err != nil {
		return nil, err
	}
	return s.rank(vector, window, limit, minSimilarity), nil
}

// BatchSearch runs several queries against one shared candidate window.
// The result slice is aligned with the queries slice; a query whose
// embedding failed yields a nil entry. If the shared window cannot be
// fetched, BatchSearch degrades to sequential per-query searches.
func (s *Searcher) BatchSearch(ctx context.Context, queries []string, sourceFilter string, limit int, minSimilarity float64) ([][]core.SimilarityMatch, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if len(queries) == 0 {
		return nil, nil
	}

	embedded, err := ai.EmbedBatch(ctx, s.embedder, queries, s.batchOpts)
	if err != nil {
		return nil, err
	}

	window, err := s.fetchWindow(ctx, sourceFilter, limit)
	if err != nil {
		s.logger.Warn("shared window fetch failed, degrading to sequential search", "error", err)
		return s.sequentialSearch(ctx, embedded, sourceFilter, limit, minSimilarity)
	}

	results := make([][]core.SimilarityMatch, len(queries))

	pool, err := ants.NewPool(s.maxConcurrency)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range embedded {
		if embedded[i].Err != nil {
			s.logger.Warn("skipping query with failed embedding",
				"query", embedded[i].Text, "error", embedded[i].Err)
			continue
		}

		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			s.monitor.SearchStarted(embedded[i].Text)
			start := time.Now()
			results[i] = s.rank(embedded[i].Vector, window, limit, minSimilarity)
			s.monitor.SearchCompleted(embedded[i].Text, len(results[i]), time.Since(start))
		}
		if err := pool.Submit(task); err != nil {
			// Pool saturated or released: run inline rather than drop the query.
			task()
		}
	}
	wg.Wait()

	return results, nil
}

// sequentialSearch is the degraded batch path: each query fetches its own
// window. Queries that fail individually yield nil entries.
func (s *Searcher) sequentialSearch(ctx context.Context, embedded []ai.EmbedResult, sourceFilter string, limit int, minSimilarity float64) ([][]core.SimilarityMatch, error) {
	results := make([][]core.SimilarityMatch, len(embedded))
	for i := range embedded {
		if embedded[i].Err != nil {
			continue
		}
		matches, err := s.SearchVector(ctx, embedded[i].Vector, sourceFilter, limit, minSimilarity)
		if err != nil {
			s.logger.Warn("sequential search failed for query",
				"query", embedded[i].Text, "error", err)
			continue
		}
		results[i] = matches
	}
	return results, nil
}

func (s *Searcher) fetchWindow(ctx context.Context, sourceFilter string, limit int) ([]*core.EmbeddedRecord, error) {
	return s.repo.FetchWindow(ctx, sourceFilter, limit*s.windowMultiplier)
}

// rank scores every record in the window against the query vector and
// keeps the best limit matches above the threshold. Sorting is stable so
// equal scores preserve the window's newest-first order.
func (s *Searcher) rank(vector []float32, window []*core.EmbeddedRecord, limit int, minSimilarity float64) []core.SimilarityMatch {
	matches := make([]core.SimilarityMatch, 0, len(window))
	for _, record := range window {
		if len(record.Vector) == 0 {
			continue
		}
		score := Similarity(vector, record.Vector)
		if score <= minSimilarity {
			continue
		}
		matches = append(matches, core.SimilarityMatch{Record: record, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
