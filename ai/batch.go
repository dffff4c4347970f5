package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
)

const retryBaseDelay = 500 * time.Millisecond

// EmbedBatch embeds texts in provider-sized chunks with bounded
// concurrency. Results align with the input order. A chunk that keeps
// failing after retries marks only its own items failed; EmbedBatch
// returns an error only when every single item failed.
func EmbedBatch(ctx context.Context, embedder Embedder, texts []string, opts BatchOptions) ([]EmbedResult, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	results := make([]EmbedResult, len(texts))
	for i, text := range texts {
		results[i].Text = text
	}
	if len(texts) == 0 {
		return results, nil
	}

	opts = opts.withDefaults()

	pool, err := ants.NewPool(opts.MaxConcurrency)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for start := 0; start < len(texts); start += opts.BatchSize {
		end := start + opts.BatchSize
		if end > len(texts) {
			end = len(texts)
		}
		start, end := start, end

		wg.Add(1)
		task := func() {
			defer wg.Done()
			embedChunk(ctx, embedder, texts[start:end], results[start:end], opts.MaxAttempts)
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			// Pool rejected the task; run it on the caller.
			task()
		}
	}
	wg.Wait()

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	if failed == len(results) {
		return results, fmt.Errorf("%w: %d items", ErrAllEmbeddingsFailed, failed)
	}
	if failed > 0 {
		slog.Debug("batch embedding finished with partial failures",
			"total", len(results), "failed", failed)
	}

	return results, nil
}

// embedChunk embeds one chunk, retrying transient failures, and writes
// vectors or the terminal error into the aligned results window.
func embedChunk(ctx context.Context, embedder Embedder, texts []string, out []EmbedResult, maxAttempts int) {
	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var embedErr error
		vectors, embedErr = embedder.EmbedTexts(ctx, texts)
		return embedErr
	}, maxAttempts, retryBaseDelay)

	if err == nil && len(vectors) != len(texts) {
		err = fmt.Errorf("embedding result mismatch: expected %d, received %d", len(texts), len(vectors))
	}
	if err != nil {
		for i := range out {
			out[i].Err = err
		}
		return
	}

	for i := range out {
		out[i].Vector = vectors[i]
	}
}
