package ai_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prospekt/leadrank/ai"
	"github.com/prospekt/leadrank/ai/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("nil embedder", func(t *testing.T) {
		_, err := ai.EmbedBatch(ctx, nil, []string{"x"}, ai.BatchOptions{})
		assert.ErrorIs(t, err, ai.ErrEmbedderRequired)
	})

	t.Run("empty input", func(t *testing.T) {
		results, err := ai.EmbedBatch(ctx, mock.NewMockEmbedder(), nil, ai.BatchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("results align with input order", func(t *testing.T) {
		texts := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
		results, err := ai.EmbedBatch(ctx, mock.NewMockEmbedder(), texts, ai.BatchOptions{BatchSize: 2})
		require.NoError(t, err)
		require.Len(t, results, len(texts))

		for i, result := range results {
			assert.Equal(t, texts[i], result.Text)
			assert.NoError(t, result.Err)
			assert.Equal(t, mock.DeterministicVector(texts[i], 384), result.Vector)
		}
	})

	t.Run("partial failure is per item", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			if strings.Contains(texts[0], "poison") {
				return nil, errors.New("provider exploded")
			}
			vectors := make([][]float32, len(texts))
			for i, text := range texts {
				vectors[i] = mock.DeterministicVector(text, 8)
			}
			return vectors, nil
		}

		results, err := ai.EmbedBatch(ctx, embedder, []string{"good", "poison", "fine"},
			ai.BatchOptions{BatchSize: 1, MaxAttempts: 1})
		require.NoError(t, err)

		assert.NoError(t, results[0].Err)
		assert.Error(t, results[1].Err)
		assert.Nil(t, results[1].Vector)
		assert.NoError(t, results[2].Err)
	})

	t.Run("aggregate error only when everything fails", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("down")
		}

		results, err := ai.EmbedBatch(ctx, embedder, []string{"a", "b"},
			ai.BatchOptions{MaxAttempts: 1})
		assert.ErrorIs(t, err, ai.ErrAllEmbeddingsFailed)
		for _, result := range results {
			assert.Error(t, result.Err)
		}
	})

	t.Run("transient failure is retried", func(t *testing.T) {
		var calls atomic.Int64
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("flaky")
			}
			vectors := make([][]float32, len(texts))
			for i, text := range texts {
				vectors[i] = mock.DeterministicVector(text, 8)
			}
			return vectors, nil
		}

		results, err := ai.EmbedBatch(ctx, embedder, []string{"a"}, ai.BatchOptions{MaxAttempts: 2})
		require.NoError(t, err)
		assert.NoError(t, results[0].Err)
		assert.GreaterOrEqual(t, calls.Load(), int64(2))
	})

	t.Run("length mismatch is an item error", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return [][]float32{{0.1}}, nil // one vector for two texts
		}

		results, err := ai.EmbedBatch(ctx, embedder, []string{"a", "b"},
			ai.BatchOptions{BatchSize: 2, MaxAttempts: 1})
		assert.ErrorIs(t, err, ai.ErrAllEmbeddingsFailed)
		assert.Error(t, results[0].Err)
	})
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid attempts", func(t *testing.T) {
		err := ai.RetryWithBackoff(ctx, func() error { return nil }, 0, 0)
		assert.ErrorIs(t, err, ai.ErrInvalidMaxAttempts)
	})

	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		err := ai.RetryWithBackoff(ctx, func() error { calls++; return nil }, 3, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausts attempts", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := ai.RetryWithBackoff(ctx, func() error { calls++; return boom }, 3, 0)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 3, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := ai.RetryWithBackoff(cancelled, func() error { return errors.New("x") }, 3, 0)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
