package ai

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrAllEmbeddingsFailed is returned when every item of a batch failed.
	// Partial failure is reported per item, never as a batch error.
	ErrAllEmbeddingsFailed = errors.New("all embeddings failed")

	// ErrInvalidMaxAttempts is returned for a non-positive retry budget.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)
