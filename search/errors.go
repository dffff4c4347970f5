package search

import "errors"

var (
	// ErrRepositoryRequired is returned when a searcher is constructed
	// without a record repository.
	ErrRepositoryRequired = errors.New("record repository is required")

	// ErrEmbedderRequired is returned when a searcher is constructed
	// without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrInvalidLimit is returned when a search is requested with a
	// non-positive result limit.
	ErrInvalidLimit = errors.New("search limit must be positive")
)
