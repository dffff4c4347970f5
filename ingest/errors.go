package ingest

import "errors"

var (
	// ErrRepositoryRequired is returned when a pipeline is constructed
	// without a record repository.
	ErrRepositoryRequired = errors.New("record repository is required")

	// ErrEmbedderRequired is returned when a pipeline is constructed
	// without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")
)
