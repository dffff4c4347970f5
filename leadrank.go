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

// Package leadrank ranks lead candidates from schema-less records using
// vector similarity search, identity-resolving deduplication and a
// weighted relevance score. This file is the assembly surface: Database
// wires the storage backend, the embedding provider and the pipeline
// components together.
package leadrank

import (
	"log/slog"

	"github.com/prospekt/leadrank/ai"
	"github.com/prospekt/leadrank/ai/openai"
	"github.com/prospekt/leadrank/ingest"
	"github.com/prospekt/leadrank/leads"
	"github.com/prospekt/leadrank/resilience"
	"github.com/prospekt/leadrank/search"
	"github.com/prospekt/leadrank/storage"
	"github.com/prospekt/leadrank/storage/badger"
)

// Database bundles the storage backend, record repository and embedding
// provider behind one handle.
type Database struct {
	backend  *badger.Backend
	repo     storage.RecordRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	inMemory bool
	guarded  bool
}

// WithAIConfig overrides the embedding provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithInMemory opens the backend in memory instead of on disk.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithGuardedEmbedder wraps the embedder with the default rate limiter
// and circuit breaker.
func WithGuardedEmbedder() DatabaseOption {
	return func(o *databaseOptions) {
		o.guarded = true
	}
}

// NewDatabase opens the record store at filePath and connects the
// embedding provider.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedder, err := openai.NewEmbedder(options.aiConfig)
	if err != nil {
		repo.Close()
		backend.Close()
		return nil, err
	}

	if options.guarded {
		breaker, err := resilience.NewCircuitBreaker()
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
		limiter, err := resilience.NewRateLimiter()
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
		embedder, err = resilience.NewGuardedEmbedder(embedder, breaker, limiter)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:  backend,
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default(),
	}, nil
}

// Close releases the repository and the backend.
func (db *Database) Close() error {
	if err := db.repo.Close(); err != nil {
		db.logger.Error("error closing record repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// RecordRepository returns the underlying record repository.
func (db *Database) RecordRepository() storage.RecordRepository {
	return db.repo
}

// Embedder returns the configured embedder.
func (db *Database) Embedder() ai.Embedder {
	return db.embedder
}

// NewSearcher creates a similarity searcher over this database.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.repo, db.embedder, opts...)
}

// NewLeadService creates the lead discovery service over this database.
func (db *Database) NewLeadService(searchOpts []search.Option, opts ...leads.Option) (*leads.Service, error) {
	searcher, err := db.NewSearcher(searchOpts...)
	if err != nil {
		return nil, err
	}
	return leads.NewService(searcher, opts...)
}

// NewIngestPipeline creates an ingestion pipeline over this database.
func (db *Database) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(db.repo, db.embedder, opts...)
}
