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

package ingest

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/prospekt/leadrank/ai"
	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/storage"
)

// RawRecord is one record as supplied by a data source: schema-less
// fields, optional free text and an optional pre-computed vector in any
// of the supported representations.
type RawRecord struct {
	SourceDocumentId string
	Fields           map[string]string
	Content          string
	Vector           any
}

// Stats summarizes one ingestion call.
type Stats struct {
	Stored   int // records written to storage
	Embedded int // records that got a vector during this call
	Skipped  int // records rejected before storage
}

// Pipeline turns raw records into stored, embedded records. Records
// carrying a usable vector keep it; the rest are embedded in one batch.
// A record whose embedding fails is still stored, vectorless, so a later
// pass can fill it in; similarity search skips it until then.
type Pipeline struct {
	repo      storage.RecordRepository
	embedder  ai.Embedder
	logger    *slog.Logger
	batchOpts ai.BatchOptions
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets the logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		p.logger = logger.With("component", "ingest")
		return nil
	}
}

// WithBatchOptions overrides the embedding batch options.
func WithBatchOptions(opts ai.BatchOptions) Option {
	return func(p *Pipeline) error {
		p.batchOpts = opts
		return nil
	}
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(repo storage.RecordRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	p := &Pipeline{
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default().With("component", "ingest"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Ingest validates, embeds and stores the given raw records.
func (p *Pipeline) Ingest(ctx context.Context, raw ...RawRecord) (Stats, error) {
	var stats Stats

	records := make([]*core.EmbeddedRecord, 0, len(raw))
	var pending []*core.EmbeddedRecord // records still needing a vector
	var pendingTexts []string

	for _, r := range raw {
		record := &core.EmbeddedRecord{
			SourceDocumentId: r.SourceDocumentId,
			Fields:           r.Fields,
			Content:          r.Content,
		}
		if record.Content == "" {
			record.Content = contentFromFields(r.Fields)
		}

		if err := core.ValidateRecord(record); err != nil {
			p.logger.Warn("skipping invalid record", "source", r.SourceDocumentId, "error", err)
			stats.Skipped++
			continue
		}

		// Content-addressed IDs make re-ingesting the same dataset an
		// upsert instead of a pile of duplicates.
		record.Id = core.IDFromContent(record.Content)

		if r.Vector != nil {
			vector, err := core.CoerceVector(r.Vector)
			if err != nil {
				p.logger.Warn("ignoring unconvertible vector, record will be embedded",
					"source", r.SourceDocumentId, "error", err)
			} else {
				record.Vector = vector
			}
		}

		if len(record.Vector) == 0 {
			pending = append(pending, record)
			pendingTexts = append(pendingTexts, record.Content)
		}
		records = append(records, record)
	}

	if len(pending) > 0 {
		results, err := ai.EmbedBatch(ctx, p.embedder, pendingTexts, p.batchOpts)
		if err != nil {
			// Total embedding failure: store the records vectorless.
			p.logger.Error("batch embedding failed, storing records without vectors", "error", err)
		} else {
			for i, result := range results {
				if result.Err != nil {
					p.logger.Warn("embedding failed for record",
						"source", pending[i].SourceDocumentId, "error", result.Err)
					continue
				}
				pending[i].Vector = result.Vector
				stats.Embedded++
			}
		}
	}

	if len(records) == 0 {
		return stats, nil
	}

	stored, err := p.repo.AddRecords(ctx, records...)
	if err != nil {
		return stats, err
	}
	stats.Stored = len(stored)

	p.logger.Info("ingested records",
		"stored", stats.Stored, "embedded", stats.Embedded, "skipped", stats.Skipped)
	return stats, nil
}

// contentFromFields builds search text for records that have no free
// text of their own. Keys are sorted so the output is deterministic.
func contentFromFields(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := strings.TrimSpace(fields[k])
		if v == "" {
			continue
		}
		parts = append(parts, k+": "+v)
	}
	return strings.Join(parts, ". ")
}
