package storage

import (
	"context"

	"github.com/prospekt/leadrank/core"
)

// RecordRepository provides operations for managing embedded records.
// Implementations must be thread-safe and support concurrent readers; the
// ranking pipeline treats the store as read-only.
type RecordRepository interface {
	// AddRecords adds one or more records to storage.
	// For records with ID=0, generates new IDs from sequence.
	// Sets InsertedAt, and CreatedAt when unset.
	// Returns the records with generated IDs and timestamps populated.
	AddRecords(ctx context.Context, records ...*core.EmbeddedRecord) ([]*core.EmbeddedRecord, error)

	// GetRecord retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id core.ID) (*core.EmbeddedRecord, error)

	// GetRecords retrieves multiple records by their IDs.
	// Returns only the records that exist (no error for missing records).
	GetRecords(ctx context.Context, ids ...core.ID) ([]*core.EmbeddedRecord, error)

	// DeleteRecords removes records by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteRecords(ctx context.Context, ids ...core.ID) error

	// FetchWindow retrieves up to windowSize records ordered newest-first,
	// optionally restricted to one source document. This is the bounded
	// candidate window similarity search scans exhaustively; no ordering
	// guarantee beyond recency is assumed.
	FetchWindow(ctx context.Context, sourceFilter string, windowSize int) ([]*core.EmbeddedRecord, error)

	// CountRecords returns the total number of stored records.
	CountRecords(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}
