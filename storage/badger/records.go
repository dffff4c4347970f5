package badger

import (
	"bytes"
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/prospekt/leadrank/core"
	"github.com/prospekt/leadrank/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
type RecordRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(backend *Backend) (storage.RecordRepository, error) {
	idSeq, err := backend.GetSequence(recordIDSeq)
	if err != nil {
		return nil, err
	}

	return &RecordRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *RecordRepository) Close() error {
	return r.idSeq.Release()
}

// AddRecords adds one or more records to storage.
func (r *RecordRepository) AddRecords(ctx context.Context, records ...*core.EmbeddedRecord) ([]*core.EmbeddedRecord, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			if record.Id == 0 {
				nextID, err := r.idSeq.Next()
				if err != nil {
					return err
				}
				// BadgerDB sequences can return 0 on first call, so we skip it
				if nextID == 0 {
					nextID, err = r.idSeq.Next()
					if err != nil {
						return err
					}
				}
				record.Id = core.ID(nextID)
			} else {
				// Re-adding an existing ID is an upsert; drop the old index
				// entries so the record appears once in window fetches.
				previous, err := readRecord(tx, makeRecordKey(record.Id))
				if err != nil {
					return err
				}
				if previous != nil {
					if err := tx.Delete(makeRecentKey(previous.InsertedAt, previous.Id)); err != nil {
						return err
					}
					if previous.SourceDocumentId != "" {
						if err := tx.Delete(makeSourceKey(previous.SourceDocumentId, previous.Id)); err != nil {
							return err
						}
					}
				}
			}

			record.InsertedAt = time.Now().UTC()
			if record.CreatedAt.IsZero() {
				record.CreatedAt = record.InsertedAt
			}

			key := makeRecordKey(record.Id)
			if err := tx.Set(key, storage.MarshalRecord(record)); err != nil {
				return err
			}

			recentKey := makeRecentKey(record.InsertedAt, record.Id)
			if err := tx.Set(recentKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}

			if record.SourceDocumentId != "" {
				sourceKey := makeSourceKey(record.SourceDocumentId, record.Id)
				if err := tx.Set(sourceKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// GetRecord retrieves a single record by ID.
func (r *RecordRepository) GetRecord(ctx context.Context, id core.ID) (*core.EmbeddedRecord, error) {
	var result *core.EmbeddedRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readRecord(tx, makeRecordKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetRecords retrieves multiple records by their IDs.
func (r *RecordRepository) GetRecords(ctx context.Context, ids ...core.ID) ([]*core.EmbeddedRecord, error) {
	var result []*core.EmbeddedRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			record, err := readRecord(tx, makeRecordKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// DeleteRecords removes records by their IDs.
func (r *RecordRepository) DeleteRecords(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeRecordKey(id)

			record, err := readRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeRecentKey(record.InsertedAt, record.Id)); err != nil {
				return err
			}
			if record.SourceDocumentId != "" {
				if err := tx.Delete(makeSourceKey(record.SourceDocumentId, record.Id)); err != nil {
					return err
				}
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// FetchWindow retrieves up to windowSize records ordered newest-first,
// optionally restricted to one source document.
func (r *RecordRepository) FetchWindow(ctx context.Context, sourceFilter string, windowSize int) ([]*core.EmbeddedRecord, error) {
	if windowSize <= 0 {
		return nil, storage.ErrInvalidWindow
	}
	if sourceFilter != "" {
		return r.fetchWindowBySource(sourceFilter, windowSize)
	}
	return r.fetchWindowRecent(windowSize)
}

// fetchWindowRecent walks the recency index backwards.
func (r *RecordRepository) fetchWindowRecent(windowSize int) ([]*core.EmbeddedRecord, error) {
	var results []*core.EmbeddedRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last possible recency key, then walk backwards.
		startKey := makePartialRecentKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(recordRecentPrefix + ":")

		for iter.Seek(startKey); iter.Valid() && len(results) < windowSize; iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := readRecord(tx, makeRecordKey(recordID))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// fetchWindowBySource walks the source index, loads the matching records
// and keeps the newest windowSize of them.
func (r *RecordRepository) fetchWindowBySource(sourceFilter string, windowSize int) ([]*core.EmbeddedRecord, error) {
	var results []*core.EmbeddedRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialSourceKey(sourceFilter)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, startKey) {
				break
			}

			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			record, err := readRecord(tx, makeRecordKey(recordID))
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.EmbeddedRecord) int {
		return b.InsertedAt.Compare(a.InsertedAt)
	})
	if len(results) > windowSize {
		results = results[:windowSize]
	}
	return results, nil
}

// CountRecords returns the total number of stored records.
func (r *RecordRepository) CountRecords(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(recordPrefix + ":")

		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readRecord reads a record from the transaction.
func readRecord(tx *badger.Txn, key []byte) (*core.EmbeddedRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.EmbeddedRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalRecord(val)
		return unmarshalErr
	})
	return record, err
}
