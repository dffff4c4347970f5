package badger

import "github.com/prospekt/leadrank/storage"

// NewMemoryRepository creates a record repository backed by an in-memory
// BadgerDB instance. Intended for tests; closing the repository does not
// close the backend, so the returned Backend must be closed by the caller.
func NewMemoryRepository() (storage.RecordRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}

	repo, err := NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return repo, backend, nil
}
