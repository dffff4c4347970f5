package leads

import "errors"

var (
	// ErrSearcherRequired is returned when a service is constructed
	// without a searcher.
	ErrSearcherRequired = errors.New("searcher is required")
)
