package ai

// EmbedResult is the outcome of embedding one text in a batch. Vector is
// nil and Err non-nil when that item failed; other items are unaffected.
type EmbedResult struct {
	Text   string
	Vector []float32
	Err    error
}

// BatchOptions tunes batch embedding.
type BatchOptions struct {
	// BatchSize is the number of texts sent to the provider per request.
	// Default: 16.
	BatchSize int

	// MaxConcurrency bounds the number of in-flight provider requests.
	// Default: 4.
	MaxConcurrency int

	// MaxAttempts is the number of tries per batch before its items are
	// marked failed. Default: 3.
	MaxAttempts int
}

func (o BatchOptions) withDefaults() BatchOptions {
	if o.BatchSize <= 0 {
		o.BatchSize = 16
	}
	if o.MaxConcurrency <= 0 {
		o.MaxConcurrency = 4
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	return o
}
