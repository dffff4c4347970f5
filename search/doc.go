// Package search provides exhaustive vector similarity search over stored
// records.
//
// Queries are embedded, compared against a candidate window of recent
// records, and ranked by cosine similarity remapped to [0, 1]. The window
// is a fixed multiple of the requested limit rather than the whole store,
// keeping latency bounded as the record set grows. Batch search shares
// one window across all queries and falls back to per-query windows when
// the shared fetch fails.
package search
