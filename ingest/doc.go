// Package ingest loads raw lead records into storage.
//
// Raw records arrive as schema-less field maps, optionally with free
// text and a pre-computed vector. The pipeline validates them, embeds
// the ones without a usable vector in a single batch, and writes
// everything to the record repository.
package ingest
