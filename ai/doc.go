// Package ai defines the embedding-provider abstraction the ranking
// pipeline consumes, batch embedding with bounded concurrency and
// per-item failure isolation, and provider configuration.
//
// Concrete providers live in subpackages: openai for OpenAI-compatible
// services, mock for deterministic test doubles.
package ai
