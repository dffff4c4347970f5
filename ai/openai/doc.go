// Package openai provides an ai.Embedder backed by OpenAI-compatible
// embedding APIs (OpenAI, Ollama, LocalAI, vLLM).
package openai
