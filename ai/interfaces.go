package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use and must tolerate
// empty input strings.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// EntityExtractor extracts named entities from text.
// Implementations must be thread-safe for concurrent use.
type EntityExtractor interface {
	// ExtractEntities returns the named-entity spans found in the text,
	// restricted to the types listed in EntityTypes, lowercased,
	// whitespace-trimmed, and deduplicated.
	// An unavailable model yields an empty slice, not an error: entity
	// overlap is a soft signal and its absence must not fail the pipeline.
	ExtractEntities(ctx context.Context, text string) ([]string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. The underlying models are loaded once and shared; the returned
// services are read-only after construction and safe for concurrent use.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// EntityExtractor returns the named-entity extraction service.
	EntityExtractor() EntityExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
