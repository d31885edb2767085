package ai

import "context"

// Answerer produces an answer to a customer question given a textual
// product context. Implementations must be thread-safe for concurrent use.
type Answerer interface {
	// GetAnswer generates an answer to the question using the provided
	// product context (title, description, price, stock, FAQ excerpts).
	// Returns an error if the underlying service call fails; the caller
	// decides how to degrade.
	GetAnswer(ctx context.Context, question, productContext string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Answerer instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Answerer returns the question answering service.
	// The returned Answerer is safe for concurrent use.
	Answerer() Answerer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
