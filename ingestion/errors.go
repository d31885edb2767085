package ingestion

import "errors"

var (
	// ErrProductRepositoryRequired is returned when a product repository is not provided.
	ErrProductRepositoryRequired = errors.New("product repository required")

	// ErrFAQRepositoryRequired is returned when a FAQ repository is not provided.
	ErrFAQRepositoryRequired = errors.New("FAQ repository required")

	// ErrNilItem is returned when a catalog item or its product is nil.
	ErrNilItem = errors.New("catalog item requires a product")

	// ErrInvalidMaxAttempts is returned when retry is configured with a
	// non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be positive")
)
