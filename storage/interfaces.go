package storage

import (
	"context"

	"github.com/pasvio/vitrina/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProductRepository provides operations for managing catalog products.
type ProductRepository interface {
	Repository
	// AddProducts adds one or more products to storage.
	// For products with Id=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the products with generated IDs and timestamps populated.
	AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// UpdateProducts updates existing products.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any product doesn't exist.
	UpdateProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// DeleteProducts removes products by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any product doesn't exist.
	DeleteProducts(ctx context.Context, ids ...core.ID) error

	// GetProduct retrieves a single product by ID.
	// Returns ErrNotFound if the product doesn't exist.
	GetProduct(ctx context.Context, id core.ID) (*core.Product, error)

	// GetProducts retrieves multiple products by their IDs.
	// Returns only the products that exist (no error for missing products).
	GetProducts(ctx context.Context, ids ...core.ID) ([]*core.Product, error)

	// GetProductsByCategory retrieves all products in a category,
	// ordered by ID. An unknown category yields an empty slice.
	GetProductsByCategory(ctx context.Context, category string) ([]*core.Product, error)

	// GetAllProducts retrieves the full catalog ordered by ID.
	GetAllProducts(ctx context.Context) ([]*core.Product, error)
}

// FAQRepository provides operations for managing per-product FAQ entries.
type FAQRepository interface {
	Repository
	// AddFAQs adds one or more FAQ entries to storage.
	// Uses content-based IDs (IDFromContent of the entry tuple), so
	// re-adding the same question for a product overwrites in place.
	// Sets CreatedAt timestamp if not already set.
	// Returns the entries with IDs and timestamps populated.
	AddFAQs(ctx context.Context, entries ...*core.FAQEntry) ([]*core.FAQEntry, error)

	// DeleteFAQs removes FAQ entries by their IDs.
	// Returns ErrNotFound if any entry doesn't exist.
	DeleteFAQs(ctx context.Context, ids ...core.ID) error

	// GetFAQ retrieves a single FAQ entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetFAQ(ctx context.Context, id core.ID) (*core.FAQEntry, error)

	// GetFAQsForProduct retrieves all FAQ entries for a product in
	// creation order. A product without entries yields an empty slice.
	GetFAQsForProduct(ctx context.Context, productID core.ID) ([]*core.FAQEntry, error)
}
