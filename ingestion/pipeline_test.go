package ingestion

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
	"github.com/pasvio/vitrina/storage/badger"
)

func setupPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.ProductRepository, storage.FAQRepository) {
	t.Helper()

	productRepo, faqRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() { backend.Close() })

	pipeline, err := NewPipeline(productRepo, faqRepo, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { pipeline.Close() })

	return pipeline, productRepo, faqRepo
}

func TestNewPipeline(t *testing.T) {
	t.Run("requires product repository", func(t *testing.T) {
		_, faqRepo, backend, err := badger.NewMemoryRepositories()
		require.NoError(t, err)
		defer backend.Close()

		_, err = NewPipeline(nil, faqRepo)
		assert.ErrorIs(t, err, ErrProductRepositoryRequired)
	})

	t.Run("requires FAQ repository", func(t *testing.T) {
		productRepo, _, backend, err := badger.NewMemoryRepositories()
		require.NoError(t, err)
		defer backend.Close()

		_, err = NewPipeline(productRepo, nil)
		assert.ErrorIs(t, err, ErrFAQRepositoryRequired)
	})

	t.Run("rejects invalid pool size", func(t *testing.T) {
		productRepo, faqRepo, backend, err := badger.NewMemoryRepositories()
		require.NoError(t, err)
		defer backend.Close()

		_, err = NewPipeline(productRepo, faqRepo, WithPoolSize(0))
		assert.Error(t, err)
	})

	t.Run("rejects invalid retry attempts", func(t *testing.T) {
		productRepo, faqRepo, backend, err := badger.NewMemoryRepositories()
		require.NoError(t, err)
		defer backend.Close()

		_, err = NewPipeline(productRepo, faqRepo, WithRetry(0, 0))
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
	})
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("stores products and their FAQs", func(t *testing.T) {
		pipeline, productRepo, faqRepo := setupPipeline(t)

		items := []*CatalogItem{
			{
				Product: &core.Product{Title: "Pantofi sport", Price: 199.99, Stock: 10, Category: "Running Shoes"},
				FAQs: []*core.FAQEntry{
					{Question: "Are garanție?", Answer: "Da, 2 ani."},
					{Question: "Cât durează livrarea?", Answer: "2-4 zile lucrătoare."},
				},
			},
			{
				Product: &core.Product{Title: "Ghete de iarnă", Price: 349.50, Stock: 5, Category: "Boots"},
			},
		}

		require.NoError(t, pipeline.Ingest(ctx, items, nil))

		products, err := productRepo.GetAllProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		for _, item := range items {
			assert.NotZero(t, item.Product.Id, "products should receive generated IDs")
		}

		faqs, err := faqRepo.GetFAQsForProduct(ctx, items[0].Product.Id)
		require.NoError(t, err)
		assert.Len(t, faqs, 2)
		for _, entry := range faqs {
			assert.Equal(t, items[0].Product.Id, entry.ProductId)
		}
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		pipeline, _, _ := setupPipeline(t)
		assert.NoError(t, pipeline.Ingest(ctx, nil, nil))
	})

	t.Run("invalid product does not block the others", func(t *testing.T) {
		pipeline, productRepo, _ := setupPipeline(t)

		items := []*CatalogItem{
			{Product: &core.Product{Title: "", Price: 10, Stock: 1}},
			{Product: &core.Product{Title: "Sandale", Price: 89.99, Stock: 20}},
		}

		err := pipeline.Ingest(ctx, items, nil)
		assert.ErrorIs(t, err, core.ErrInvalidProduct)

		products, err := productRepo.GetAllProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "Sandale", products[0].Title)
	})

	t.Run("nil item is rejected", func(t *testing.T) {
		pipeline, _, _ := setupPipeline(t)

		err := pipeline.Ingest(ctx, []*CatalogItem{nil}, nil)
		assert.ErrorIs(t, err, ErrNilItem)
	})

	t.Run("invalid FAQ fails the item", func(t *testing.T) {
		pipeline, _, _ := setupPipeline(t)

		items := []*CatalogItem{
			{
				Product: &core.Product{Title: "Mocasini", Price: 150, Stock: 3},
				FAQs:    []*core.FAQEntry{{Question: "Are garanție?", Answer: ""}},
			},
		}

		err := pipeline.Ingest(ctx, items, nil)
		assert.ErrorIs(t, err, core.ErrInvalidFAQEntry)
	})

	t.Run("reports progress", func(t *testing.T) {
		pipeline, _, _ := setupPipeline(t, WithPoolSize(2))

		items := make([]*CatalogItem, 6)
		for i := range items {
			items[i] = &CatalogItem{
				Product: &core.Product{Title: "Model", Price: 100, Stock: 1},
			}
		}

		tracker := NewProgressTracker(io.Discard, len(items), 1)
		tracker.Start()
		require.NoError(t, pipeline.Ingest(ctx, items, tracker))
		tracker.Finish()
	})
}
