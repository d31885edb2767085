package badger

import (
	"context"
	"testing"

	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductRepo(t *testing.T) storage.ProductRepository {
	t.Helper()
	productRepo, faqRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		faqRepo.Close()
		productRepo.Close()
		backend.Close()
	})
	return productRepo
}

func TestAddProducts(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	t.Run("generates IDs and timestamps", func(t *testing.T) {
		products := []*core.Product{
			{Title: "Pantofi sport", Price: 199.99, Stock: 10, Category: "Running Shoes"},
			{Title: "Ghete de iarnă", Price: 349.50, Stock: 4, Category: "Boots"},
		}

		added, err := repo.AddProducts(ctx, products...)
		require.NoError(t, err)
		require.Len(t, added, 2)

		for _, product := range added {
			assert.NotZero(t, product.Id)
			assert.False(t, product.InsertedAt.IsZero())
			assert.Equal(t, product.InsertedAt, product.UpdatedAt)
		}
		assert.NotEqual(t, added[0].Id, added[1].Id)
	})

	t.Run("keeps caller-assigned IDs", func(t *testing.T) {
		product := &core.Product{Id: 4242, Title: "Sandale", Price: 99.90, Stock: 7, Category: "Sandals"}

		added, err := repo.AddProducts(ctx, product)
		require.NoError(t, err)
		assert.Equal(t, core.ID(4242), added[0].Id)

		got, err := repo.GetProduct(ctx, 4242)
		require.NoError(t, err)
		assert.Equal(t, "Sandale", got.Title)
	})
}

func TestGetProduct(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	added, err := repo.AddProducts(ctx, &core.Product{
		Title:       "Pantofi casual",
		Description: "Pantofi din piele naturală.",
		Price:       249.99,
		Rating:      4.5,
		Stock:       12,
		Category:    "Casual",
	})
	require.NoError(t, err)

	t.Run("existing product", func(t *testing.T) {
		got, err := repo.GetProduct(ctx, added[0].Id)
		require.NoError(t, err)
		assert.Equal(t, "Pantofi casual", got.Title)
		assert.Equal(t, "Pantofi din piele naturală.", got.Description)
		assert.Equal(t, 249.99, got.Price)
		assert.Equal(t, 4.5, got.Rating)
		assert.Equal(t, int32(12), got.Stock)
		assert.Equal(t, "Casual", got.Category)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := repo.GetProduct(ctx, core.ID(999999))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetProducts(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	added, err := repo.AddProducts(ctx,
		&core.Product{Title: "A", Price: 1, Stock: 1, Category: "Casual"},
		&core.Product{Title: "B", Price: 2, Stock: 2, Category: "Casual"},
	)
	require.NoError(t, err)

	// Missing IDs are silently skipped
	got, err := repo.GetProducts(ctx, added[0].Id, core.ID(999999), added[1].Id)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdateProducts(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	added, err := repo.AddProducts(ctx, &core.Product{
		Title: "Pantofi sport", Price: 199.99, Stock: 10, Category: "Running Shoes",
	})
	require.NoError(t, err)
	product := added[0]

	t.Run("updates fields and timestamp", func(t *testing.T) {
		product.Price = 149.99
		product.Stock = 8

		updated, err := repo.UpdateProducts(ctx, product)
		require.NoError(t, err)

		got, err := repo.GetProduct(ctx, updated[0].Id)
		require.NoError(t, err)
		assert.Equal(t, 149.99, got.Price)
		assert.Equal(t, int32(8), got.Stock)
		assert.False(t, got.UpdatedAt.Before(got.InsertedAt))
	})

	t.Run("moves category index", func(t *testing.T) {
		product.Category = "Casual"
		_, err := repo.UpdateProducts(ctx, product)
		require.NoError(t, err)

		old, err := repo.GetProductsByCategory(ctx, "Running Shoes")
		require.NoError(t, err)
		assert.Empty(t, old)

		moved, err := repo.GetProductsByCategory(ctx, "Casual")
		require.NoError(t, err)
		require.Len(t, moved, 1)
		assert.Equal(t, product.Id, moved[0].Id)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := repo.UpdateProducts(ctx, &core.Product{Id: 999999, Title: "X"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteProducts(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	added, err := repo.AddProducts(ctx, &core.Product{
		Title: "Pantofi sport", Price: 199.99, Stock: 10, Category: "Running Shoes",
	})
	require.NoError(t, err)

	t.Run("removes record and category index", func(t *testing.T) {
		err := repo.DeleteProducts(ctx, added[0].Id)
		require.NoError(t, err)

		_, err = repo.GetProduct(ctx, added[0].Id)
		assert.ErrorIs(t, err, storage.ErrNotFound)

		byCategory, err := repo.GetProductsByCategory(ctx, "Running Shoes")
		require.NoError(t, err)
		assert.Empty(t, byCategory)
	})

	t.Run("missing product", func(t *testing.T) {
		err := repo.DeleteProducts(ctx, core.ID(999999))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetProductsByCategory(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	_, err := repo.AddProducts(ctx,
		&core.Product{Title: "Alergare 1", Price: 100, Stock: 1, Category: "Running Shoes"},
		&core.Product{Title: "Alergare 2", Price: 200, Stock: 2, Category: "Running Shoes"},
		&core.Product{Title: "Ghete", Price: 300, Stock: 3, Category: "Boots"},
	)
	require.NoError(t, err)

	t.Run("filters by category", func(t *testing.T) {
		got, err := repo.GetProductsByCategory(ctx, "Running Shoes")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, product := range got {
			assert.Equal(t, "Running Shoes", product.Category)
		}
	})

	t.Run("ordered by ID", func(t *testing.T) {
		got, err := repo.GetProductsByCategory(ctx, "Running Shoes")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Less(t, got[0].Id, got[1].Id)
	})

	t.Run("category prefix does not leak", func(t *testing.T) {
		// "Boots" must not match a category that merely starts with it.
		got, err := repo.GetProductsByCategory(ctx, "Boot")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown category", func(t *testing.T) {
		got, err := repo.GetProductsByCategory(ctx, "Nope")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGetAllProducts(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	_, err := repo.AddProducts(ctx,
		&core.Product{Id: 11, Title: "A", Price: 1, Stock: 1, Category: "Casual"},
		&core.Product{Id: 2, Title: "B", Price: 2, Stock: 2, Category: "Boots"},
		&core.Product{Id: 30, Title: "C", Price: 3, Stock: 3, Category: "Sandals"},
	)
	require.NoError(t, err)

	got, err := repo.GetAllProducts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Numeric order, not lexicographic key order
	assert.Equal(t, core.ID(2), got[0].Id)
	assert.Equal(t, core.ID(11), got[1].Id)
	assert.Equal(t, core.ID(30), got[2].Id)
}
