package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warung/internal/models"
)

func seedRepo(t *testing.T, repo *MemoryProductRepository, n int) {
	t.Helper()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		p := models.Product{
			ProductID: fmt.Sprintf("P%03d", i),
			Name:      fmt.Sprintf("Product %d", i),
			MRPPrice:  float64(10 * i),
			Stock:     i % 3, // every third product is out of stock
			Category:  models.CategoryGrocery,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			UpdatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		assert.NoError(t, repo.Insert(context.Background(), &p))
	}
}

func TestMemoryRepoInsertAndFindByID(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	p := models.Product{ProductID: "P001", Name: "Milk", MRPPrice: 66, Stock: 40}
	assert.NoError(t, repo.Insert(ctx, &p))

	got, err := repo.FindByID(ctx, "P001")
	assert.NoError(t, err)
	assert.Equal(t, p, *got)

	_, err = repo.FindByID(ctx, "P999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoDuplicateInsert(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	p := models.Product{ProductID: "P001", Name: "Milk"}
	assert.NoError(t, repo.Insert(ctx, &p))

	dup := models.Product{ProductID: "P001", Name: "Other Milk"}
	assert.ErrorIs(t, repo.Insert(ctx, &dup), ErrDuplicateID)
}

func TestMemoryRepoConcurrentDuplicateInsert(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	const attempts = 10
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := models.Product{ProductID: "P001", Name: "Milk"}
			errs[i] = repo.Insert(ctx, &p)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateID)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestMemoryRepoFindManyPagination(t *testing.T) {
	repo := NewMemoryProductRepository()
	seedRepo(t, repo, 5)
	ctx := context.Background()

	page1, total, err := repo.FindMany(ctx, NewListOptions(ListParams{Page: 1, Limit: 2}))
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, total, err := repo.FindMany(ctx, NewListOptions(ListParams{Page: 3, Limit: 2}))
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page3, 1)

	// Past the last page: empty, count untouched.
	page4, total, err := repo.FindMany(ctx, NewListOptions(ListParams{Page: 4, Limit: 2}))
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page4, 0)
}

func TestMemoryRepoFindManySortsMostRecentFirst(t *testing.T) {
	repo := NewMemoryProductRepository()
	seedRepo(t, repo, 5)

	products, _, err := repo.FindMany(context.Background(), NewListOptions(ListParams{}))
	assert.NoError(t, err)
	assert.Len(t, products, 5)
	for i := 1; i < len(products); i++ {
		assert.False(t, products[i].CreatedAt.After(products[i-1].CreatedAt))
	}
}

func TestMemoryRepoFindManyFilters(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	dairy := models.Product{ProductID: "P001", Name: "Amul Milk", Category: models.CategoryDairy, Stock: 5}
	bakery := models.Product{ProductID: "P002", Name: "Bread", Category: models.CategoryBakery, Stock: 0}
	assert.NoError(t, repo.Insert(ctx, &dairy))
	assert.NoError(t, repo.Insert(ctx, &bakery))

	byCategory, total, err := repo.FindMany(ctx, NewListOptions(ListParams{Category: models.CategoryDairy}))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "P001", byCategory[0].ProductID)

	inStock, total, err := repo.FindMany(ctx, NewListOptions(ListParams{InStock: true}))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "P001", inStock[0].ProductID)

	// Substring search over name and category, case-insensitive.
	byName, _, err := repo.FindMany(ctx, NewListOptions(ListParams{Search: "amul"}))
	assert.NoError(t, err)
	assert.Len(t, byName, 1)

	byCat, _, err := repo.FindMany(ctx, NewListOptions(ListParams{Search: "bakery"}))
	assert.NoError(t, err)
	assert.Len(t, byCat, 1)
	assert.Equal(t, "P002", byCat[0].ProductID)

	none, total, err := repo.FindMany(ctx, NewListOptions(ListParams{Search: "durian"}))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Len(t, none, 0)
}

func TestMemoryRepoUpdateByIDAppliesPatch(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	p := models.Product{ProductID: "P001", Name: "Milk", MRPPrice: 66, Stock: 40, Category: models.CategoryDairy}
	assert.NoError(t, repo.Insert(ctx, &p))

	newStock := 35
	otherID := "P002"
	updated, err := repo.UpdateByID(ctx, "P001", models.UpdateProductRequest{
		ProductID: &otherID,
		Stock:     &newStock,
	})
	assert.NoError(t, err)
	assert.Equal(t, "P001", updated.ProductID) // id from path, not body
	assert.Equal(t, 35, updated.Stock)
	assert.Equal(t, 66.0, updated.MRPPrice) // untouched

	_, err = repo.UpdateByID(ctx, "P999", models.UpdateProductRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepoDeleteByIDReturnsDeleted(t *testing.T) {
	repo := NewMemoryProductRepository()
	ctx := context.Background()

	p := models.Product{ProductID: "P001", Name: "Milk"}
	assert.NoError(t, repo.Insert(ctx, &p))

	deleted, err := repo.DeleteByID(ctx, "P001")
	assert.NoError(t, err)
	assert.Equal(t, "Milk", deleted.Name)

	_, err = repo.FindByID(ctx, "P001")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.DeleteByID(ctx, "P001")
	assert.ErrorIs(t, err, ErrNotFound)
}
