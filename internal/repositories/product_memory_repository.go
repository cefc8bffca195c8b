package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"warung/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It backs the test suites and offline runs; search
// falls back to case-insensitive substring matching since there is no
// text index.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

// NewMemoryProductRepository creates an empty in-memory repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// FindByID returns the product with the given id.
func (r *MemoryProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// FindMany returns one page of matching products plus the total count.
func (r *MemoryProductRepository) FindMany(ctx context.Context, opts ListOptions) ([]models.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matches(p, opts.Filter) {
			matched = append(matched, p)
		}
	}
	// Most recent first, with the id as a stable tiebreaker.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ProductID > matched[j].ProductID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := opts.Skip
	if start > total {
		start = total
	}
	end := start + int64(opts.Limit)
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// Insert stores a new product, rejecting duplicate ids.
func (r *MemoryProductRepository) Insert(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ProductID]; exists {
		return ErrDuplicateID
	}
	r.products[product.ProductID] = *product
	return nil
}

// UpdateByID applies the patch field-by-field under the write lock.
func (r *MemoryProductRepository) UpdateByID(ctx context.Context, id string, patch models.UpdateProductRequest) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	updated := patch.ApplyTo(existing, time.Now())
	updated.ProductID = id
	r.products[id] = updated
	return &updated, nil
}

// DeleteByID removes the product and returns the deleted copy.
func (r *MemoryProductRepository) DeleteByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.products, id)
	return &product, nil
}

func matches(p models.Product, f ProductFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.InStockOnly && p.Stock <= 0 {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			return false
		}
	}
	return true
}
