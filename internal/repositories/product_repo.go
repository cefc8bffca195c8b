package repositories

import (
	"context"
	"errors"

	"warung/internal/models"
)

// ErrNotFound is returned when no product exists for the given id.
var ErrNotFound = errors.New("product not found")

// ErrDuplicateID is returned when an insert collides with an existing
// productId. The authoritative guarantee is the store's unique index,
// not the service-level pre-check.
var ErrDuplicateID = errors.New("productId already exists")

// ProductRepository defines the interface for product data access.
// All operations are keyed by productId.
type ProductRepository interface {
	// FindByID returns the product with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// FindMany returns one page of products matching opts plus the total
	// match count. The count ignores skip/limit. The page and the count
	// are independent reads and may race against concurrent writes.
	FindMany(ctx context.Context, opts ListOptions) ([]models.Product, int64, error)
	// Insert stores a new product, or returns ErrDuplicateID.
	Insert(ctx context.Context, product *models.Product) error
	// UpdateByID applies the patch field-by-field and returns the updated
	// product, or ErrNotFound. The stored productId is never changed.
	UpdateByID(ctx context.Context, id string, patch models.UpdateProductRequest) (*models.Product, error)
	// DeleteByID removes the product and returns the deleted document
	// for confirmation, or ErrNotFound.
	DeleteByID(ctx context.Context, id string) (*models.Product, error)
}
