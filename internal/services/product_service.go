package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"warung/internal/models"
	"warung/internal/repositories"
	"warung/internal/validation"
)

// ProductService orchestrates validation, uniqueness checks and
// repository calls for the product lifecycle, translating every failure
// into the service error taxonomy.
type ProductService struct {
	repo      repositories.ProductRepository
	validator *validation.Validator
	logger    *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, validator *validation.Validator, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// CreateProduct validates and stores a new product. The existence
// pre-check is a fast path only; the store's unique index is the
// race-safe guarantee, so a concurrent duplicate still maps to Conflict.
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, *ServiceError) {
	// Trim before validating so a whitespace-only identifier or name is
	// caught by the required check instead of being stored blank.
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.Name = strings.TrimSpace(req.Name)
	if details := s.validator.Struct(req); details != nil {
		return nil, newValidationError(details)
	}

	product := req.ToProduct(time.Now())

	if _, err := s.repo.FindByID(ctx, product.ProductID); err == nil {
		return nil, newConflictError(product.ProductID)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		s.logger.Error("product pre-check failed", zap.String("productId", product.ProductID), zap.Error(err))
		return nil, newPersistenceError(err)
	}

	if err := s.repo.Insert(ctx, &product); err != nil {
		if errors.Is(err, repositories.ErrDuplicateID) {
			return nil, newConflictError(product.ProductID)
		}
		s.logger.Error("product insert failed", zap.String("productId", product.ProductID), zap.Error(err))
		return nil, newPersistenceError(err)
	}
	return &product, nil
}

// ListProducts returns one page of products with pagination metadata.
// An empty result set is a success, never an error.
func (s *ProductService) ListProducts(ctx context.Context, params repositories.ListParams) ([]models.Product, models.Pagination, *ServiceError) {
	opts := repositories.NewListOptions(params)

	products, total, err := s.repo.FindMany(ctx, opts)
	if err != nil {
		s.logger.Error("product listing failed", zap.Error(err))
		return nil, models.Pagination{}, newPersistenceError(err)
	}

	pages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	return products, models.Pagination{
		Page:  opts.Page,
		Limit: opts.Limit,
		Total: total,
		Pages: pages,
	}, nil
}

// GetProduct retrieves a single product by its id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newBadRequestError("product id is required")
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		s.logger.Error("product lookup failed", zap.String("productId", id), zap.Error(err))
		return nil, newPersistenceError(err)
	}
	return product, nil
}

// UpdateProduct applies a partial update. The identifier comes from the
// path: a body that tries to change it is rejected, and the merged result
// is fully re-validated before the store is touched.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, *ServiceError) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newBadRequestError("product id is required")
	}
	if req.ProductID != nil && strings.TrimSpace(*req.ProductID) != id {
		return nil, newBadRequestError("productId is immutable and cannot be changed")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		s.logger.Error("product lookup failed", zap.String("productId", id), zap.Error(err))
		return nil, newPersistenceError(err)
	}

	merged := req.ApplyTo(*existing, time.Now())
	if details := s.validator.Struct(merged); details != nil {
		return nil, newValidationError(details)
	}

	updated, err := s.repo.UpdateByID(ctx, id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Deleted between the lookup and the update.
			return nil, newNotFoundError(id)
		}
		s.logger.Error("product update failed", zap.String("productId", id), zap.Error(err))
		return nil, newPersistenceError(err)
	}
	return updated, nil
}

// DeleteProduct removes a product and returns the deleted entity for
// confirmation.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, *ServiceError) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, newBadRequestError("product id is required")
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newNotFoundError(id)
		}
		s.logger.Error("product delete failed", zap.String("productId", id), zap.Error(err))
		return nil, newPersistenceError(err)
	}
	return deleted, nil
}
