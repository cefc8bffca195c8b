package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"warung/internal/models"
	"warung/internal/validation"
)

func validCreateRequest() models.CreateProductRequest {
	price := 66.0
	stock := 40
	return models.CreateProductRequest{
		ProductID: "P001",
		Name:      "Milk",
		MRPPrice:  &price,
		Stock:     &stock,
		Category:  models.CategoryDairy,
	}
}

func TestValidCreateRequestPasses(t *testing.T) {
	v := validation.New()
	assert.Nil(t, v.Struct(validCreateRequest()))
}

func TestMissingRequiredFieldsAreAllCollected(t *testing.T) {
	v := validation.New()

	details := v.Struct(models.CreateProductRequest{})
	assert.Len(t, details, 4)

	joined := strings.Join(details, "; ")
	assert.Contains(t, joined, "productId is required")
	assert.Contains(t, joined, "name is required")
	assert.Contains(t, joined, "mrpPrice is required")
	assert.Contains(t, joined, "stock is required")
}

func TestNegativePriceAndStockRejected(t *testing.T) {
	v := validation.New()

	req := validCreateRequest()
	price := -1.0
	stock := -5
	req.MRPPrice = &price
	req.Stock = &stock

	details := v.Struct(req)
	assert.Len(t, details, 2)
	assert.Contains(t, details[0], "mrpPrice must be greater than or equal to 0")
	assert.Contains(t, details[1], "stock must be greater than or equal to 0")
}

func TestZeroPriceAndStockAccepted(t *testing.T) {
	v := validation.New()

	req := validCreateRequest()
	price := 0.0
	stock := 0
	req.MRPPrice = &price
	req.Stock = &stock

	assert.Nil(t, v.Struct(req))
}

func TestUnknownCategoryRejected(t *testing.T) {
	v := validation.New()

	req := validCreateRequest()
	req.Category = "Electronics"

	details := v.Struct(req)
	assert.Len(t, details, 1)
	assert.Contains(t, details[0], "category must be one of")
}

func TestExpiryDatePattern(t *testing.T) {
	v := validation.New()

	req := validCreateRequest()
	req.ExpiryDate = "2026-12-31"
	assert.Nil(t, v.Struct(req))

	for _, bad := range []string{"31-12-2026", "2026/12/31", "2026-1-1", "soon"} {
		req.ExpiryDate = bad
		details := v.Struct(req)
		assert.Len(t, details, 1, "expiryDate %q should be rejected", bad)
		assert.Contains(t, details[0], "expiryDate must match the YYYY-MM-DD format")
	}
}

func TestNameLengthLimit(t *testing.T) {
	v := validation.New()

	req := validCreateRequest()
	req.Name = strings.Repeat("x", 201)

	details := v.Struct(req)
	assert.Len(t, details, 1)
	assert.Contains(t, details[0], "name must be at most 200 characters")

	req.Name = strings.Repeat("x", 200)
	assert.Nil(t, v.Struct(req))
}

func TestMergedProductEntityValidation(t *testing.T) {
	v := validation.New()

	p := models.Product{
		ProductID: "P001",
		Name:      "Milk",
		MRPPrice:  66,
		Stock:     40,
		Category:  models.CategoryDairy,
	}
	assert.Nil(t, v.Struct(p))

	p.MRPPrice = -10
	p.Category = "Hardware"
	details := v.Struct(p)
	assert.Len(t, details, 2)
}
