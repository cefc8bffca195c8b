package models

import (
	"strings"
	"time"
)

// CreateProductRequest is the request body for product creation.
// MRPPrice and Stock are pointers so a missing field is distinguishable
// from a legitimate zero value.
type CreateProductRequest struct {
	ProductID  string   `json:"productId" validate:"required"`
	Name       string   `json:"name" validate:"required,max=200"`
	MRPPrice   *float64 `json:"mrpPrice" validate:"required,gte=0"`
	Image      string   `json:"image" validate:"omitempty,url"`
	Stock      *int     `json:"stock" validate:"required,gte=0"`
	Category   string   `json:"category" validate:"omitempty,grocerycategory"`
	Discounts  string   `json:"discounts"`
	ExpiryDate string   `json:"expiryDate" validate:"omitempty,dateymd"`
}

// ToProduct builds the entity to be stored, trimming identifier fields and
// applying the documented defaults for image and category.
func (r *CreateProductRequest) ToProduct(now time.Time) Product {
	p := Product{
		ProductID:  strings.TrimSpace(r.ProductID),
		Name:       strings.TrimSpace(r.Name),
		Image:      r.Image,
		Category:   r.Category,
		Discounts:  r.Discounts,
		ExpiryDate: r.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if r.MRPPrice != nil {
		p.MRPPrice = *r.MRPPrice
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if p.Image == "" {
		p.Image = DefaultImageURL
	}
	if p.Category == "" {
		p.Category = CategoryOther
	}
	return p
}

// UpdateProductRequest is the partial-update request body. Absent fields
// leave the stored values untouched. ProductID is accepted only so the
// service can reject an attempt to change it.
type UpdateProductRequest struct {
	ProductID  *string  `json:"productId"`
	Name       *string  `json:"name" validate:"omitempty,max=200"`
	MRPPrice   *float64 `json:"mrpPrice" validate:"omitempty,gte=0"`
	Image      *string  `json:"image" validate:"omitempty,url"`
	Stock      *int     `json:"stock" validate:"omitempty,gte=0"`
	Category   *string  `json:"category" validate:"omitempty,grocerycategory"`
	Discounts  *string  `json:"discounts"`
	ExpiryDate *string  `json:"expiryDate" validate:"omitempty,dateymd"`
}

// ApplyTo merges the patch onto a copy of existing and returns the merged
// candidate for re-validation. The identifier is always preserved.
func (r *UpdateProductRequest) ApplyTo(existing Product, now time.Time) Product {
	merged := existing
	if r.Name != nil {
		merged.Name = strings.TrimSpace(*r.Name)
	}
	if r.MRPPrice != nil {
		merged.MRPPrice = *r.MRPPrice
	}
	if r.Image != nil {
		merged.Image = *r.Image
	}
	if r.Stock != nil {
		merged.Stock = *r.Stock
	}
	if r.Category != nil {
		merged.Category = *r.Category
	}
	if r.Discounts != nil {
		merged.Discounts = *r.Discounts
	}
	if r.ExpiryDate != nil {
		merged.ExpiryDate = *r.ExpiryDate
	}
	merged.UpdatedAt = now
	return merged
}
