package models

import (
	"fmt"
	"time"
)

// DefaultImageURL is used when a product is created without an image.
const DefaultImageURL = "https://placehold.co/300x300?text=No+Image"

const (
	CategoryDairy      = "Dairy"
	CategoryFruits     = "Fruits"
	CategoryVegetables = "Vegetables"
	CategoryGrocery    = "Grocery"
	CategoryBakery     = "Bakery"
	CategoryBeverages  = "Beverages"
	CategorySnacks     = "Snacks"
	CategoryOther      = "Other"
)

// Categories is the fixed set of product categories. Input outside this
// set is rejected at write time, never coerced to CategoryOther.
var Categories = []string{
	CategoryDairy,
	CategoryFruits,
	CategoryVegetables,
	CategoryGrocery,
	CategoryBakery,
	CategoryBeverages,
	CategorySnacks,
	CategoryOther,
}

// IsValidCategory reports whether c is a member of the fixed category set.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Product represents a grocery product in the store.
// ProductID is immutable after creation and backed by a unique index.
type Product struct {
	ProductID  string    `json:"productId" bson:"productId" validate:"required"`
	Name       string    `json:"name" bson:"name" validate:"required,max=200"`
	MRPPrice   float64   `json:"mrpPrice" bson:"mrpPrice" validate:"gte=0"`
	Image      string    `json:"image" bson:"image" validate:"omitempty,url"`
	Stock      int       `json:"stock" bson:"stock" validate:"gte=0"`
	Category   string    `json:"category" bson:"category" validate:"grocerycategory"`
	Discounts  string    `json:"discounts" bson:"discounts"`
	ExpiryDate string    `json:"expiryDate,omitempty" bson:"expiryDate,omitempty" validate:"omitempty,dateymd"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FormattedPrice returns the MRP formatted as a currency string.
func (p *Product) FormattedPrice() string {
	return fmt.Sprintf("₹%.2f", p.MRPPrice)
}

// IsInStock reports whether any units are available.
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// IsExpired reports whether the expiry date lies in the past. A product
// without an expiry date, or with one that does not parse, never expires.
func (p *Product) IsExpired() bool {
	return p.isExpiredAt(time.Now())
}

func (p *Product) isExpiredAt(now time.Time) bool {
	if p.ExpiryDate == "" {
		return false
	}
	t, err := time.Parse("2006-01-02", p.ExpiryDate)
	if err != nil {
		return false
	}
	return t.Before(now)
}

// ProductView is the serialized form of a Product: the stored fields plus
// the derived attributes, recomputed on every read and never persisted.
type ProductView struct {
	Product
	FormattedPrice string `json:"formattedPrice"`
	IsInStock      bool   `json:"isInStock"`
	IsExpired      bool   `json:"isExpired"`
}

// NewProductView computes the derived attributes for p.
func NewProductView(p Product) ProductView {
	return ProductView{
		Product:        p,
		FormattedPrice: p.FormattedPrice(),
		IsInStock:      p.IsInStock(),
		IsExpired:      p.IsExpired(),
	}
}

// NewProductViews maps a page of products to their serialized form.
// It always returns a non-nil slice so an empty page encodes as [].
func NewProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewProductView(p))
	}
	return views
}
