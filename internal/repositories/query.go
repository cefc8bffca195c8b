package repositories

// Listing defaults and bounds. Limit is capped so a single request
// cannot pull the whole collection.
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// ProductFilter is the store-agnostic filter predicate for listings.
type ProductFilter struct {
	// Category restricts results to an exact category match when non-empty.
	Category string
	// InStockOnly restricts results to stock > 0 when true.
	InStockOnly bool
	// Search is free text matched against name and category.
	Search string
}

// ListParams are the raw request parameters for a list operation.
type ListParams struct {
	Category string
	InStock  bool
	Search   string
	Page     int
	Limit    int
}

// ListOptions is a normalized filter plus pagination directive, ready for
// the repository. Skip is never negative.
type ListOptions struct {
	Filter ProductFilter
	Page   int
	Limit  int
	Skip   int64
}

// NewListOptions translates raw request parameters into a repository
// query. Non-positive page or limit fall back to the defaults, and limit
// is capped at MaxLimit.
func NewListOptions(p ListParams) ListOptions {
	page := p.Page
	if page <= 0 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return ListOptions{
		Filter: ProductFilter{
			Category:    p.Category,
			InStockOnly: p.InStock,
			Search:      p.Search,
		},
		Page:  page,
		Limit: limit,
		Skip:  int64(page-1) * int64(limit),
	}
}
