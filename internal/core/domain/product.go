package domain

import "time"

type (
	Product struct {
		ID             string
		Name           string
		Slug           string
		SKU            string
		Brand          string
		CategoryID     string
		Description    string
		Price          ProductPrice
		CompareAtPrice *ProductPrice
		Stock          int
		Tags           []string
		Images         []ProductImage
		Colors         []string
		Sizes          []SizeVariant
		Specifications map[string]string
		Featured       bool
		Active         bool
		CreatedAt      time.Time
		UpdatedAt      time.Time
	}

	ProductPrice struct {
		Amount   float64
		Currency string
	}

	ProductImage struct {
		URL string
		Alt string
	}

	SizeVariant struct {
		Size  string
		Stock int
	}
)

// Validate checks the fields an admin form requires before the product
// is sent upstream.
func (p Product) Validate() error {
	var v ValidationError
	if p.Name == "" {
		v.Add("name", "is required")
	}
	if p.Price.Amount < 0 {
		v.Add("price.amount", "must not be negative")
	}
	if p.CompareAtPrice != nil && p.CompareAtPrice.Amount < 0 {
		v.Add("compare_at_price.amount", "must not be negative")
	}
	if p.Stock < 0 {
		v.Add("stock", "must not be negative")
	}
	for _, s := range p.Sizes {
		if s.Size == "" {
			v.Add("sizes", "size label is required")
		}
		if s.Stock < 0 {
			v.Add("sizes", "stock of "+s.Size+" must not be negative")
		}
	}
	for k := range p.Specifications {
		if k == "" {
			v.Add("specifications", "key is required")
		}
	}
	return v.Err()
}

type ProductQuery struct {
	ListQuery
	CategoryID string
}
