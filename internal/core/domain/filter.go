package domain

type ProductFilter struct {
	ProductName string
	Blocked     bool
}

func (f ProductFilter) Validate() error {
	var v ValidationError
	if f.ProductName == "" {
		v.Add("product_name", "is required")
	}
	return v.Err()
}
