package backend

import (
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/pkg/configtree"
	"github.com/niksmo/ecom-admin/pkg/paginate"
)

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (r listResponse[T]) page() paginate.Page {
	return paginate.New(r.Page, r.Limit, r.Total)
}

func toList[W, T any](r listResponse[W], conv func(W) T) domain.List[T] {
	items := make([]T, len(r.Items))
	for i, w := range r.Items {
		items[i] = conv(w)
	}
	return domain.List[T]{Items: items, Page: r.page()}
}

type (
	productJSON struct {
		ID             string            `json:"id,omitempty"`
		Name           string            `json:"name"`
		Slug           string            `json:"slug,omitempty"`
		SKU            string            `json:"sku,omitempty"`
		Brand          string            `json:"brand,omitempty"`
		CategoryID     string            `json:"category_id,omitempty"`
		Description    string            `json:"description,omitempty"`
		Price          float64           `json:"price"`
		Currency       string            `json:"currency,omitempty"`
		CompareAtPrice *float64          `json:"compare_at_price,omitempty"`
		Stock          int               `json:"stock"`
		Tags           []string          `json:"tags,omitempty"`
		Images         []imageJSON       `json:"images,omitempty"`
		Colors         []string          `json:"colors,omitempty"`
		Sizes          []sizeJSON        `json:"sizes,omitempty"`
		Specifications map[string]string `json:"specifications,omitempty"`
		Featured       bool              `json:"featured"`
		Active         bool              `json:"active"`
		CreatedAt      time.Time         `json:"created_at,omitzero"`
		UpdatedAt      time.Time         `json:"updated_at,omitzero"`
	}

	imageJSON struct {
		URL string `json:"url"`
		Alt string `json:"alt,omitempty"`
	}

	sizeJSON struct {
		Size  string `json:"size"`
		Stock int    `json:"stock"`
	}
)

func fromProduct(p domain.Product) productJSON {
	w := productJSON{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		SKU:            p.SKU,
		Brand:          p.Brand,
		CategoryID:     p.CategoryID,
		Description:    p.Description,
		Price:          p.Price.Amount,
		Currency:       p.Price.Currency,
		Stock:          p.Stock,
		Tags:           p.Tags,
		Colors:         p.Colors,
		Specifications: p.Specifications,
		Featured:       p.Featured,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.CompareAtPrice != nil {
		amount := p.CompareAtPrice.Amount
		w.CompareAtPrice = &amount
	}
	for _, img := range p.Images {
		w.Images = append(w.Images, imageJSON{URL: img.URL, Alt: img.Alt})
	}
	for _, s := range p.Sizes {
		w.Sizes = append(w.Sizes, sizeJSON{Size: s.Size, Stock: s.Stock})
	}
	return w
}

func (w productJSON) toDomain() domain.Product {
	p := domain.Product{
		ID:             w.ID,
		Name:           w.Name,
		Slug:           w.Slug,
		SKU:            w.SKU,
		Brand:          w.Brand,
		CategoryID:     w.CategoryID,
		Description:    w.Description,
		Price:          domain.ProductPrice{Amount: w.Price, Currency: w.Currency},
		Stock:          w.Stock,
		Tags:           w.Tags,
		Colors:         w.Colors,
		Specifications: w.Specifications,
		Featured:       w.Featured,
		Active:         w.Active,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
	}
	if w.CompareAtPrice != nil {
		p.CompareAtPrice = &domain.ProductPrice{
			Amount: *w.CompareAtPrice, Currency: w.Currency,
		}
	}
	for _, img := range w.Images {
		p.Images = append(p.Images, domain.ProductImage{URL: img.URL, Alt: img.Alt})
	}
	for _, s := range w.Sizes {
		p.Sizes = append(p.Sizes, domain.SizeVariant{Size: s.Size, Stock: s.Stock})
	}
	return p
}

type categoryJSON struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
	SortOrder   int    `json:"sort_order"`
	Active      bool   `json:"active"`
}

func fromCategory(c domain.Category) categoryJSON {
	return categoryJSON(c)
}

func (w categoryJSON) toDomain() domain.Category {
	return domain.Category(w)
}

type (
	orderJSON struct {
		ID              string            `json:"id"`
		Number          string            `json:"order_number"`
		Customer        orderCustomerJSON `json:"customer"`
		Items           []orderItemJSON   `json:"items"`
		Subtotal        float64           `json:"subtotal"`
		ShippingFee     float64           `json:"shipping_fee"`
		Total           float64           `json:"total"`
		Currency        string            `json:"currency"`
		Status          string            `json:"status"`
		Payment         paymentJSON       `json:"payment"`
		ShippingAddress string            `json:"shipping_address"`
		Note            string            `json:"note"`
		CreatedAt       time.Time         `json:"created_at"`
		UpdatedAt       time.Time         `json:"updated_at"`
	}

	orderCustomerJSON struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	orderItemJSON struct {
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
		Size      string  `json:"size"`
		Color     string  `json:"color"`
	}

	paymentJSON struct {
		Method    string `json:"method"`
		Reference string `json:"reference"`
		Status    string `json:"status"`
		ProofURL  string `json:"proof_url"`
	}
)

func (w orderJSON) toDomain() domain.Order {
	o := domain.Order{
		ID:     w.ID,
		Number: w.Number,
		Customer: domain.OrderCustomer{
			Name:  w.Customer.Name,
			Email: w.Customer.Email,
			Phone: w.Customer.Phone,
		},
		Subtotal:    w.Subtotal,
		ShippingFee: w.ShippingFee,
		Total:       w.Total,
		Currency:    w.Currency,
		Status:      domain.OrderStatus(w.Status),
		Payment: domain.Payment{
			Method:    w.Payment.Method,
			Reference: w.Payment.Reference,
			Status:    domain.PaymentStatus(w.Payment.Status),
			ProofURL:  w.Payment.ProofURL,
		},
		ShippingAddress: w.ShippingAddress,
		Note:            w.Note,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
	for _, it := range w.Items {
		o.Items = append(o.Items, domain.OrderItem(it))
	}
	return o
}

type customerJSON struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	OrdersCount int       `json:"orders_count"`
	TotalSpent  float64   `json:"total_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

func (w customerJSON) toDomain() domain.Customer {
	return domain.Customer(w)
}

type siteConfigJSON struct {
	Config    configtree.Document `json:"config"`
	Version   int                 `json:"version"`
	UpdatedAt time.Time           `json:"updated_at,omitzero"`
}

func (w siteConfigJSON) toDomain() domain.SiteConfig {
	return domain.SiteConfig{
		Document:  configtree.Clone(w.Config),
		Version:   w.Version,
		UpdatedAt: w.UpdatedAt,
	}
}

type bulkEmailJSON struct {
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
	Audience   string   `json:"audience"`
	Recipients []string `json:"recipients,omitempty"`
}

type emailResultJSON struct {
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors"`
}
