package httphandler

import (
	"time"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/pkg/configtree"
	"github.com/niksmo/ecom-admin/pkg/paginate"
)

type listResponse[T any] struct {
	Items      []T           `json:"items"`
	Pagination paginate.Meta `json:"pagination"`
}

func toListResponse[D, T any](l domain.List[D], conv func(D) T) listResponse[T] {
	items := make([]T, len(l.Items))
	for i, v := range l.Items {
		items[i] = conv(v)
	}
	return listResponse[T]{Items: items, Pagination: l.Page.Meta()}
}

type (
	Product struct {
		ID             string            `json:"id"`
		Name           string            `json:"name"`
		Slug           string            `json:"slug"`
		SKU            string            `json:"sku"`
		Brand          string            `json:"brand"`
		CategoryID     string            `json:"category_id"`
		Description    string            `json:"description"`
		Price          ProductPrice      `json:"price"`
		CompareAtPrice *ProductPrice     `json:"compare_at_price,omitempty"`
		Stock          int               `json:"stock"`
		Tags           []string          `json:"tags"`
		Images         []ProductImage    `json:"images"`
		Colors         []string          `json:"colors"`
		Sizes          []SizeVariant     `json:"sizes"`
		Specifications map[string]string `json:"specifications"`
		Featured       bool              `json:"featured"`
		Active         bool              `json:"active"`
		CreatedAt      time.Time         `json:"created_at,omitzero"`
		UpdatedAt      time.Time         `json:"updated_at,omitzero"`
	}

	ProductPrice struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}

	ProductImage struct {
		URL string `json:"url"`
		Alt string `json:"alt"`
	}

	SizeVariant struct {
		Size  string `json:"size"`
		Stock int    `json:"stock"`
	}
)

func (p Product) toDomain() domain.Product {
	dp := domain.Product{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		SKU:            p.SKU,
		Brand:          p.Brand,
		CategoryID:     p.CategoryID,
		Description:    p.Description,
		Price:          domain.ProductPrice(p.Price),
		Stock:          p.Stock,
		Tags:           p.Tags,
		Colors:         p.Colors,
		Specifications: p.Specifications,
		Featured:       p.Featured,
		Active:         p.Active,
	}
	if p.CompareAtPrice != nil {
		cp := domain.ProductPrice(*p.CompareAtPrice)
		dp.CompareAtPrice = &cp
	}

	dp.Images = make([]domain.ProductImage, len(p.Images))
	for i := range p.Images {
		dp.Images[i] = domain.ProductImage(p.Images[i])
	}
	dp.Sizes = make([]domain.SizeVariant, len(p.Sizes))
	for i := range p.Sizes {
		dp.Sizes[i] = domain.SizeVariant(p.Sizes[i])
	}
	return dp
}

func fromProduct(dp domain.Product) Product {
	p := Product{
		ID:             dp.ID,
		Name:           dp.Name,
		Slug:           dp.Slug,
		SKU:            dp.SKU,
		Brand:          dp.Brand,
		CategoryID:     dp.CategoryID,
		Description:    dp.Description,
		Price:          ProductPrice(dp.Price),
		Stock:          dp.Stock,
		Tags:           nonNil(dp.Tags),
		Colors:         nonNil(dp.Colors),
		Specifications: dp.Specifications,
		Featured:       dp.Featured,
		Active:         dp.Active,
		CreatedAt:      dp.CreatedAt,
		UpdatedAt:      dp.UpdatedAt,
	}
	if dp.CompareAtPrice != nil {
		cp := ProductPrice(*dp.CompareAtPrice)
		p.CompareAtPrice = &cp
	}

	p.Images = make([]ProductImage, len(dp.Images))
	for i := range dp.Images {
		p.Images[i] = ProductImage(dp.Images[i])
	}
	p.Sizes = make([]SizeVariant, len(dp.Sizes))
	for i := range dp.Sizes {
		p.Sizes[i] = SizeVariant(dp.Sizes[i])
	}
	return p
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ParentID    string `json:"parent_id"`
	SortOrder   int    `json:"sort_order"`
	Active      bool   `json:"active"`
}

type (
	Order struct {
		ID              string        `json:"id"`
		Number          string        `json:"number"`
		Customer        OrderCustomer `json:"customer"`
		Items           []OrderItem   `json:"items"`
		Subtotal        float64       `json:"subtotal"`
		ShippingFee     float64       `json:"shipping_fee"`
		Total           float64       `json:"total"`
		Currency        string        `json:"currency"`
		Status          string        `json:"status"`
		Payment         Payment       `json:"payment"`
		ShippingAddress string        `json:"shipping_address"`
		Note            string        `json:"note"`
		CreatedAt       time.Time     `json:"created_at"`
		UpdatedAt       time.Time     `json:"updated_at"`
	}

	OrderCustomer struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	OrderItem struct {
		ProductID string  `json:"product_id"`
		Name      string  `json:"name"`
		Quantity  int     `json:"quantity"`
		UnitPrice float64 `json:"unit_price"`
		Size      string  `json:"size"`
		Color     string  `json:"color"`
	}

	Payment struct {
		Method    string `json:"method"`
		Reference string `json:"reference"`
		Status    string `json:"status"`
		ProofURL  string `json:"proof_url"`
	}
)

func fromOrder(o domain.Order) Order {
	v := Order{
		ID:              o.ID,
		Number:          o.Number,
		Customer:        OrderCustomer(o.Customer),
		Items:           make([]OrderItem, len(o.Items)),
		Subtotal:        o.Subtotal,
		ShippingFee:     o.ShippingFee,
		Total:           o.Total,
		Currency:        o.Currency,
		Status:          string(o.Status),
		ShippingAddress: o.ShippingAddress,
		Note:            o.Note,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Payment: Payment{
			Method:    o.Payment.Method,
			Reference: o.Payment.Reference,
			Status:    string(o.Payment.Status),
			ProofURL:  o.Payment.ProofURL,
		},
	}
	for i := range o.Items {
		v.Items[i] = OrderItem(o.Items[i])
	}
	return v
}

type Customer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	OrdersCount int       `json:"orders_count"`
	TotalSpent  float64   `json:"total_spent"`
	CreatedAt   time.Time `json:"created_at"`
}

type (
	SiteConfig struct {
		Config    configtree.Document `json:"config"`
		Version   int                 `json:"version"`
		UpdatedAt time.Time           `json:"updated_at,omitzero"`
	}

	ConfigDraft struct {
		Editor      string              `json:"editor"`
		Config      configtree.Document `json:"config"`
		BaseVersion int                 `json:"base_version"`
		UpdatedAt   time.Time           `json:"updated_at"`
		Changed     *bool               `json:"changed,omitempty"`
	}

	ConfigChange struct {
		Op    string `json:"op"`
		Path  string `json:"path"`
		Value any    `json:"value"`
		Index int    `json:"index"`
	}

	ConfigRevision struct {
		ID          int64               `json:"id"`
		Config      configtree.Document `json:"config"`
		PublishedBy string              `json:"published_by"`
		Note        string              `json:"note"`
		PublishedAt time.Time           `json:"published_at"`
	}

	PublishRequest struct {
		Note string `json:"note"`
	}
)

func fromSiteConfig(c domain.SiteConfig) SiteConfig {
	return SiteConfig{
		Config:    configtree.Clone(c.Document),
		Version:   c.Version,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromDraft(d domain.ConfigDraft) ConfigDraft {
	return ConfigDraft{
		Editor:      d.Editor,
		Config:      configtree.Clone(d.Document),
		BaseVersion: d.BaseVersion,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromRevision(r domain.ConfigRevision) ConfigRevision {
	return ConfigRevision{
		ID:          r.ID,
		Config:      configtree.Clone(r.Document),
		PublishedBy: r.PublishedBy,
		Note:        r.Note,
		PublishedAt: r.PublishedAt,
	}
}

type (
	OrderStatusRequest struct {
		Status string `json:"status"`
	}

	PaymentDecisionRequest struct {
		Approved bool   `json:"approved"`
		Note     string `json:"note"`
	}

	BulkEmailRequest struct {
		Subject    string   `json:"subject"`
		Body       string   `json:"body"`
		Audience   string   `json:"audience"`
		Recipients []string `json:"recipients"`
	}

	EmailResult struct {
		Sent   int      `json:"sent"`
		Failed int      `json:"failed"`
		Errors []string `json:"errors"`
	}

	UploadedImage struct {
		URL string `json:"url"`
	}
)

type FilterRule struct {
	Name    string `json:"name"`
	Blocked bool   `json:"blocked"`
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
