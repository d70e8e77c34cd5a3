package service

import (
	"context"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (s Service) ListProducts(
	ctx context.Context, q domain.ProductQuery,
) (domain.List[domain.Product], error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return domain.List[domain.Product]{}, fmt.Errorf("%s: %w", op, err)
	}

	list, err := s.backend.ListProducts(ctx, q)
	if err != nil {
		return domain.List[domain.Product]{}, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	const op = "Service.GetProduct"

	if id == "" {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.Invalid("id", "is required"))
	}

	p, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Service.CreateProduct"

	if err := p.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.backend.CreateProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventCreated, domain.EntityProduct, created.ID,
		productPayload(created))
	return created, nil
}

func (s Service) UpdateProduct(
	ctx context.Context, id string, p domain.Product,
) (domain.Product, error) {
	const op = "Service.UpdateProduct"

	if id == "" {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.Invalid("id", "is required"))
	}
	if err := p.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	p.ID = id

	updated, err := s.backend.UpdateProduct(ctx, id, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventUpdated, domain.EntityProduct, id,
		productPayload(updated))
	return updated, nil
}

func (s Service) DeleteProduct(ctx context.Context, id string) error {
	const op = "Service.DeleteProduct"

	if id == "" {
		return fmt.Errorf("%s: %w", op, domain.Invalid("id", "is required"))
	}

	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventDeleted, domain.EntityProduct, id, nil)
	return nil
}

type productEvent struct {
	Name       string  `json:"name"`
	SKU        string  `json:"sku"`
	CategoryID string  `json:"category_id"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Stock      int     `json:"stock"`
	Active     bool    `json:"active"`
}

func productPayload(p domain.Product) productEvent {
	return productEvent{
		Name:       p.Name,
		SKU:        p.SKU,
		CategoryID: p.CategoryID,
		Price:      p.Price.Amount,
		Currency:   p.Price.Currency,
		Stock:      p.Stock,
		Active:     p.Active,
	}
}
