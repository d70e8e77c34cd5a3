package service

import (
	"context"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (s Service) SetProductFilter(ctx context.Context, pf domain.ProductFilter) error {
	const op = "Service.SetProductFilter"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := pf.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if s.filterProducer == nil {
		return fmt.Errorf("%s: %w: product filter is not configured", op, domain.ErrUnavailable)
	}

	if err := s.filterProducer.ProduceFilter(ctx, pf); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventUpdated, domain.EntityFilter, pf.ProductName,
		map[string]any{"blocked": pf.Blocked})
	return nil
}

func (s Service) IsProductBlocked(ctx context.Context, productName string) (bool, error) {
	const op = "Service.IsProductBlocked"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if productName == "" {
		return false, fmt.Errorf("%s: %w", op, domain.Invalid("name", "is required"))
	}
	if s.filterView == nil {
		return false, fmt.Errorf("%s: %w: product filter is not configured", op, domain.ErrUnavailable)
	}

	blocked, err := s.filterView.IsBlocked(productName)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return blocked, nil
}
