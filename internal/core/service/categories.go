package service

import (
	"context"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (s Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Service.ListCategories"

	cs, err := s.backend.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (s Service) CreateCategory(
	ctx context.Context, c domain.Category,
) (domain.Category, error) {
	const op = "Service.CreateCategory"

	if err := c.Validate(); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.backend.CreateCategory(ctx, c)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventCreated, domain.EntityCategory, created.ID,
		map[string]string{"name": created.Name})
	return created, nil
}

func (s Service) UpdateCategory(
	ctx context.Context, id string, c domain.Category,
) (domain.Category, error) {
	const op = "Service.UpdateCategory"

	if id == "" {
		return domain.Category{}, fmt.Errorf("%s: %w", op, domain.Invalid("id", "is required"))
	}
	c.ID = id
	if err := c.Validate(); err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.backend.UpdateCategory(ctx, id, c)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventUpdated, domain.EntityCategory, id,
		map[string]string{"name": updated.Name})
	return updated, nil
}

func (s Service) DeleteCategory(ctx context.Context, id string) error {
	const op = "Service.DeleteCategory"

	if id == "" {
		return fmt.Errorf("%s: %w", op, domain.Invalid("id", "is required"))
	}

	if err := s.backend.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventDeleted, domain.EntityCategory, id, nil)
	return nil
}
