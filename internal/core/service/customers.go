package service

import (
	"context"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (s Service) ListCustomers(
	ctx context.Context, q domain.ListQuery,
) (domain.List[domain.Customer], error) {
	const op = "Service.ListCustomers"

	list, err := s.backend.ListCustomers(ctx, q)
	if err != nil {
		return domain.List[domain.Customer]{}, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s Service) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	const op = "Service.GetCustomer"

	if id == "" {
		return domain.Customer{}, fmt.Errorf("%s: %w", op, domain.Invalid("id", "is required"))
	}

	c, err := s.backend.GetCustomer(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}
