package service

import (
	"context"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (s Service) ListOrders(
	ctx context.Context, q domain.OrderQuery,
) (domain.List[domain.Order], error) {
	const op = "Service.ListOrders"

	if q.Status != "" && !q.Status.Valid() {
		return domain.List[domain.Order]{}, fmt.Errorf(
			"%s: %w", op, domain.Invalid("status", "is unknown"),
		)
	}

	list, err := s.backend.ListOrders(ctx, q)
	if err != nil {
		return domain.List[domain.Order]{}, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	const op = "Service.GetOrder"

	if id == "" {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.Invalid("id", "is required"))
	}

	o, err := s.backend.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

// UpdateOrderStatus moves the order along the status workflow.
// Setting the current status again is a no-op.
func (s Service) UpdateOrderStatus(
	ctx context.Context, id string, next domain.OrderStatus,
) (domain.Order, error) {
	const op = "Service.UpdateOrderStatus"

	if !next.Valid() {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.Invalid("status", "is unknown"))
	}

	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if o.Status == next {
		return o, nil
	}
	if !o.Status.CanTransition(next) {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrTransition(o.Status, next))
	}

	updated, err := s.backend.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventStatusChanged, domain.EntityOrder, id,
		map[string]domain.OrderStatus{"from": o.Status, "to": next})
	return updated, nil
}

func (s Service) VerifyPayment(
	ctx context.Context, id string, d domain.PaymentDecision,
) (domain.Order, error) {
	const op = "Service.VerifyPayment"

	if err := d.Validate(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if !o.Payment.Status.Verifiable() {
		return domain.Order{}, fmt.Errorf(
			"%s: %w: payment is already %s", op, domain.ErrConflict, o.Payment.Status,
		)
	}

	updated, err := s.backend.VerifyPayment(ctx, id, d)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventPaymentVerified, domain.EntityOrder, id,
		map[string]any{"status": d.Status(), "note": d.Note})
	return updated, nil
}
