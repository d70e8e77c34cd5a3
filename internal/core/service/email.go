package service

import (
	"context"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

func (s Service) SendBulkEmail(
	ctx context.Context, e domain.BulkEmail,
) (domain.EmailResult, error) {
	const op = "Service.SendBulkEmail"

	if err := e.Validate(); err != nil {
		return domain.EmailResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.backend.SendBulkEmail(ctx, e)
	if err != nil {
		return domain.EmailResult{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventEmailSent, domain.EntityEmail, "", map[string]any{
		"subject":  e.Subject,
		"audience": e.Audience,
		"sent":     res.Sent,
		"failed":   res.Failed,
	})
	return res, nil
}
