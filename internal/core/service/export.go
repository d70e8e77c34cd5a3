package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/ecom-admin/internal/core/domain"
)

// ExportReport builds a report upstream and archives it when an archiver
// is configured. Archive failures do not fail the export.
func (s Service) ExportReport(
	ctx context.Context, r domain.ExportRequest,
) (domain.Report, error) {
	const op = "Service.ExportReport"
	log := slog.With("op", op)

	if err := r.Validate(); err != nil {
		return domain.Report{}, fmt.Errorf("%s: %w", op, err)
	}

	report, err := s.backend.Export(ctx, r)
	if err != nil {
		return domain.Report{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.archiver != nil {
		key, err := s.archiver.ArchiveReport(ctx, r.Kind, report)
		if err != nil {
			log.Error("failed to archive report", "err", err)
		} else {
			report.ArchivedAt = s.now().UTC()
			log.Info("report archived", "key", key)
		}
	}

	s.emit(ctx, domain.EventExported, domain.EntityReport, report.Filename,
		map[string]any{"kind": r.Kind, "format": r.Format})
	return report, nil
}
