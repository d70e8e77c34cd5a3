package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var _ port.RevisionsStorage = (*RevisionsRepository)(nil)

// RevisionsRepository is the append-only history of published
// site configurations.
type RevisionsRepository struct {
	sqldb sqldb
}

func NewRevisionsRepository(sqldb sqldb) RevisionsRepository {
	return RevisionsRepository{sqldb}
}

func (r RevisionsRepository) AddRevision(
	ctx context.Context, rev domain.ConfigRevision,
) (domain.ConfigRevision, error) {
	const op = "RevisionsRepository.AddRevision"

	if err := ctx.Err(); err != nil {
		return domain.ConfigRevision{}, fmt.Errorf("%s: %w", op, err)
	}

	document, err := json.Marshal(rev.Document)
	if err != nil {
		return domain.ConfigRevision{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO site_config_revisions (document, published_by, note, published_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`

	err = r.sqldb.QueryRowContext(ctx, query,
		string(document), rev.PublishedBy, rev.Note, rev.PublishedAt,
	).Scan(&rev.ID)
	if err != nil {
		return domain.ConfigRevision{}, fmt.Errorf("%s: %w", op, err)
	}
	return rev, nil
}

// ListRevisions returns revisions newest first along with their total count.
func (r RevisionsRepository) ListRevisions(
	ctx context.Context, limit, offset int,
) (rs []domain.ConfigRevision, total int, err error) {
	const op = "RevisionsRepository.ListRevisions"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	countQuery := `SELECT count(*) FROM site_config_revisions;`
	if err := r.sqldb.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	if total == 0 {
		return []domain.ConfigRevision{}, 0, nil
	}

	query := `
		SELECT id, document, published_by, note, published_at
		FROM site_config_revisions
		ORDER BY id DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.sqldb.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	rs = make([]domain.ConfigRevision, 0, limit)
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		rs = append(rs, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return rs, total, nil
}

func (r RevisionsRepository) GetRevision(
	ctx context.Context, id int64,
) (domain.ConfigRevision, error) {
	const op = "RevisionsRepository.GetRevision"

	if err := ctx.Err(); err != nil {
		return domain.ConfigRevision{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, document, published_by, note, published_at
		FROM site_config_revisions
		WHERE id = $1;`

	rev, err := scanRevision(r.sqldb.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ConfigRevision{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.ConfigRevision{}, fmt.Errorf("%s: %w", op, err)
	}
	return rev, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRevision(s scanner) (domain.ConfigRevision, error) {
	var (
		rev      domain.ConfigRevision
		document []byte
	)
	err := s.Scan(
		&rev.ID, &document, &rev.PublishedBy, &rev.Note, &rev.PublishedAt,
	)
	if err != nil {
		return domain.ConfigRevision{}, err
	}

	rev.Document, err = domain.DecodeDocument(document)
	if err != nil {
		return domain.ConfigRevision{}, fmt.Errorf("corrupted revision %d: %w", rev.ID, err)
	}
	return rev, nil
}
