package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var _ port.DraftsStorage = (*DraftsRepository)(nil)

// DraftsRepository keeps one site configuration draft per editor.
type DraftsRepository struct {
	sqldb sqldb
}

func NewDraftsRepository(sqldb sqldb) DraftsRepository {
	return DraftsRepository{sqldb}
}

func (r DraftsRepository) LoadDraft(
	ctx context.Context, editor string,
) (domain.ConfigDraft, error) {
	const op = "DraftsRepository.LoadDraft"

	if err := ctx.Err(); err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT document, base_version, updated_at
		FROM site_config_drafts
		WHERE editor = $1;`

	d := domain.ConfigDraft{Editor: editor}
	var document []byte
	err := r.sqldb.QueryRowContext(ctx, query, editor).Scan(
		&document, &d.BaseVersion, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	d.Document, err = domain.DecodeDocument(document)
	if err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: corrupted draft: %w", op, err)
	}
	return d, nil
}

func (r DraftsRepository) SaveDraft(ctx context.Context, d domain.ConfigDraft) error {
	const op = "DraftsRepository.SaveDraft"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	document, err := json.Marshal(d.Document)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO site_config_drafts (editor, document, base_version, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (editor) DO UPDATE SET
			document = EXCLUDED.document,
			base_version = EXCLUDED.base_version,
			updated_at = EXCLUDED.updated_at;`

	_, err = r.sqldb.ExecContext(ctx, query,
		d.Editor, string(document), d.BaseVersion, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

// DeleteDraft succeeds when the editor has no draft.
func (r DraftsRepository) DeleteDraft(ctx context.Context, editor string) error {
	const op = "DraftsRepository.DeleteDraft"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `DELETE FROM site_config_drafts WHERE editor = $1;`
	if _, err := r.sqldb.ExecContext(ctx, query, editor); err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}
