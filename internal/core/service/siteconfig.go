package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/pkg/configtree"
	"github.com/niksmo/ecom-admin/pkg/paginate"
)

func (s Service) GetSiteConfig(ctx context.Context) (domain.SiteConfig, error) {
	const op = "Service.GetSiteConfig"

	cfg, err := s.backend.GetSiteConfig(ctx)
	if err != nil {
		return domain.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

// OpenDraft returns the editor's draft. Without one, the live configuration
// is copied into a new draft.
func (s Service) OpenDraft(ctx context.Context) (domain.ConfigDraft, error) {
	const op = "Service.OpenDraft"

	editor := domain.ActorFrom(ctx)

	d, err := s.drafts.LoadDraft(ctx, editor)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	live, err := s.backend.GetSiteConfig(ctx)
	if err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	d = domain.ConfigDraft{
		Editor:      editor,
		Document:    configtree.Clone(live.Document),
		BaseVersion: live.Version,
		UpdatedAt:   s.now().UTC(),
	}
	if err := s.drafts.SaveDraft(ctx, d); err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

// ApplyDraftChange applies one settings-tab edit to the editor's draft.
// The draft is only stored when the edit changed the document.
func (s Service) ApplyDraftChange(
	ctx context.Context, c domain.ConfigChange,
) (domain.ConfigDraft, bool, error) {
	const op = "Service.ApplyDraftChange"

	if err := c.Validate(); err != nil {
		return domain.ConfigDraft{}, false, fmt.Errorf("%s: %w", op, err)
	}

	d, err := s.OpenDraft(ctx)
	if err != nil {
		return domain.ConfigDraft{}, false, fmt.Errorf("%s: %w", op, err)
	}

	next := c.Apply(d.Document)
	if configtree.Equal(d.Document, next) {
		return d, false, nil
	}

	d.Document = next
	d.UpdatedAt = s.now().UTC()
	if err := s.drafts.SaveDraft(ctx, d); err != nil {
		return domain.ConfigDraft{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return d, true, nil
}

func (s Service) DiscardDraft(ctx context.Context) error {
	const op = "Service.DiscardDraft"

	if err := s.drafts.DeleteDraft(ctx, domain.ActorFrom(ctx)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// PublishDraft saves the editor's draft as the live configuration.
//
// The backend is the source of truth: once it accepted the document,
// failures to record the revision or drop the draft are only logged.
func (s Service) PublishDraft(
	ctx context.Context, note string,
) (domain.SiteConfig, error) {
	const op = "Service.PublishDraft"
	log := slog.With("op", op)

	editor := domain.ActorFrom(ctx)

	d, err := s.drafts.LoadDraft(ctx, editor)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("%w: no draft to publish", domain.ErrNotFound)
		}
		return domain.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.backend.SaveSiteConfig(ctx, domain.SiteConfig{
		Document: d.Document,
		Version:  domain.SiteConfigVersion,
	})
	if err != nil {
		return domain.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	var revID string
	rev, err := s.revisions.AddRevision(ctx, domain.ConfigRevision{
		Document:    d.Document,
		PublishedBy: editor,
		Note:        note,
		PublishedAt: s.now().UTC(),
	})
	if err != nil {
		log.Error("failed to record revision", "err", err)
	} else {
		revID = strconv.FormatInt(rev.ID, 10)
	}

	if err := s.drafts.DeleteDraft(ctx, editor); err != nil {
		log.Error("failed to delete published draft", "err", err)
	}

	s.emit(ctx, domain.EventPublished, domain.EntitySiteConfig, revID,
		map[string]string{"note": note})
	return saved, nil
}

// ExportSiteConfig returns a backup of the live configuration and archives
// it when an archiver is configured.
func (s Service) ExportSiteConfig(ctx context.Context) (domain.ConfigBackup, error) {
	const op = "Service.ExportSiteConfig"
	log := slog.With("op", op)

	live, err := s.backend.GetSiteConfig(ctx)
	if err != nil {
		return domain.ConfigBackup{}, fmt.Errorf("%s: %w", op, err)
	}

	b := domain.ConfigBackup{
		Version:    domain.SiteConfigVersion,
		ExportedAt: s.now().UTC(),
		Config:     live.Document,
	}

	if s.archiver != nil {
		data, err := domain.MarshalBackup(b)
		if err != nil {
			return domain.ConfigBackup{}, fmt.Errorf("%s: %w", op, err)
		}
		key, err := s.archiver.ArchiveConfig(ctx, data)
		if err != nil {
			log.Error("failed to archive config backup", "err", err)
		} else {
			log.Info("config backup archived", "key", key)
		}
	}

	s.emit(ctx, domain.EventExported, domain.EntitySiteConfig, "", nil)
	return b, nil
}

// ImportSiteConfig loads a backup file into the editor's draft.
// Nothing is published until [Service.PublishDraft].
func (s Service) ImportSiteConfig(
	ctx context.Context, data []byte,
) (domain.ConfigDraft, error) {
	const op = "Service.ImportSiteConfig"

	b, err := domain.UnmarshalBackup(data)
	if err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	d := domain.ConfigDraft{
		Editor:      domain.ActorFrom(ctx),
		Document:    b.Config,
		BaseVersion: b.Version,
		UpdatedAt:   s.now().UTC(),
	}
	if err := s.drafts.SaveDraft(ctx, d); err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.EventImported, domain.EntitySiteConfig, "", nil)
	return d, nil
}

func (s Service) ListRevisions(
	ctx context.Context, page paginate.Page,
) (domain.List[domain.ConfigRevision], error) {
	const op = "Service.ListRevisions"

	page = paginate.New(page.Number, page.Size, 0)
	rs, total, err := s.revisions.ListRevisions(ctx, page.Size, page.Offset())
	if err != nil {
		return domain.List[domain.ConfigRevision]{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.List[domain.ConfigRevision]{
		Items: rs,
		Page:  page.WithTotal(total),
	}, nil
}

// RestoreRevision replaces the editor's draft with a published revision.
func (s Service) RestoreRevision(
	ctx context.Context, id int64,
) (domain.ConfigDraft, error) {
	const op = "Service.RestoreRevision"

	rev, err := s.revisions.GetRevision(ctx, id)
	if err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}

	d := domain.ConfigDraft{
		Editor:      domain.ActorFrom(ctx),
		Document:    configtree.Clone(rev.Document),
		BaseVersion: domain.SiteConfigVersion,
		UpdatedAt:   s.now().UTC(),
	}
	if err := s.drafts.SaveDraft(ctx, d); err != nil {
		return domain.ConfigDraft{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}
