package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var (
	_ port.ProductsManager     = (*Service)(nil)
	_ port.CategoriesManager   = (*Service)(nil)
	_ port.OrdersManager       = (*Service)(nil)
	_ port.CustomersViewer     = (*Service)(nil)
	_ port.SiteConfigEditor    = (*Service)(nil)
	_ port.ImagesManager       = (*Service)(nil)
	_ port.EmailSender         = (*Service)(nil)
	_ port.ReportExporter      = (*Service)(nil)
	_ port.ProductFilterSetter = (*Service)(nil)
)

const defaultMaxImageBytes = 5 << 20

// Adapters are the outbound ports of the [Service].
//
// Backend, Drafts and Revisions are required. A nil Events or Archiver
// disables event publishing or archiving, a nil FilterProducer or
// FilterView makes product blocking unavailable.
type Adapters struct {
	Backend        port.Backend
	Drafts         port.DraftsStorage
	Revisions      port.RevisionsStorage
	Events         port.AdminEventsProducer
	FilterProducer port.ProductFilterProducer
	FilterView     port.ProductFilterView
	Archiver       port.Archiver
}

type Opt func(*Service)

func MaxImageBytesOpt(n int64) Opt {
	return func(s *Service) {
		if n > 0 {
			s.maxImageBytes = n
		}
	}
}

func ClockOpt(now func() time.Time) Opt {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func IDGeneratorOpt(newID func() string) Opt {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

type Service struct {
	backend        port.Backend
	drafts         port.DraftsStorage
	revisions      port.RevisionsStorage
	events         port.AdminEventsProducer
	filterProducer port.ProductFilterProducer
	filterView     port.ProductFilterView
	archiver       port.Archiver
	maxImageBytes  int64
	now            func() time.Time
	newID          func() string
}

func New(a Adapters, opts ...Opt) Service {
	s := Service{
		backend:        a.Backend,
		drafts:         a.Drafts,
		revisions:      a.Revisions,
		events:         a.Events,
		filterProducer: a.FilterProducer,
		filterView:     a.FilterView,
		archiver:       a.Archiver,
		maxImageBytes:  defaultMaxImageBytes,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// emit publishes an admin event. The mutation it describes has already
// happened upstream, so failures are only logged.
func (s Service) emit(
	ctx context.Context,
	kind domain.EventKind,
	entity domain.Entity,
	entityID string,
	payload any,
) {
	const op = "Service.emit"
	log := slog.With("op", op)

	if s.events == nil {
		return
	}

	var data []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Warn("failed to encode event payload", "err", err)
		}
		data = b
	}

	evt := domain.AdminEvent{
		ID:         s.newID(),
		Kind:       kind,
		Entity:     entity,
		EntityID:   entityID,
		Actor:      domain.ActorFrom(ctx),
		OccurredAt: s.now().UTC(),
		Payload:    data,
	}

	if err := s.events.ProduceEvent(context.WithoutCancel(ctx), evt); err != nil {
		log.Error(
			"failed to produce admin event",
			"kind", kind, "entity", entity, "entityID", entityID, "err", err,
		)
	}
}
