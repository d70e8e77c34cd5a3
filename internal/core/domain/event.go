package domain

import "time"

type EventKind string

const (
	EventCreated         EventKind = "created"
	EventUpdated         EventKind = "updated"
	EventDeleted         EventKind = "deleted"
	EventPublished       EventKind = "published"
	EventStatusChanged   EventKind = "status_changed"
	EventPaymentVerified EventKind = "payment_verified"
	EventEmailSent       EventKind = "email_sent"
	EventExported        EventKind = "exported"
	EventImported        EventKind = "imported"
)

type Entity string

const (
	EntityProduct    Entity = "product"
	EntityCategory   Entity = "category"
	EntityOrder      Entity = "order"
	EntitySiteConfig Entity = "site_config"
	EntityImage      Entity = "image"
	EntityEmail      Entity = "email"
	EntityReport     Entity = "report"
	EntityFilter     Entity = "product_filter"
)

// An AdminEvent records a successful back-office mutation.
type AdminEvent struct {
	ID         string
	Kind       EventKind
	Entity     Entity
	EntityID   string
	Actor      string
	OccurredAt time.Time
	Payload    []byte
}

type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type UploadedImage struct {
	URL string
}
