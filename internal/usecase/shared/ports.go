package shared

import (
	"context"
	"time"

	"dryclean-api/internal/domain/catalog"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// CatalogCache holds price overrides between reloads. A miss is (nil, false, nil).
type CatalogCache interface {
	Get(ctx context.Context) ([]catalog.Override, bool, error)
	Set(ctx context.Context, overrides []catalog.Override) error
	Invalidate(ctx context.Context) error
}

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderStatusChanged OrderEventType = "order.status_changed"
)

type OrderEvent struct {
	Type       OrderEventType
	OrderID    int64
	CustomerID int64
	Status     string
	PrevStatus string
	Total      string
	OccurredAt time.Time
}

// OrderEventPublisher is called after commit; failures never undo the write.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}

type MailMessage struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
