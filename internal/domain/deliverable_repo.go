package domain

import (
	"context"
	"time"
)

type DeliverableRepository interface {
	CreateDeliverable(ctx context.Context, deliverable *Deliverable) error
	GetDeliverableByID(ctx context.Context, deliverableID string) (*Deliverable, error)
	ListDeliverablesByPedidoID(ctx context.Context, pedidoID string) ([]*Deliverable, error)
	// ListActiveDeliverables returns deliverables with expires_at > now,
	// newest delivery first.
	ListActiveDeliverables(ctx context.Context, pedidoID string, now time.Time) ([]*Deliverable, error)
	// MarkDownloaded stamps downloaded_at once; later downloads keep the
	// first timestamp.
	MarkDownloaded(ctx context.Context, deliverableID string, downloadedAt time.Time) error
}
