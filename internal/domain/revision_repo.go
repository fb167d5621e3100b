package domain

import (
	"context"
	"time"
)

type RevisionRepository interface {
	CreateRevision(ctx context.Context, revision *Revision) error
	GetRevisionByID(ctx context.Context, revisionID string) (*Revision, error)
	ListRevisionsByPedidoID(ctx context.Context, pedidoID string) ([]*Revision, error)
	// UpdateRevisionStatus applies the change only if the stored status still
	// equals from; otherwise it returns ErrInvalidTransition.
	UpdateRevisionStatus(ctx context.Context, revisionID string, from, to RevisionStatus, adminResponse string, resolvedAt *time.Time) error
}
