package domain

import "context"

type ActivityRepository interface {
	AppendActivity(ctx context.Context, entry *ActivityEntry) error
	// ListActivitiesByPedidoID orders by created_at, ascending for timelines
	// and descending for latest-first admin views.
	ListActivitiesByPedidoID(ctx context.Context, pedidoID string, ascending bool) ([]*ActivityEntry, error)
	// ListPublicActivities keeps only the allow-listed actions, ascending.
	ListPublicActivities(ctx context.Context, pedidoID string, actions []ActivityAction) ([]*ActivityEntry, error)
}

// TxManager scopes a function to one atomic storage transaction. Every
// repository call made with the ctx it passes joins that transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
