package domain

import (
	"context"
	"time"
)

type InstallmentRepository interface {
	// CreateInstallments inserts the whole batch; the engine invokes it at
	// most once per pedido.
	CreateInstallments(ctx context.Context, installments []*Installment) error
	GetInstallmentByID(ctx context.Context, installmentID string) (*Installment, error)
	ListInstallmentsByPedidoID(ctx context.Context, pedidoID string) ([]*Installment, error)
	CountInstallmentsByPedidoID(ctx context.Context, pedidoID string) (int64, error)
	// CountUnpaidByPedidoID counts installments in any status other than paid.
	CountUnpaidByPedidoID(ctx context.Context, pedidoID string) (int64, error)
	// MarkInstallmentPaid applies only if the stored status matches one of
	// from; otherwise it returns ErrInvalidTransition.
	MarkInstallmentPaid(ctx context.Context, installmentID string, from []InstallmentStatus, paymentMethod, comprovanteURL string, paidAt time.Time) error
	// MarkAwaitingConfirmation is the client-side "I already paid" report.
	MarkAwaitingConfirmation(ctx context.Context, installmentID string, comprovanteURL string) error
}
