package domain

import (
	"context"
	"time"
)

// StatusStamps carries the milestone timestamps written together with a
// status change. Nil fields are left untouched.
type StatusStamps struct {
	DataOrcamento       *time.Time
	DataAprovacao       *time.Time
	DataPagamento       *time.Time
	DataPagamentoFinal  *time.Time
	DataInicioConfeccao *time.Time
	DataEntrega         *time.Time
	PrazoFinal          *time.Time
	MotivoRecusa        string
}

// OrcamentoFields is the quote payload attached on briefing -> orcamento_enviado.
type OrcamentoFields struct {
	ValorOrcado               int64
	PrazoOrcado               int32
	ObservacoesAdmin          string
	DiscountAmount            int64
	DiscountReason            string
	RequerPagamentoAntecipado bool
	PaymentMode               PaymentMode
	ValorEntrada              *int64
	InstallmentCount          int32
	CustomSplits              []int64
	MaxRevisions              *int32
}

type PedidoRepository interface {
	CreatePedido(ctx context.Context, pedido *Pedido) error
	GetPedidoByID(ctx context.Context, id string) (*Pedido, error)
	GetPedidoByProtocolo(ctx context.Context, protocolo string) (*Pedido, error)
	// GetPedidoForUpdate locks the pedido row for the rest of the enclosing
	// transaction. Counter reads that feed a write must go through it.
	GetPedidoForUpdate(ctx context.Context, id string) (*Pedido, error)
	ListPedidos(ctx context.Context, filters PedidoFilters, page, limit int64) ([]*Pedido, int64, error)
	// UpdatePedidoStatus applies the change only if the stored status still
	// equals from; otherwise it returns ErrInvalidTransition.
	UpdatePedidoStatus(ctx context.Context, pedidoID string, from, to PedidoStatus, stamps StatusStamps) error
	SetOrcamento(ctx context.Context, pedidoID string, orcamento OrcamentoFields) error
	// RegisterRevision stores the new counter value and moves the pedido to
	// em_ajustes, one write.
	RegisterRevision(ctx context.Context, pedidoID string, count int32) error
	SetNPS(ctx context.Context, pedidoID string, score int32, comment string) error
	ArchivePedido(ctx context.Context, pedidoID string, archivedAt time.Time) error
}
