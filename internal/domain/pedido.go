package domain

import "time"

type PedidoStatus string

const (
	StatusBriefing                   PedidoStatus = "briefing"
	StatusOrcamentoEnviado           PedidoStatus = "orcamento_enviado"
	StatusOrcamentoAprovado          PedidoStatus = "orcamento_aprovado"
	StatusAguardandoPagamento        PedidoStatus = "aguardando_pagamento"
	StatusPagamentoConfirmado        PedidoStatus = "pagamento_confirmado"
	StatusEmConfeccao                PedidoStatus = "em_confeccao"
	StatusAguardandoAprovacaoCliente PedidoStatus = "aguardando_aprovacao_cliente"
	StatusEmAjustes                  PedidoStatus = "em_ajustes"
	StatusAguardandoPagamentoFinal   PedidoStatus = "aguardando_pagamento_final"
	StatusFinalizado                 PedidoStatus = "finalizado"
	StatusCancelado                  PedidoStatus = "cancelado"
	StatusRecusado                   PedidoStatus = "recusado"
)

// IsTerminal reports whether a pedido in this status accepts no further
// mutations (revisions, installment changes, transitions).
func (s PedidoStatus) IsTerminal() bool {
	switch s {
	case StatusFinalizado, StatusCancelado, StatusRecusado:
		return true
	}
	return false
}

// legalTransitions is the single authoritative transition table. Every
// mutation path validates against it; no call site writes a status string
// on its own.
var legalTransitions = map[PedidoStatus][]PedidoStatus{
	StatusBriefing:          {StatusOrcamentoEnviado},
	StatusOrcamentoEnviado:  {StatusOrcamentoAprovado, StatusRecusado},
	StatusOrcamentoAprovado: {StatusAguardandoPagamento, StatusEmConfeccao},
	StatusAguardandoPagamento: {StatusPagamentoConfirmado},
	StatusPagamentoConfirmado: {StatusEmConfeccao},
	StatusEmConfeccao:         {StatusAguardandoAprovacaoCliente},
	StatusAguardandoAprovacaoCliente: {
		StatusEmAjustes,
		StatusAguardandoPagamentoFinal,
		StatusFinalizado,
	},
	StatusEmAjustes:                {StatusEmConfeccao},
	StatusAguardandoPagamentoFinal: {StatusFinalizado},
}

// CanTransition reports whether from -> to is in the legal table.
// cancelado is reachable from every non-terminal status.
func CanTransition(from, to PedidoStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelado {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OrderType string

const (
	OrderTypePackage          OrderType = "package"
	OrderTypeServiceSelection OrderType = "service_selection"
	OrderTypeCustom           OrderType = "custom"
)

type Pedido struct {
	ID        string
	Protocolo string
	OrderType OrderType

	// Briefing
	Nome            string
	Email           string
	Telefone        string
	Empresa         string
	Descricao       string
	PrazoSolicitado string
	Referencias     string
	ArquivoURLs     []string
	Servico         string

	// Orcamento (amounts in cents)
	ValorOrcado      *int64
	PrazoOrcado      *int32
	ObservacoesAdmin string
	DiscountAmount   int64
	DiscountReason   string

	// Payment configuration
	RequerPagamentoAntecipado bool
	PaymentMode               PaymentMode
	ValorEntrada              *int64
	InstallmentCount          int32
	CustomSplits              []int64

	// Revisions
	MaxRevisions  int32
	RevisionCount int32

	Status PedidoStatus

	// Milestones
	DataBriefing        time.Time
	DataOrcamento       *time.Time
	DataAprovacao       *time.Time
	DataPagamento       *time.Time
	DataPagamentoFinal  *time.Time
	DataInicioConfeccao *time.Time
	DataEntrega         *time.Time
	PrazoFinal          *time.Time

	MotivoRecusa string

	NPSScore   *int32
	NPSComment string

	ArchivedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasOrcamento reports whether a quote was already attached.
func (p *Pedido) HasOrcamento() bool {
	return p.ValorOrcado != nil
}

// ValorLiquido is the quoted amount net of discount, the base for the
// installment split.
func (p *Pedido) ValorLiquido() int64 {
	if p.ValorOrcado == nil {
		return 0
	}
	v := *p.ValorOrcado - p.DiscountAmount
	if v < 0 {
		return 0
	}
	return v
}

type PedidoFilters struct {
	Status          PedidoStatus
	Search          string
	IncludeArchived bool
}
