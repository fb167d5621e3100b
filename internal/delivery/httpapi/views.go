package httpapi

import (
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

type pedidoView struct {
	ID        string `json:"id"`
	Protocolo string `json:"protocolo"`
	OrderType string `json:"order_type"`

	Nome            string   `json:"nome"`
	Email           string   `json:"email"`
	Telefone        string   `json:"telefone,omitempty"`
	Empresa         string   `json:"empresa,omitempty"`
	Descricao       string   `json:"descricao,omitempty"`
	PrazoSolicitado string   `json:"prazo_solicitado,omitempty"`
	Referencias     string   `json:"referencias,omitempty"`
	ArquivoURLs     []string `json:"arquivo_urls,omitempty"`
	Servico         string   `json:"servico,omitempty"`

	ValorOrcado      *int64 `json:"valor_orcado,omitempty"`
	PrazoOrcado      *int32 `json:"prazo_orcado,omitempty"`
	ObservacoesAdmin string `json:"observacoes_admin,omitempty"`
	DiscountAmount   int64  `json:"discount_amount"`
	DiscountReason   string `json:"discount_reason,omitempty"`

	RequerPagamentoAntecipado bool    `json:"requer_pagamento_antecipado"`
	PaymentMode               string  `json:"payment_mode,omitempty"`
	ValorEntrada              *int64  `json:"valor_entrada,omitempty"`
	InstallmentCount          int32   `json:"installment_count,omitempty"`
	CustomSplits              []int64 `json:"custom_splits,omitempty"`

	MaxRevisions  int32 `json:"max_revisions"`
	RevisionCount int32 `json:"revision_count"`

	Status string `json:"status"`

	DataBriefing        time.Time  `json:"data_briefing"`
	DataOrcamento       *time.Time `json:"data_orcamento,omitempty"`
	DataAprovacao       *time.Time `json:"data_aprovacao,omitempty"`
	DataPagamento       *time.Time `json:"data_pagamento,omitempty"`
	DataPagamentoFinal  *time.Time `json:"data_pagamento_final,omitempty"`
	DataInicioConfeccao *time.Time `json:"data_inicio_confeccao,omitempty"`
	DataEntrega         *time.Time `json:"data_entrega,omitempty"`
	PrazoFinal          *time.Time `json:"prazo_final,omitempty"`

	MotivoRecusa string     `json:"motivo_recusa,omitempty"`
	NPSScore     *int32     `json:"nps_score,omitempty"`
	NPSComment   string     `json:"nps_comment,omitempty"`
	ArchivedAt   *time.Time `json:"archived_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPedidoView(p *domain.Pedido) pedidoView {
	return pedidoView{
		ID:                        p.ID,
		Protocolo:                 p.Protocolo,
		OrderType:                 string(p.OrderType),
		Nome:                      p.Nome,
		Email:                     p.Email,
		Telefone:                  p.Telefone,
		Empresa:                   p.Empresa,
		Descricao:                 p.Descricao,
		PrazoSolicitado:           p.PrazoSolicitado,
		Referencias:               p.Referencias,
		ArquivoURLs:               p.ArquivoURLs,
		Servico:                   p.Servico,
		ValorOrcado:               p.ValorOrcado,
		PrazoOrcado:               p.PrazoOrcado,
		ObservacoesAdmin:          p.ObservacoesAdmin,
		DiscountAmount:            p.DiscountAmount,
		DiscountReason:            p.DiscountReason,
		RequerPagamentoAntecipado: p.RequerPagamentoAntecipado,
		PaymentMode:               string(p.PaymentMode),
		ValorEntrada:              p.ValorEntrada,
		InstallmentCount:          p.InstallmentCount,
		CustomSplits:              p.CustomSplits,
		MaxRevisions:              p.MaxRevisions,
		RevisionCount:             p.RevisionCount,
		Status:                    string(p.Status),
		DataBriefing:              p.DataBriefing,
		DataOrcamento:             p.DataOrcamento,
		DataAprovacao:             p.DataAprovacao,
		DataPagamento:             p.DataPagamento,
		DataPagamentoFinal:        p.DataPagamentoFinal,
		DataInicioConfeccao:       p.DataInicioConfeccao,
		DataEntrega:               p.DataEntrega,
		PrazoFinal:                p.PrazoFinal,
		MotivoRecusa:              p.MotivoRecusa,
		NPSScore:                  p.NPSScore,
		NPSComment:                p.NPSComment,
		ArchivedAt:                p.ArchivedAt,
		CreatedAt:                 p.CreatedAt,
		UpdatedAt:                 p.UpdatedAt,
	}
}

type revisionView struct {
	ID             string                `json:"id"`
	PedidoID       string                `json:"pedido_id"`
	RevisionNumber int32                 `json:"revision_number"`
	RequestedBy    string                `json:"requested_by"`
	Description    string                `json:"description,omitempty"`
	Files          []domain.RevisionFile `json:"files,omitempty"`
	Status         string                `json:"status"`
	IsExtra        bool                  `json:"is_extra"`
	ExtraCost      int64                 `json:"extra_cost,omitempty"`
	AdminResponse  string                `json:"admin_response,omitempty"`
	ResolvedAt     *time.Time            `json:"resolved_at,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

func toRevisionView(r *domain.Revision) revisionView {
	return revisionView{
		ID:             r.ID,
		PedidoID:       r.PedidoID,
		RevisionNumber: r.RevisionNumber,
		RequestedBy:    string(r.RequestedBy),
		Description:    r.Description,
		Files:          r.Files,
		Status:         string(r.Status),
		IsExtra:        r.IsExtra,
		ExtraCost:      r.ExtraCost,
		AdminResponse:  r.AdminResponse,
		ResolvedAt:     r.ResolvedAt,
		CreatedAt:      r.CreatedAt,
	}
}

type installmentView struct {
	ID                string     `json:"id"`
	PedidoID          string     `json:"pedido_id"`
	InstallmentNumber int32      `json:"installment_number"`
	Amount            int64      `json:"amount"`
	DueDate           time.Time  `json:"due_date"`
	Status            string     `json:"status"`
	PaymentMethod     string     `json:"payment_method,omitempty"`
	ComprovanteURL    string     `json:"comprovante_url,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
}

func toInstallmentView(i *domain.Installment) installmentView {
	return installmentView{
		ID:                i.ID,
		PedidoID:          i.PedidoID,
		InstallmentNumber: i.InstallmentNumber,
		Amount:            i.Amount,
		DueDate:           i.DueDate,
		Status:            string(i.Status),
		PaymentMethod:     i.PaymentMethod,
		ComprovanteURL:    i.ComprovanteURL,
		PaidAt:            i.PaidAt,
	}
}

type deliverableView struct {
	ID           string     `json:"id"`
	PedidoID     string     `json:"pedido_id"`
	FileURL      string     `json:"file_url"`
	FileName     string     `json:"file_name"`
	FileType     string     `json:"file_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
	IsFinal      bool       `json:"is_final"`
	DeliveredAt  time.Time  `json:"delivered_at"`
	DownloadedAt *time.Time `json:"downloaded_at,omitempty"`
	ExpiresAt    time.Time  `json:"expires_at"`
}

func toDeliverableView(d *domain.Deliverable) deliverableView {
	return deliverableView{
		ID:           d.ID,
		PedidoID:     d.PedidoID,
		FileURL:      d.FileURL,
		FileName:     d.FileName,
		FileType:     d.FileType,
		FileSize:     d.FileSize,
		IsFinal:      d.IsFinal,
		DeliveredAt:  d.DeliveredAt,
		DownloadedAt: d.DownloadedAt,
		ExpiresAt:    d.ExpiresAt,
	}
}

type activityView struct {
	ID        string         `json:"id"`
	PedidoID  string         `json:"pedido_id"`
	Action    string         `json:"action"`
	ActorType string         `json:"actor_type"`
	ActorID   string         `json:"actor_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func toActivityView(e *domain.ActivityEntry) activityView {
	return activityView{
		ID:        e.ID,
		PedidoID:  e.PedidoID,
		Action:    string(e.Action),
		ActorType: string(e.ActorType),
		ActorID:   e.ActorID,
		Details:   e.Details,
		CreatedAt: e.CreatedAt,
	}
}
