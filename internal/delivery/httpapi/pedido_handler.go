package httpapi

import (
	"net/http"
	"strconv"

	"github.com/atelie-design/pedido-service/internal/domain"
	pedidodto "github.com/atelie-design/pedido-service/internal/usecase/dto/pedido"
	"github.com/atelie-design/pedido-service/internal/usecase/pedido"
	"github.com/gorilla/mux"

	deliverabledto "github.com/atelie-design/pedido-service/internal/usecase/dto/deliverable"
)

type PedidoHandler struct {
	Usecase pedido.PedidoUsecase
}

func NewPedidoHandler(uc pedido.PedidoUsecase) *PedidoHandler {
	return &PedidoHandler{Usecase: uc}
}

// POST /pedidos
func (h *PedidoHandler) CreatePedido(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Nome            string   `json:"nome"`
		Email           string   `json:"email"`
		Telefone        string   `json:"telefone"`
		Empresa         string   `json:"empresa"`
		Descricao       string   `json:"descricao"`
		PrazoSolicitado string   `json:"prazo_solicitado"`
		Referencias     string   `json:"referencias"`
		ArquivoURLs     []string `json:"arquivo_urls"`
		Servico         string   `json:"servico"`
		OrderType       string   `json:"order_type"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := h.Usecase.CreatePedido(r.Context(), &pedidodto.CreatePedidoInput{
		Nome:            body.Nome,
		Email:           body.Email,
		Telefone:        body.Telefone,
		Empresa:         body.Empresa,
		Descricao:       body.Descricao,
		PrazoSolicitado: body.PrazoSolicitado,
		Referencias:     body.Referencias,
		ArquivoURLs:     body.ArquivoURLs,
		Servico:         body.Servico,
		OrderType:       domain.OrderType(body.OrderType),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPedidoView(created))
}

// GET /pedidos/{id}
func (h *PedidoHandler) GetPedido(w http.ResponseWriter, r *http.Request) {
	p, err := h.Usecase.GetPedidoByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPedidoView(p))
}

// GET /pedidos?status=&search=&include_archived=&page=&limit=
func (h *PedidoHandler) ListPedidos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(q.Get("limit"), 10, 64)

	pedidos, total, err := h.Usecase.ListPedidos(r.Context(), &pedidodto.ListPedidosInput{
		Filters: domain.PedidoFilters{
			Status:          domain.PedidoStatus(q.Get("status")),
			Search:          q.Get("search"),
			IncludeArchived: q.Get("include_archived") == "true",
		},
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]pedidoView, 0, len(pedidos))
	for _, p := range pedidos {
		views = append(views, toPedidoView(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pedidos": views,
		"total":   total,
	})
}

// GET /pedidos/{id}/atividades
func (h *PedidoHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	ascending := r.URL.Query().Get("order") == "asc"
	entries, err := h.Usecase.ListActivities(r.Context(), mux.Vars(r)["id"], ascending)
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]activityView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toActivityView(e))
	}
	writeJSON(w, http.StatusOK, views)
}

// POST /pedidos/{id}/orcamento
func (h *PedidoHandler) SendOrcamento(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ValorOrcado               int64   `json:"valor_orcado"`
		PrazoOrcado               int32   `json:"prazo_orcado"`
		ObservacoesAdmin          string  `json:"observacoes_admin"`
		DiscountAmount            int64   `json:"discount_amount"`
		DiscountReason            string  `json:"discount_reason"`
		RequerPagamentoAntecipado bool    `json:"requer_pagamento_antecipado"`
		PaymentMode               string  `json:"payment_mode"`
		ValorEntrada              *int64  `json:"valor_entrada"`
		MaxRevisions              *int32  `json:"max_revisions"`
		CustomSplits              []int64 `json:"custom_splits"`
		InstallmentCount          int32   `json:"installment_count"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	err := h.Usecase.SendOrcamento(r.Context(), mux.Vars(r)["id"], &pedidodto.OrcamentoInput{
		ValorOrcado:               body.ValorOrcado,
		PrazoOrcado:               body.PrazoOrcado,
		ObservacoesAdmin:          body.ObservacoesAdmin,
		DiscountAmount:            body.DiscountAmount,
		DiscountReason:            body.DiscountReason,
		RequerPagamentoAntecipado: body.RequerPagamentoAntecipado,
		PaymentMode:               domain.PaymentMode(body.PaymentMode),
		ValorEntrada:              body.ValorEntrada,
		MaxRevisions:              body.MaxRevisions,
		CustomSplits:              body.CustomSplits,
		InstallmentCount:          body.InstallmentCount,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/orcamento/aprovar
func (h *PedidoHandler) ApproveOrcamento(w http.ResponseWriter, r *http.Request) {
	if err := h.Usecase.ApproveOrcamento(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/orcamento/recusar
func (h *PedidoHandler) RefuseOrcamento(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MotivoRecusa string `json:"motivo_recusa"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.Usecase.RefuseOrcamento(r.Context(), mux.Vars(r)["id"], body.MotivoRecusa); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/iniciar-confeccao
func (h *PedidoHandler) StartProduction(w http.ResponseWriter, r *http.Request) {
	if err := h.Usecase.StartProduction(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/enviar-para-aprovacao
func (h *PedidoHandler) SubmitForReview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FileURL     string `json:"file_url"`
		FileName    string `json:"file_name"`
		FileType    string `json:"file_type"`
		FileSize    int64  `json:"file_size"`
		IsFinal     bool   `json:"is_final"`
		ExpiresDays int32  `json:"expires_days"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	err := h.Usecase.SubmitForReview(r.Context(), mux.Vars(r)["id"], &deliverabledto.AddDeliverableInput{
		FileURL:     body.FileURL,
		FileName:    body.FileName,
		FileType:    body.FileType,
		FileSize:    body.FileSize,
		IsFinal:     body.IsFinal,
		ExpiresDays: body.ExpiresDays,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/aprovar-entrega
func (h *PedidoHandler) ApproveDelivery(w http.ResponseWriter, r *http.Request) {
	if err := h.Usecase.ApproveDelivery(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/cancelar
func (h *PedidoHandler) CancelPedido(w http.ResponseWriter, r *http.Request) {
	if err := h.Usecase.CancelPedido(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/arquivar
func (h *PedidoHandler) ArchivePedido(w http.ResponseWriter, r *http.Request) {
	if err := h.Usecase.ArchivePedido(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pedidos/{id}/nps
func (h *PedidoHandler) SubmitNPS(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Score   int32  `json:"score"`
		Comment string `json:"comment"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := h.Usecase.SubmitNPS(r.Context(), mux.Vars(r)["id"], body.Score, body.Comment); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
