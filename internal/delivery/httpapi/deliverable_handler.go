package httpapi

import (
	"net/http"

	"github.com/atelie-design/pedido-service/internal/usecase/deliverable"
	deliverabledto "github.com/atelie-design/pedido-service/internal/usecase/dto/deliverable"
	"github.com/gorilla/mux"
)

type DeliverableHandler struct {
	Usecase deliverable.DeliverableUsecase
}

func NewDeliverableHandler(uc deliverable.DeliverableUsecase) *DeliverableHandler {
	return &DeliverableHandler{Usecase: uc}
}

// POST /pedidos/{id}/entregaveis
func (h *DeliverableHandler) AddDeliverable(w http.ResponseWriter, r *http.Request) {
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

	created, err := h.Usecase.AddDeliverable(r.Context(), &deliverabledto.AddDeliverableInput{
		PedidoID:    mux.Vars(r)["id"],
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
	writeJSON(w, http.StatusCreated, toDeliverableView(created))
}

// GET /pedidos/{id}/entregaveis
func (h *DeliverableHandler) ListDeliverables(w http.ResponseWriter, r *http.Request) {
	deliverables, err := h.Usecase.ListDeliverables(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]deliverableView, 0, len(deliverables))
	for _, d := range deliverables {
		views = append(views, toDeliverableView(d))
	}
	writeJSON(w, http.StatusOK, views)
}

// POST /entregaveis/{id}/download
func (h *DeliverableHandler) MarkDownloaded(w http.ResponseWriter, r *http.Request) {
	if err := h.Usecase.MarkDownloaded(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
