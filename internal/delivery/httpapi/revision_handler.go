package httpapi

import (
	"net/http"

	"github.com/atelie-design/pedido-service/internal/domain"
	revisiondto "github.com/atelie-design/pedido-service/internal/usecase/dto/revision"
	"github.com/atelie-design/pedido-service/internal/usecase/revision"
	"github.com/gorilla/mux"
)

type RevisionHandler struct {
	Usecase revision.RevisionUsecase
}

func NewRevisionHandler(uc revision.RevisionUsecase) *RevisionHandler {
	return &RevisionHandler{Usecase: uc}
}

// POST /pedidos/{id}/revisoes
func (h *RevisionHandler) CreateRevision(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Description string                `json:"description"`
		Files       []domain.RevisionFile `json:"files"`
		RequestedBy string                `json:"requested_by"`
		ActorID     string                `json:"actor_id"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	created, err := h.Usecase.CreateRevision(r.Context(), &revisiondto.CreateRevisionInput{
		PedidoID:    mux.Vars(r)["id"],
		Description: body.Description,
		Files:       body.Files,
		RequestedBy: domain.RevisionActor(body.RequestedBy),
		ActorID:     body.ActorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRevisionView(created))
}

// PATCH /revisoes/{id}/status
func (h *RevisionHandler) UpdateRevisionStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status        string `json:"status"`
		AdminResponse string `json:"admin_response"`
		ActorID       string `json:"actor_id"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	err := h.Usecase.UpdateRevisionStatus(r.Context(), &revisiondto.UpdateRevisionStatusInput{
		RevisionID:    mux.Vars(r)["id"],
		Status:        domain.RevisionStatus(body.Status),
		AdminResponse: body.AdminResponse,
		ActorID:       body.ActorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /pedidos/{id}/revisoes
func (h *RevisionHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	revisions, err := h.Usecase.ListRevisions(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]revisionView, 0, len(revisions))
	for _, rev := range revisions {
		views = append(views, toRevisionView(rev))
	}
	writeJSON(w, http.StatusOK, views)
}
