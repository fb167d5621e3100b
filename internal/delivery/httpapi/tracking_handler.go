package httpapi

import (
	"net/http"

	"github.com/atelie-design/pedido-service/internal/usecase/tracking"
	"github.com/gorilla/mux"
)

type TrackingHandler struct {
	Usecase tracking.TrackingUsecase
}

func NewTrackingHandler(uc tracking.TrackingUsecase) *TrackingHandler {
	return &TrackingHandler{Usecase: uc}
}

// GET /tracking/{protocolo} — public, no authentication, keyed by protocolo.
func (h *TrackingHandler) GetTracking(w http.ResponseWriter, r *http.Request) {
	view, err := h.Usecase.GetTracking(r.Context(), mux.Vars(r)["protocolo"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
