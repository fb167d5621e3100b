package httpapi

import (
	"net/http"

	installmentdto "github.com/atelie-design/pedido-service/internal/usecase/dto/installment"
	"github.com/atelie-design/pedido-service/internal/usecase/installment"
	"github.com/gorilla/mux"
)

type InstallmentHandler struct {
	Usecase installment.InstallmentUsecase
}

func NewInstallmentHandler(uc installment.InstallmentUsecase) *InstallmentHandler {
	return &InstallmentHandler{Usecase: uc}
}

// GET /pedidos/{id}/parcelas
func (h *InstallmentHandler) ListInstallments(w http.ResponseWriter, r *http.Request) {
	installments, err := h.Usecase.ListInstallments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]installmentView, 0, len(installments))
	for _, i := range installments {
		views = append(views, toInstallmentView(i))
	}
	writeJSON(w, http.StatusOK, views)
}

// POST /parcelas/{id}/confirmar
func (h *InstallmentHandler) ConfirmInstallment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PaymentMethod  string `json:"payment_method"`
		ComprovanteURL string `json:"comprovante_url"`
		ActorID        string `json:"actor_id"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	err := h.Usecase.ConfirmInstallment(r.Context(), &installmentdto.ConfirmInstallmentInput{
		InstallmentID:  mux.Vars(r)["id"],
		PaymentMethod:  body.PaymentMethod,
		ComprovanteURL: body.ComprovanteURL,
		ActorID:        body.ActorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /parcelas/{id}/informar-pagamento
func (h *InstallmentHandler) ReportInstallmentPaid(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ComprovanteURL string `json:"comprovante_url"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := h.Usecase.ReportInstallmentPaid(r.Context(), mux.Vars(r)["id"], body.ComprovanteURL); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
