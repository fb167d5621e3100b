package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the admin API, the installment and deliverable actions
// and the public tracking endpoint.
func NewRouter(
	pedidoHandler *PedidoHandler,
	revisionHandler *RevisionHandler,
	installmentHandler *InstallmentHandler,
	deliverableHandler *DeliverableHandler,
	trackingHandler *TrackingHandler) *mux.Router {

	r := mux.NewRouter()

	// Pedidos
	r.HandleFunc("/pedidos", pedidoHandler.CreatePedido).Methods("POST")
	r.HandleFunc("/pedidos", pedidoHandler.ListPedidos).Methods("GET")
	r.HandleFunc("/pedidos/{id}", pedidoHandler.GetPedido).Methods("GET")
	r.HandleFunc("/pedidos/{id}/atividades", pedidoHandler.ListActivities).Methods("GET")
	r.HandleFunc("/pedidos/{id}/orcamento", pedidoHandler.SendOrcamento).Methods("POST")
	r.HandleFunc("/pedidos/{id}/orcamento/aprovar", pedidoHandler.ApproveOrcamento).Methods("POST")
	r.HandleFunc("/pedidos/{id}/orcamento/recusar", pedidoHandler.RefuseOrcamento).Methods("POST")
	r.HandleFunc("/pedidos/{id}/iniciar-confeccao", pedidoHandler.StartProduction).Methods("POST")
	r.HandleFunc("/pedidos/{id}/enviar-para-aprovacao", pedidoHandler.SubmitForReview).Methods("POST")
	r.HandleFunc("/pedidos/{id}/aprovar-entrega", pedidoHandler.ApproveDelivery).Methods("POST")
	r.HandleFunc("/pedidos/{id}/cancelar", pedidoHandler.CancelPedido).Methods("POST")
	r.HandleFunc("/pedidos/{id}/arquivar", pedidoHandler.ArchivePedido).Methods("POST")
	r.HandleFunc("/pedidos/{id}/nps", pedidoHandler.SubmitNPS).Methods("POST")

	// Revisoes
	r.HandleFunc("/pedidos/{id}/revisoes", revisionHandler.CreateRevision).Methods("POST")
	r.HandleFunc("/pedidos/{id}/revisoes", revisionHandler.ListRevisions).Methods("GET")
	r.HandleFunc("/revisoes/{id}/status", revisionHandler.UpdateRevisionStatus).Methods("PATCH")

	// Parcelas
	r.HandleFunc("/pedidos/{id}/parcelas", installmentHandler.ListInstallments).Methods("GET")
	r.HandleFunc("/parcelas/{id}/confirmar", installmentHandler.ConfirmInstallment).Methods("POST")
	r.HandleFunc("/parcelas/{id}/informar-pagamento", installmentHandler.ReportInstallmentPaid).Methods("POST")

	// Entregaveis
	r.HandleFunc("/pedidos/{id}/entregaveis", deliverableHandler.AddDeliverable).Methods("POST")
	r.HandleFunc("/pedidos/{id}/entregaveis", deliverableHandler.ListDeliverables).Methods("GET")
	r.HandleFunc("/entregaveis/{id}/download", deliverableHandler.MarkDownloaded).Methods("POST")

	// Public tracking
	r.HandleFunc("/tracking/{protocolo}", trackingHandler.GetTracking).Methods("GET")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	return r
}
