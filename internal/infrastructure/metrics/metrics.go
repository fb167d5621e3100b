package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PedidoMetrics groups the counters the back-office dashboards scrape.
type PedidoMetrics struct {
	PedidosCreatedTotal prometheus.Counter

	StatusTransitionsTotal  *prometheus.CounterVec
	InvalidTransitionsTotal prometheus.Counter

	RevisionsRequestedTotal *prometheus.CounterVec

	InstallmentsPaidTotal       prometheus.Counter
	InstallmentsPaidAmountTotal prometheus.Counter

	TrackingRequestsTotal prometheus.Counter
}

func NewPedidoMetrics() *PedidoMetrics {
	return &PedidoMetrics{
		PedidosCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pedidos_created_total",
				Help: "Total de pedidos criados a partir de briefings",
			},
		),
		StatusTransitionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pedido_status_transitions_total",
				Help: "Transições de status aplicadas, por status de destino",
			},
			[]string{"to_status"},
		),
		InvalidTransitionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "pedido_invalid_transitions_total",
				Help: "Transições rejeitadas pela tabela legal",
			},
		),
		RevisionsRequestedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "revisions_requested_total",
				Help: "Revisões solicitadas, separadas por inclusa/extra",
			},
			[]string{"extra"},
		),
		InstallmentsPaidTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "installments_paid_total",
				Help: "Parcelas confirmadas como pagas",
			},
		),
		InstallmentsPaidAmountTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "installments_paid_amount_total",
				Help: "Valor total confirmado, em centavos",
			},
		),
		TrackingRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tracking_requests_total",
				Help: "Consultas à página pública de acompanhamento",
			},
		),
	}
}
