package domain

// NotificationEvent is handed to the outbound dispatcher on client-facing
// milestones. Delivery is best effort; the core never retries.
const (
	EventQuoteSent        = "quote_sent"
	EventMaterialPronto   = "material_pronto"
	EventPaymentConfirmed = "payment_confirmed"
	EventPedidoFinalizado = "pedido_finalizado"
)

type NotificationEvent struct {
	PedidoID  string
	Protocolo string
	Event     string
	Status    PedidoStatus
	Email     string
}

type NotifierPort interface {
	Notify(event NotificationEvent) error
}
