package kafka

// PedidoEvent is the fire-and-forget notification payload consumed by the
// outbound dispatcher (WhatsApp webhook / transactional email bridge).
type PedidoEvent struct {
	PedidoID  string `json:"pedido_id"`
	Protocolo string `json:"protocolo"`
	Event     string `json:"event"`
	Status    string `json:"status"`
	Email     string `json:"email,omitempty"`
}
