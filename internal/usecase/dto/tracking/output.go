package trackingdto

import "time"

// TrackingView is the client-safe projection served on the public tracking
// page, keyed by protocolo, no authentication.
type TrackingView struct {
	Pedido       TrackingPedido        `json:"pedido"`
	Progress     TrackingProgress      `json:"progress"`
	Timeline     []TrackingEvent       `json:"timeline"`
	Deliverables []TrackingDeliverable `json:"deliverables"`
}

type TrackingPedido struct {
	Protocolo    string     `json:"protocolo"`
	Status       string     `json:"status"`
	Nome         string     `json:"nome"`
	Servico      string     `json:"servico,omitempty"`
	DataBriefing time.Time  `json:"data_briefing"`
	DataEntrega  *time.Time `json:"data_entrega,omitempty"`
	PrazoFinal   *time.Time `json:"prazo_final,omitempty"`
	NPSScore     *int32     `json:"nps_score,omitempty"`
}

type TrackingProgress struct {
	Label      string `json:"label"`
	Step       int    `json:"step"`
	Color      string `json:"color"`
	Percentage int    `json:"percentage"`
}

type TrackingEvent struct {
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

type TrackingDeliverable struct {
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type,omitempty"`
	DeliveredAt time.Time `json:"delivered_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsFinal     bool      `json:"is_final"`
}
