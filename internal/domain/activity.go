package domain

import "time"

// ActivityAction is the closed vocabulary shared by the activity log and the
// status-transition tags. New values require extending the public allow-list
// decision in the tracking projection.
type ActivityAction string

const (
	ActionOrderCreated            ActivityAction = "order_created"
	ActionQuoteSent               ActivityAction = "quote_sent"
	ActionQuoteApproved           ActivityAction = "quote_approved"
	ActionQuoteRejected           ActivityAction = "quote_rejected"
	ActionPaymentConfirmed        ActivityAction = "payment_confirmed"
	ActionProductionStarted       ActivityAction = "production_started"
	ActionRevisionRequested       ActivityAction = "revision_requested"
	ActionRevisionExtraRequested  ActivityAction = "revision_extra_requested"
	ActionRevisionCompleted       ActivityAction = "revision_completed"
	ActionRevisionRejected        ActivityAction = "revision_rejected"
	ActionRevisionInProgress      ActivityAction = "revision_in_progress"
	ActionPartialDeliverableAdded ActivityAction = "partial_deliverable_added"
	ActionFinalDeliverableAdded   ActivityAction = "final_deliverable_added"
	ActionDeliverableDownloaded   ActivityAction = "deliverable_downloaded"
	ActionInstallmentsCreated     ActivityAction = "installments_created"
	ActionInstallmentPaid         ActivityAction = "installment_paid"
	ActionStatusChanged           ActivityAction = "status_changed"
	ActionNPSSubmitted            ActivityAction = "nps_submitted"
	ActionOrderArchived           ActivityAction = "order_archived"
)

type ActorType string

const (
	ActorAdmin  ActorType = "admin"
	ActorClient ActorType = "client"
	ActorSystem ActorType = "system"
)

// ActivityEntry is append-only. Entries are never updated or deleted;
// timelines order by CreatedAt ascending, admin views descending.
type ActivityEntry struct {
	ID        string
	PedidoID  string
	Action    ActivityAction
	ActorType ActorType
	ActorID   string
	Details   map[string]any
	CreatedAt time.Time
}
