package domain

import "time"

type RevisionStatus string

const (
	RevisionPending    RevisionStatus = "pending"
	RevisionInProgress RevisionStatus = "in_progress"
	RevisionCompleted  RevisionStatus = "completed"
	RevisionRejected   RevisionStatus = "rejected"
)

var legalRevisionTransitions = map[RevisionStatus][]RevisionStatus{
	RevisionPending:    {RevisionInProgress, RevisionCompleted, RevisionRejected},
	RevisionInProgress: {RevisionCompleted, RevisionRejected},
}

// CanTransitionRevision reports whether from -> to is legal. completed and
// rejected are final.
func CanTransitionRevision(from, to RevisionStatus) bool {
	for _, next := range legalRevisionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type RevisionActor string

const (
	RevisionByClient RevisionActor = "client"
	RevisionByAdmin  RevisionActor = "admin"
)

type RevisionFile struct {
	Nome string `json:"nome"`
	URL  string `json:"url"`
	Tipo string `json:"tipo,omitempty"`
}

type Revision struct {
	ID             string
	PedidoID       string
	RevisionNumber int32
	RequestedBy    RevisionActor
	Description    string
	Files          []RevisionFile
	Status         RevisionStatus
	AdminResponse  string
	// IsExtra is frozen at creation time: true iff the pedido's counter had
	// already reached max_revisions when this request came in. Later quota
	// changes never rewrite it.
	IsExtra    bool
	ExtraCost  int64
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
