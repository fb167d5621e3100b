package models

import (
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

type RevisionModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	PedidoID       string `gorm:"type:uuid;not null;index;uniqueIndex:idx_revision_number,priority:1"`
	RevisionNumber int32  `gorm:"not null;uniqueIndex:idx_revision_number,priority:2"`
	RequestedBy    domain.RevisionActor
	Description    string `gorm:"not null"`
	Files          string `gorm:"type:jsonb"`
	Status         domain.RevisionStatus `gorm:"index;default:'pending'"`
	AdminResponse  string
	IsExtra        bool  `gorm:"not null;default:false"`
	ExtraCost      int64 `gorm:"default:0"`
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}

func (RevisionModel) TableName() string {
	return "order_revisions"
}
