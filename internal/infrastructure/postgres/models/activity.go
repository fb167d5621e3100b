package models

import (
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

type ActivityModel struct {
	ID        string                `gorm:"primaryKey;type:uuid"`
	PedidoID  string                `gorm:"type:uuid;not null;index:idx_activity_pedido_created,priority:1"`
	Action    domain.ActivityAction `gorm:"not null;index"`
	ActorType domain.ActorType      `gorm:"not null"`
	ActorID   string
	Details   string    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index:idx_activity_pedido_created,priority:2"`
}

func (ActivityModel) TableName() string {
	return "order_activity_logs"
}
