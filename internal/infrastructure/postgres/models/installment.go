package models

import (
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

type InstallmentModel struct {
	ID                string `gorm:"primaryKey;type:uuid"`
	PedidoID          string `gorm:"type:uuid;not null;index;uniqueIndex:idx_installment_number,priority:1"`
	InstallmentNumber int32  `gorm:"not null;uniqueIndex:idx_installment_number,priority:2"`
	Amount            int64  `gorm:"not null"`
	DueDate           time.Time
	Status            domain.InstallmentStatus `gorm:"index;default:'pending'"`
	PaymentMethod     string
	ComprovanteURL    string
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (InstallmentModel) TableName() string {
	return "payment_installments"
}
