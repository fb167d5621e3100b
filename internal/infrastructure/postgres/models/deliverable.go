package models

import "time"

type DeliverableModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	PedidoID     string `gorm:"type:uuid;not null;index"`
	FileURL      string `gorm:"not null"`
	FileName     string `gorm:"not null"`
	FileType     string
	FileSize     int64
	IsFinal      bool `gorm:"default:false"`
	DeliveredAt  time.Time
	DownloadedAt *time.Time
	ExpiresAt    time.Time `gorm:"index"`
	CreatedAt    time.Time
}

func (DeliverableModel) TableName() string {
	return "order_deliverables"
}
