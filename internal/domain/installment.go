package domain

import "time"

type PaymentMode string

const (
	PaymentFull         PaymentMode = "full"
	PaymentSplit5050    PaymentMode = "split_50_50"
	PaymentSplit3070    PaymentMode = "split_30_70"
	PaymentSplitCustom  PaymentMode = "split_custom"
	PaymentInstallments PaymentMode = "installments"
)

type InstallmentStatus string

const (
	InstallmentPending              InstallmentStatus = "pending"
	InstallmentAwaitingConfirmation InstallmentStatus = "awaiting_confirmation"
	InstallmentPaid                 InstallmentStatus = "paid"
)

// Installment is one scheduled partial payment of a pedido. Amount is in
// cents and immutable after creation; only status and payment metadata move.
type Installment struct {
	ID                string
	PedidoID          string
	InstallmentNumber int32
	Amount            int64
	DueDate           time.Time
	Status            InstallmentStatus
	PaymentMethod     string
	ComprovanteURL    string
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
