package installmentdto

import (
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

type CreateInstallmentsInput struct {
	PedidoID         string
	TotalAmount      int64
	PaymentMode      domain.PaymentMode
	CustomSplits     []int64
	InstallmentCount int32
	FirstDueDate     *time.Time
}

type ConfirmInstallmentInput struct {
	InstallmentID  string
	PaymentMethod  string
	ComprovanteURL string
	ActorID        string
}
