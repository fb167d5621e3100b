package installment

import (
	"context"
	"log/slog"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/metrics"
	installmentdto "github.com/atelie-design/pedido-service/internal/usecase/dto/installment"
)

type InstallmentUsecase interface {
	CreateInstallments(ctx context.Context, input *installmentdto.CreateInstallmentsInput) ([]*domain.Installment, error)
	ConfirmInstallment(ctx context.Context, input *installmentdto.ConfirmInstallmentInput) error
	ReportInstallmentPaid(ctx context.Context, installmentID, comprovanteURL string) error
	ListInstallments(ctx context.Context, pedidoID string) ([]*domain.Installment, error)
}

type DefaultInstallmentUsecase struct {
	InstallmentRepo domain.InstallmentRepository
	PedidoRepo      domain.PedidoRepository
	ActivityRepo    domain.ActivityRepository
	TxManager       domain.TxManager
	Notifier        domain.NotifierPort
	Metrics         *metrics.PedidoMetrics
}

func NewDefaultInstallmentUsecase(
	installmentRepo domain.InstallmentRepository,
	pedidoRepo domain.PedidoRepository,
	activityRepo domain.ActivityRepository,
	txManager domain.TxManager,
	notifier domain.NotifierPort,
	pedidoMetrics *metrics.PedidoMetrics) *DefaultInstallmentUsecase {

	return &DefaultInstallmentUsecase{
		InstallmentRepo: installmentRepo,
		PedidoRepo:      pedidoRepo,
		ActivityRepo:    activityRepo,
		TxManager:       txManager,
		Notifier:        notifier,
		Metrics:         pedidoMetrics,
	}
}

func (uc *DefaultInstallmentUsecase) ListInstallments(ctx context.Context, pedidoID string) ([]*domain.Installment, error) {
	return uc.InstallmentRepo.ListInstallmentsByPedidoID(ctx, pedidoID)
}

func (uc *DefaultInstallmentUsecase) notify(event domain.NotificationEvent) {
	if uc.Notifier == nil {
		return
	}
	if err := uc.Notifier.Notify(event); err != nil {
		slog.Error("notification publish failed", "pedido_id", event.PedidoID, "event", event.Event, "error", err.Error())
	}
}
