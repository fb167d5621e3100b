package pedido

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/metrics"
	"github.com/atelie-design/pedido-service/internal/usecase/deliverable"
	"github.com/atelie-design/pedido-service/internal/usecase/installment"
	deliverabledto "github.com/atelie-design/pedido-service/internal/usecase/dto/deliverable"
	pedidodto "github.com/atelie-design/pedido-service/internal/usecase/dto/pedido"
)

type PedidoUsecase interface {
	CreatePedido(ctx context.Context, input *pedidodto.CreatePedidoInput) (*domain.Pedido, error)

	SendOrcamento(ctx context.Context, pedidoID string, input *pedidodto.OrcamentoInput) error
	ApproveOrcamento(ctx context.Context, pedidoID string) error
	RefuseOrcamento(ctx context.Context, pedidoID, motivoRecusa string) error

	StartProduction(ctx context.Context, pedidoID string) error
	SubmitForReview(ctx context.Context, pedidoID string, input *deliverabledto.AddDeliverableInput) error
	ApproveDelivery(ctx context.Context, pedidoID string) error

	CancelPedido(ctx context.Context, pedidoID string) error
	ArchivePedido(ctx context.Context, pedidoID string) error
	SubmitNPS(ctx context.Context, pedidoID string, score int32, comment string) error

	GetPedidoByID(ctx context.Context, pedidoID string) (*domain.Pedido, error)
	GetPedidoByProtocolo(ctx context.Context, protocolo string) (*domain.Pedido, error)
	ListPedidos(ctx context.Context, input *pedidodto.ListPedidosInput) ([]*domain.Pedido, int64, error)
	ListActivities(ctx context.Context, pedidoID string, ascending bool) ([]*domain.ActivityEntry, error)
}

type DefaultPedidoUsecase struct {
	PedidoRepo         domain.PedidoRepository
	InstallmentRepo    domain.InstallmentRepository
	ActivityRepo       domain.ActivityRepository
	TxManager          domain.TxManager
	InstallmentUsecase installment.InstallmentUsecase
	DeliverableUsecase deliverable.DeliverableUsecase
	Notifier           domain.NotifierPort
	Metrics            *metrics.PedidoMetrics
}

func NewDefaultPedidoUsecase(
	pedidoRepo domain.PedidoRepository,
	installmentRepo domain.InstallmentRepository,
	activityRepo domain.ActivityRepository,
	txManager domain.TxManager,
	installmentUsecase installment.InstallmentUsecase,
	deliverableUsecase deliverable.DeliverableUsecase,
	notifier domain.NotifierPort,
	pedidoMetrics *metrics.PedidoMetrics) *DefaultPedidoUsecase {

	return &DefaultPedidoUsecase{
		PedidoRepo:         pedidoRepo,
		InstallmentRepo:    installmentRepo,
		ActivityRepo:       activityRepo,
		TxManager:          txManager,
		InstallmentUsecase: installmentUsecase,
		DeliverableUsecase: deliverableUsecase,
		Notifier:           notifier,
		Metrics:            pedidoMetrics,
	}
}

func (uc *DefaultPedidoUsecase) GetPedidoByID(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	return uc.PedidoRepo.GetPedidoByID(ctx, pedidoID)
}

func (uc *DefaultPedidoUsecase) GetPedidoByProtocolo(ctx context.Context, protocolo string) (*domain.Pedido, error) {
	return uc.PedidoRepo.GetPedidoByProtocolo(ctx, protocolo)
}

func (uc *DefaultPedidoUsecase) ListPedidos(ctx context.Context, input *pedidodto.ListPedidosInput) ([]*domain.Pedido, int64, error) {
	return uc.PedidoRepo.ListPedidos(ctx, input.Filters, input.Page, input.Limit)
}

func (uc *DefaultPedidoUsecase) ListActivities(ctx context.Context, pedidoID string, ascending bool) ([]*domain.ActivityEntry, error) {
	return uc.ActivityRepo.ListActivitiesByPedidoID(ctx, pedidoID, ascending)
}

// checkTransition validates against the legal table before any write. Every
// mutation path goes through it; nothing writes a status string ad hoc.
func (uc *DefaultPedidoUsecase) checkTransition(pedido *domain.Pedido, to domain.PedidoStatus) error {
	if !domain.CanTransition(pedido.Status, to) {
		if uc.Metrics != nil {
			uc.Metrics.InvalidTransitionsTotal.Inc()
		}
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, pedido.Status, to)
	}
	return nil
}

func (uc *DefaultPedidoUsecase) notify(event domain.NotificationEvent) {
	if uc.Notifier == nil {
		return
	}
	if err := uc.Notifier.Notify(event); err != nil {
		slog.Error("notification publish failed", "pedido_id", event.PedidoID, "event", event.Event, "error", err.Error())
	}
}

func (uc *DefaultPedidoUsecase) countTransition(to domain.PedidoStatus) {
	if uc.Metrics != nil {
		uc.Metrics.StatusTransitionsTotal.WithLabelValues(string(to)).Inc()
	}
}
