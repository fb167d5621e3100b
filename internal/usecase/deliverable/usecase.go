package deliverable

import (
	"context"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	deliverabledto "github.com/atelie-design/pedido-service/internal/usecase/dto/deliverable"
	"github.com/google/uuid"
)

type DeliverableUsecase interface {
	AddDeliverable(ctx context.Context, input *deliverabledto.AddDeliverableInput) (*domain.Deliverable, error)
	MarkDownloaded(ctx context.Context, deliverableID string) error
	ListDeliverables(ctx context.Context, pedidoID string) ([]*domain.Deliverable, error)
}

type DefaultDeliverableUsecase struct {
	DeliverableRepo domain.DeliverableRepository
	PedidoRepo      domain.PedidoRepository
	ActivityRepo    domain.ActivityRepository
	TxManager       domain.TxManager
}

func NewDefaultDeliverableUsecase(
	deliverableRepo domain.DeliverableRepository,
	pedidoRepo domain.PedidoRepository,
	activityRepo domain.ActivityRepository,
	txManager domain.TxManager) *DefaultDeliverableUsecase {

	return &DefaultDeliverableUsecase{
		DeliverableRepo: deliverableRepo,
		PedidoRepo:      pedidoRepo,
		ActivityRepo:    activityRepo,
		TxManager:       txManager,
	}
}

// AddDeliverable registers a file handed to the client. Expiry is fixed at
// creation: 30 days from delivery unless the admin overrides it.
func (uc *DefaultDeliverableUsecase) AddDeliverable(ctx context.Context, input *deliverabledto.AddDeliverableInput) (*domain.Deliverable, error) {
	var deliverable *domain.Deliverable
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		if _, err := uc.PedidoRepo.GetPedidoByID(ctx, input.PedidoID); err != nil {
			return err
		}

		now := time.Now()
		ttl := domain.DefaultDeliverableTTL
		if input.ExpiresDays > 0 {
			ttl = time.Duration(input.ExpiresDays) * 24 * time.Hour
		}
		deliverable = &domain.Deliverable{
			ID:          uuid.NewString(),
			PedidoID:    input.PedidoID,
			FileURL:     input.FileURL,
			FileName:    input.FileName,
			FileType:    input.FileType,
			FileSize:    input.FileSize,
			IsFinal:     input.IsFinal,
			DeliveredAt: now,
			ExpiresAt:   now.Add(ttl),
			CreatedAt:   now,
		}
		if err := uc.DeliverableRepo.CreateDeliverable(ctx, deliverable); err != nil {
			return err
		}

		action := domain.ActionPartialDeliverableAdded
		if input.IsFinal {
			action = domain.ActionFinalDeliverableAdded
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  input.PedidoID,
			Action:    action,
			ActorType: domain.ActorAdmin,
			Details: map[string]any{
				"file_name": input.FileName,
				"is_final":  input.IsFinal,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return deliverable, nil
}

// MarkDownloaded stamps the first client download and logs it.
func (uc *DefaultDeliverableUsecase) MarkDownloaded(ctx context.Context, deliverableID string) error {
	return uc.TxManager.Do(ctx, func(ctx context.Context) error {
		deliverable, err := uc.DeliverableRepo.GetDeliverableByID(ctx, deliverableID)
		if err != nil {
			return err
		}
		now := time.Now()
		if err := uc.DeliverableRepo.MarkDownloaded(ctx, deliverable.ID, now); err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  deliverable.PedidoID,
			Action:    domain.ActionDeliverableDownloaded,
			ActorType: domain.ActorClient,
			Details:   map[string]any{"deliverable_id": deliverable.ID},
			CreatedAt: now,
		})
	})
}

func (uc *DefaultDeliverableUsecase) ListDeliverables(ctx context.Context, pedidoID string) ([]*domain.Deliverable, error) {
	return uc.DeliverableRepo.ListDeliverablesByPedidoID(ctx, pedidoID)
}
