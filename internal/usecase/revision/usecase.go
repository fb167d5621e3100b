package revision

import (
	"context"
	"fmt"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/metrics"
	revisiondto "github.com/atelie-design/pedido-service/internal/usecase/dto/revision"
	"github.com/google/uuid"
)

type RevisionUsecase interface {
	CreateRevision(ctx context.Context, input *revisiondto.CreateRevisionInput) (*domain.Revision, error)
	UpdateRevisionStatus(ctx context.Context, input *revisiondto.UpdateRevisionStatusInput) error
	ListRevisions(ctx context.Context, pedidoID string) ([]*domain.Revision, error)
}

type DefaultRevisionUsecase struct {
	RevisionRepo domain.RevisionRepository
	PedidoRepo   domain.PedidoRepository
	ActivityRepo domain.ActivityRepository
	TxManager    domain.TxManager
	Metrics      *metrics.PedidoMetrics
}

func NewDefaultRevisionUsecase(
	revisionRepo domain.RevisionRepository,
	pedidoRepo domain.PedidoRepository,
	activityRepo domain.ActivityRepository,
	txManager domain.TxManager,
	pedidoMetrics *metrics.PedidoMetrics) *DefaultRevisionUsecase {

	return &DefaultRevisionUsecase{
		RevisionRepo: revisionRepo,
		PedidoRepo:   pedidoRepo,
		ActivityRepo: activityRepo,
		TxManager:    txManager,
		Metrics:      pedidoMetrics,
	}
}

// CreateRevision numbers the new request off the counter re-read under lock,
// freezes the extra flag against the quota, bumps the counter and moves the
// pedido to em_ajustes. One atomic unit; revision numbers never collide or
// skip even when two requests race.
func (uc *DefaultRevisionUsecase) CreateRevision(ctx context.Context, input *revisiondto.CreateRevisionInput) (*domain.Revision, error) {
	if input.RequestedBy == "" {
		input.RequestedBy = domain.RevisionByClient
	}

	var revision *domain.Revision
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, input.PedidoID)
		if err != nil {
			return err
		}
		if pedido.Status != domain.StatusEmAjustes && !domain.CanTransition(pedido.Status, domain.StatusEmAjustes) {
			return fmt.Errorf("%w: pedido %s is %s", domain.ErrInvalidTransition, pedido.ID, pedido.Status)
		}

		// Quota check against the pre-increment counter; the flag is frozen
		// here and never recomputed.
		isExtra := pedido.RevisionCount >= pedido.MaxRevisions
		nextNumber := pedido.RevisionCount + 1

		now := time.Now()
		revision = &domain.Revision{
			ID:             uuid.NewString(),
			PedidoID:       pedido.ID,
			RevisionNumber: nextNumber,
			RequestedBy:    input.RequestedBy,
			Description:    input.Description,
			Files:          input.Files,
			Status:         domain.RevisionPending,
			IsExtra:        isExtra,
			CreatedAt:      now,
		}
		if err := uc.RevisionRepo.CreateRevision(ctx, revision); err != nil {
			return err
		}

		if err := uc.PedidoRepo.RegisterRevision(ctx, pedido.ID, nextNumber); err != nil {
			return err
		}

		action := domain.ActionRevisionRequested
		if isExtra {
			action = domain.ActionRevisionExtraRequested
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedido.ID,
			Action:    action,
			ActorType: domain.ActorType(input.RequestedBy),
			ActorID:   input.ActorID,
			Details: map[string]any{
				"revision_number": nextNumber,
				"is_extra":        isExtra,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		extra := "false"
		if revision.IsExtra {
			extra = "true"
		}
		uc.Metrics.RevisionsRequestedTotal.WithLabelValues(extra).Inc()
	}
	return revision, nil
}

// UpdateRevisionStatus moves a revision along pending -> in_progress ->
// completed|rejected. Completing it also returns the pedido to em_confeccao
// when it is still sitting in em_ajustes.
func (uc *DefaultRevisionUsecase) UpdateRevisionStatus(ctx context.Context, input *revisiondto.UpdateRevisionStatusInput) error {
	return uc.TxManager.Do(ctx, func(ctx context.Context) error {
		revision, err := uc.RevisionRepo.GetRevisionByID(ctx, input.RevisionID)
		if err != nil {
			return err
		}
		if !domain.CanTransitionRevision(revision.Status, input.Status) {
			return fmt.Errorf("%w: revision %s -> %s", domain.ErrInvalidTransition, revision.Status, input.Status)
		}

		now := time.Now()
		var resolvedAt *time.Time
		if input.Status == domain.RevisionCompleted || input.Status == domain.RevisionRejected {
			resolvedAt = &now
		}
		if err := uc.RevisionRepo.UpdateRevisionStatus(ctx, revision.ID, revision.Status, input.Status, input.AdminResponse, resolvedAt); err != nil {
			return err
		}

		if input.Status == domain.RevisionCompleted {
			// A sibling completion may already have moved the pedido back to
			// production; resolving this revision must still land.
			pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, revision.PedidoID)
			if err != nil {
				return err
			}
			if pedido.Status == domain.StatusEmAjustes {
				err := uc.PedidoRepo.UpdatePedidoStatus(ctx, pedido.ID,
					domain.StatusEmAjustes, domain.StatusEmConfeccao, domain.StatusStamps{})
				if err != nil {
					return err
				}
			}
		}

		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  revision.PedidoID,
			Action:    revisionAction(input.Status),
			ActorType: domain.ActorAdmin,
			ActorID:   input.ActorID,
			Details: map[string]any{
				"revision_id":     revision.ID,
				"revision_number": revision.RevisionNumber,
				"admin_response":  input.AdminResponse,
			},
			CreatedAt: now,
		})
	})
}

func (uc *DefaultRevisionUsecase) ListRevisions(ctx context.Context, pedidoID string) ([]*domain.Revision, error) {
	return uc.RevisionRepo.ListRevisionsByPedidoID(ctx, pedidoID)
}

func revisionAction(status domain.RevisionStatus) domain.ActivityAction {
	switch status {
	case domain.RevisionInProgress:
		return domain.ActionRevisionInProgress
	case domain.RevisionCompleted:
		return domain.ActionRevisionCompleted
	default:
		return domain.ActionRevisionRejected
	}
}
