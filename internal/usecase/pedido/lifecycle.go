package pedido

import (
	"context"
	"fmt"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/google/uuid"
)

// CancelPedido aborts the pedido from any non-terminal status.
func (uc *DefaultPedidoUsecase) CancelPedido(ctx context.Context, pedidoID string) error {
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if err := uc.checkTransition(pedido, domain.StatusCancelado); err != nil {
			return err
		}

		now := time.Now()
		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, pedido.Status, domain.StatusCancelado,
			domain.StatusStamps{})
		if err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionStatusChanged,
			ActorType: domain.ActorAdmin,
			Details: map[string]any{
				"from": string(pedido.Status),
				"to":   string(domain.StatusCancelado),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	uc.countTransition(domain.StatusCancelado)
	return nil
}

// ArchivePedido hides a closed pedido from the default admin listing. Only
// terminal pedidos archive; the status itself is untouched.
func (uc *DefaultPedidoUsecase) ArchivePedido(ctx context.Context, pedidoID string) error {
	return uc.TxManager.Do(ctx, func(ctx context.Context) error {
		pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if !pedido.Status.IsTerminal() {
			return fmt.Errorf("%w: archive from %s", domain.ErrInvalidTransition, pedido.Status)
		}
		if pedido.ArchivedAt != nil {
			return nil
		}

		now := time.Now()
		if err := uc.PedidoRepo.ArchivePedido(ctx, pedidoID, now); err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionOrderArchived,
			ActorType: domain.ActorAdmin,
			CreatedAt: now,
		})
	})
}

// SubmitNPS stores the post-delivery satisfaction score (0-10, one shot).
func (uc *DefaultPedidoUsecase) SubmitNPS(ctx context.Context, pedidoID string, score int32, comment string) error {
	if score < 0 || score > 10 {
		return fmt.Errorf("%w: nps score %d out of range", domain.ErrValidation, score)
	}

	return uc.TxManager.Do(ctx, func(ctx context.Context) error {
		pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if pedido.Status != domain.StatusFinalizado {
			return fmt.Errorf("%w: nps from %s", domain.ErrInvalidTransition, pedido.Status)
		}
		if pedido.NPSScore != nil {
			return fmt.Errorf("%w: nps for pedido %s", domain.ErrAlreadyExists, pedidoID)
		}

		if err := uc.PedidoRepo.SetNPS(ctx, pedidoID, score, comment); err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionNPSSubmitted,
			ActorType: domain.ActorClient,
			Details:   map[string]any{"score": score},
			CreatedAt: time.Now(),
		})
	})
}
