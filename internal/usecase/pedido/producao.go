package pedido

import (
	"context"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	deliverabledto "github.com/atelie-design/pedido-service/internal/usecase/dto/deliverable"
	"github.com/google/uuid"
)

// StartProduction moves a paid pedido onto the workbench. The production
// deadline is derived from the quoted lead time on the first entry into
// em_confeccao and never recomputed on re-entries after revisions.
func (uc *DefaultPedidoUsecase) StartProduction(ctx context.Context, pedidoID string) error {
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if err := uc.checkTransition(pedido, domain.StatusEmConfeccao); err != nil {
			return err
		}

		now := time.Now()
		stamps := domain.StatusStamps{}
		if pedido.DataInicioConfeccao == nil {
			stamps.DataInicioConfeccao = &now
			if pedido.PrazoOrcado != nil && pedido.PrazoFinal == nil {
				prazoFinal := now.AddDate(0, 0, int(*pedido.PrazoOrcado))
				stamps.PrazoFinal = &prazoFinal
			}
		}
		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, pedido.Status, domain.StatusEmConfeccao, stamps)
		if err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionProductionStarted,
			ActorType: domain.ActorAdmin,
			Details:   map[string]any{"from": string(pedido.Status)},
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	uc.countTransition(domain.StatusEmConfeccao)
	return nil
}

// SubmitForReview hands the work over to the client: the pedido moves to
// aguardando_aprovacao_cliente and, when a file is attached, the deliverable
// is stored in the same transaction.
func (uc *DefaultPedidoUsecase) SubmitForReview(ctx context.Context, pedidoID string, input *deliverabledto.AddDeliverableInput) error {
	var pedido *domain.Pedido
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		var err error
		pedido, err = uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if err := uc.checkTransition(pedido, domain.StatusAguardandoAprovacaoCliente); err != nil {
			return err
		}

		now := time.Now()
		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, pedido.Status, domain.StatusAguardandoAprovacaoCliente,
			domain.StatusStamps{})
		if err != nil {
			return err
		}
		err = uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionStatusChanged,
			ActorType: domain.ActorAdmin,
			Details: map[string]any{
				"from": string(pedido.Status),
				"to":   string(domain.StatusAguardandoAprovacaoCliente),
			},
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		if input != nil && input.FileURL != "" {
			input.PedidoID = pedidoID
			if _, err := uc.DeliverableUsecase.AddDeliverable(ctx, input); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.countTransition(domain.StatusAguardandoAprovacaoCliente)
	uc.notify(domain.NotificationEvent{
		PedidoID:  pedido.ID,
		Protocolo: pedido.Protocolo,
		Event:     domain.EventMaterialPronto,
		Status:    domain.StatusAguardandoAprovacaoCliente,
		Email:     pedido.Email,
	})
	return nil
}

// ApproveDelivery is the client sign-off on the submitted material. With
// outstanding installments the pedido parks in aguardando_pagamento_final;
// fully paid pedidos finalize immediately.
func (uc *DefaultPedidoUsecase) ApproveDelivery(ctx context.Context, pedidoID string) error {
	var final domain.PedidoStatus
	var pedido *domain.Pedido
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		var err error
		pedido, err = uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}

		unpaid, err := uc.InstallmentRepo.CountUnpaidByPedidoID(ctx, pedidoID)
		if err != nil {
			return err
		}

		now := time.Now()
		stamps := domain.StatusStamps{}
		if unpaid > 0 {
			final = domain.StatusAguardandoPagamentoFinal
		} else {
			final = domain.StatusFinalizado
			stamps.DataEntrega = &now
		}
		if err := uc.checkTransition(pedido, final); err != nil {
			return err
		}

		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, pedido.Status, final, stamps)
		if err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionStatusChanged,
			ActorType: domain.ActorClient,
			Details: map[string]any{
				"from": string(pedido.Status),
				"to":   string(final),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	uc.countTransition(final)
	if final == domain.StatusFinalizado {
		uc.notify(domain.NotificationEvent{
			PedidoID:  pedido.ID,
			Protocolo: pedido.Protocolo,
			Event:     domain.EventPedidoFinalizado,
			Status:    final,
			Email:     pedido.Email,
		})
	}
	return nil
}
