package pedido

import (
	"context"
	"fmt"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	installmentdto "github.com/atelie-design/pedido-service/internal/usecase/dto/installment"
	pedidodto "github.com/atelie-design/pedido-service/internal/usecase/dto/pedido"
	"github.com/atelie-design/pedido-service/internal/usecase/installment"
	"github.com/google/uuid"
)

// SendOrcamento attaches the quote and moves the pedido from briefing to
// orcamento_enviado. A pedido only ever carries one quote; re-sending fails
// with ErrAlreadyExists.
func (uc *DefaultPedidoUsecase) SendOrcamento(ctx context.Context, pedidoID string, input *pedidodto.OrcamentoInput) error {
	if input.ValorOrcado <= 0 {
		return fmt.Errorf("%w: valor_orcado must be positive", domain.ErrValidation)
	}
	if input.DiscountAmount < 0 || input.DiscountAmount > input.ValorOrcado {
		return fmt.Errorf("%w: discount_amount out of range", domain.ErrValidation)
	}

	paymentMode := input.PaymentMode
	if paymentMode == "" {
		paymentMode = domain.PaymentFull
	}
	if input.RequerPagamentoAntecipado {
		// Reject an unsatisfiable split configuration at quote time instead
		// of at approval.
		net := input.ValorOrcado - input.DiscountAmount
		if _, err := installment.CalculateSplits(net, paymentMode, input.CustomSplits, input.InstallmentCount); err != nil {
			return err
		}
	}

	var pedido *domain.Pedido
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		var err error
		pedido, err = uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if err := uc.checkTransition(pedido, domain.StatusOrcamentoEnviado); err != nil {
			return err
		}
		if pedido.HasOrcamento() {
			return fmt.Errorf("%w: orcamento for pedido %s", domain.ErrAlreadyExists, pedidoID)
		}

		err = uc.PedidoRepo.SetOrcamento(ctx, pedidoID, domain.OrcamentoFields{
			ValorOrcado:               input.ValorOrcado,
			PrazoOrcado:               input.PrazoOrcado,
			ObservacoesAdmin:          input.ObservacoesAdmin,
			DiscountAmount:            input.DiscountAmount,
			DiscountReason:            input.DiscountReason,
			RequerPagamentoAntecipado: input.RequerPagamentoAntecipado,
			PaymentMode:               paymentMode,
			ValorEntrada:              input.ValorEntrada,
			InstallmentCount:          input.InstallmentCount,
			CustomSplits:              input.CustomSplits,
			MaxRevisions:              input.MaxRevisions,
		})
		if err != nil {
			return err
		}

		now := time.Now()
		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, pedido.Status, domain.StatusOrcamentoEnviado,
			domain.StatusStamps{DataOrcamento: &now})
		if err != nil {
			return err
		}

		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionQuoteSent,
			ActorType: domain.ActorAdmin,
			Details: map[string]any{
				"valor_orcado":    input.ValorOrcado,
				"prazo_orcado":    input.PrazoOrcado,
				"discount_amount": input.DiscountAmount,
				"payment_mode":    string(paymentMode),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	uc.countTransition(domain.StatusOrcamentoEnviado)
	uc.notify(domain.NotificationEvent{
		PedidoID:  pedido.ID,
		Protocolo: pedido.Protocolo,
		Event:     domain.EventQuoteSent,
		Status:    domain.StatusOrcamentoEnviado,
		Email:     pedido.Email,
	})
	return nil
}

// ApproveOrcamento records the client approval and immediately routes the
// pedido: quotes that require up-front payment go to aguardando_pagamento
// with the installment schedule generated in the same transaction, the rest
// go straight to em_confeccao. Exactly one quote_approved entry is logged no
// matter which route is taken.
func (uc *DefaultPedidoUsecase) ApproveOrcamento(ctx context.Context, pedidoID string) error {
	var final domain.PedidoStatus
	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if err := uc.checkTransition(pedido, domain.StatusOrcamentoAprovado); err != nil {
			return err
		}
		if !pedido.HasOrcamento() {
			return fmt.Errorf("%w: pedido %s approved without orcamento", domain.ErrInconsistente, pedidoID)
		}

		now := time.Now()
		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, pedido.Status, domain.StatusOrcamentoAprovado,
			domain.StatusStamps{DataAprovacao: &now})
		if err != nil {
			return err
		}
		err = uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionQuoteApproved,
			ActorType: domain.ActorClient,
			Details:   map[string]any{"valor_orcado": *pedido.ValorOrcado},
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		if pedido.RequerPagamentoAntecipado {
			final = domain.StatusAguardandoPagamento
			err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, domain.StatusOrcamentoAprovado, final,
				domain.StatusStamps{})
			if err != nil {
				return err
			}
			// Joins the enclosing transaction; a failed schedule rolls the
			// approval back with it.
			_, err = uc.InstallmentUsecase.CreateInstallments(ctx, &installmentdto.CreateInstallmentsInput{
				PedidoID:         pedidoID,
				TotalAmount:      pedido.ValorLiquido(),
				PaymentMode:      pedido.PaymentMode,
				CustomSplits:     pedido.CustomSplits,
				InstallmentCount: pedido.InstallmentCount,
				FirstDueDate:     &now,
			})
			return err
		}

		final = domain.StatusEmConfeccao
		stamps := domain.StatusStamps{DataInicioConfeccao: &now}
		if pedido.PrazoOrcado != nil {
			prazoFinal := now.AddDate(0, 0, int(*pedido.PrazoOrcado))
			stamps.PrazoFinal = &prazoFinal
		}
		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, domain.StatusOrcamentoAprovado, final, stamps)
		if err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionStatusChanged,
			ActorType: domain.ActorSystem,
			Details: map[string]any{
				"from": string(domain.StatusOrcamentoAprovado),
				"to":   string(final),
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	uc.countTransition(domain.StatusOrcamentoAprovado)
	uc.countTransition(final)
	return nil
}

// RefuseOrcamento is the client rejection of the quote, terminal.
func (uc *DefaultPedidoUsecase) RefuseOrcamento(ctx context.Context, pedidoID, motivoRecusa string) error {
	if motivoRecusa == "" {
		return fmt.Errorf("%w: motivo_recusa is required", domain.ErrValidation)
	}

	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		pedido, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, pedidoID)
		if err != nil {
			return err
		}
		if err := uc.checkTransition(pedido, domain.StatusRecusado); err != nil {
			return err
		}

		now := time.Now()
		err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedidoID, pedido.Status, domain.StatusRecusado,
			domain.StatusStamps{MotivoRecusa: motivoRecusa})
		if err != nil {
			return err
		}
		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  pedidoID,
			Action:    domain.ActionQuoteRejected,
			ActorType: domain.ActorClient,
			Details:   map[string]any{"motivo": motivoRecusa},
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	uc.countTransition(domain.StatusRecusado)
	return nil
}
