package installment

import (
	"context"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	installmentdto "github.com/atelie-design/pedido-service/internal/usecase/dto/installment"
	"github.com/google/uuid"
)

// ConfirmInstallment is the admin confirmation. Paying the last outstanding
// installment advances the pedido in the same transaction: from
// aguardando_pagamento to pagamento_confirmado, or from
// aguardando_pagamento_final to finalizado.
func (uc *DefaultInstallmentUsecase) ConfirmInstallment(ctx context.Context, input *installmentdto.ConfirmInstallmentInput) error {
	var confirmed *domain.Installment
	var advanced domain.PedidoStatus
	var pedido *domain.Pedido

	err := uc.TxManager.Do(ctx, func(ctx context.Context) error {
		installment, err := uc.InstallmentRepo.GetInstallmentByID(ctx, input.InstallmentID)
		if err != nil {
			return err
		}
		confirmed = installment

		pedido, err = uc.PedidoRepo.GetPedidoForUpdate(ctx, installment.PedidoID)
		if err != nil {
			return err
		}

		now := time.Now()
		payable := []domain.InstallmentStatus{domain.InstallmentPending, domain.InstallmentAwaitingConfirmation}
		if err := uc.InstallmentRepo.MarkInstallmentPaid(ctx, installment.ID, payable, input.PaymentMethod, input.ComprovanteURL, now); err != nil {
			return err
		}

		remaining, err := uc.InstallmentRepo.CountUnpaidByPedidoID(ctx, installment.PedidoID)
		if err != nil {
			return err
		}
		if remaining == 0 {
			switch pedido.Status {
			case domain.StatusAguardandoPagamento:
				advanced = domain.StatusPagamentoConfirmado
				err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedido.ID, pedido.Status, advanced,
					domain.StatusStamps{DataPagamento: &now})
			case domain.StatusAguardandoPagamentoFinal:
				advanced = domain.StatusFinalizado
				err = uc.PedidoRepo.UpdatePedidoStatus(ctx, pedido.ID, pedido.Status, advanced,
					domain.StatusStamps{DataPagamentoFinal: &now})
			}
			if err != nil {
				return err
			}
			if advanced != "" {
				err = uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
					ID:        uuid.NewString(),
					PedidoID:  pedido.ID,
					Action:    domain.ActionPaymentConfirmed,
					ActorType: domain.ActorSystem,
					Details:   map[string]any{"status": string(advanced)},
					CreatedAt: now,
				})
				if err != nil {
					return err
				}
			}
		}

		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  installment.PedidoID,
			Action:    domain.ActionInstallmentPaid,
			ActorType: domain.ActorAdmin,
			ActorID:   input.ActorID,
			Details: map[string]any{
				"installment_id":     installment.ID,
				"installment_number": installment.InstallmentNumber,
				"amount":             installment.Amount,
				"payment_method":     input.PaymentMethod,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.InstallmentsPaidTotal.Inc()
		uc.Metrics.InstallmentsPaidAmountTotal.Add(float64(confirmed.Amount))
		if advanced != "" {
			uc.Metrics.StatusTransitionsTotal.WithLabelValues(string(advanced)).Inc()
		}
	}
	if advanced != "" {
		event := domain.EventPaymentConfirmed
		if advanced == domain.StatusFinalizado {
			event = domain.EventPedidoFinalizado
		}
		uc.notify(domain.NotificationEvent{
			PedidoID:  pedido.ID,
			Protocolo: pedido.Protocolo,
			Event:     event,
			Status:    advanced,
			Email:     pedido.Email,
		})
	}
	return nil
}

// ReportInstallmentPaid is the client-side "I already paid" action. It only
// parks the installment in awaiting_confirmation; the completion check runs
// on explicit admin confirmation.
func (uc *DefaultInstallmentUsecase) ReportInstallmentPaid(ctx context.Context, installmentID, comprovanteURL string) error {
	return uc.TxManager.Do(ctx, func(ctx context.Context) error {
		if _, err := uc.InstallmentRepo.GetInstallmentByID(ctx, installmentID); err != nil {
			return err
		}
		return uc.InstallmentRepo.MarkAwaitingConfirmation(ctx, installmentID, comprovanteURL)
	})
}
