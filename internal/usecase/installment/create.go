package installment

import (
	"context"
	"fmt"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	installmentdto "github.com/atelie-design/pedido-service/internal/usecase/dto/installment"
	"github.com/google/uuid"
)

// CreateInstallments computes the split schedule and inserts the whole batch.
// It runs once per pedido; a second invocation fails with ErrAlreadyExists.
func (uc *DefaultInstallmentUsecase) CreateInstallments(ctx context.Context, input *installmentdto.CreateInstallmentsInput) ([]*domain.Installment, error) {
	amounts, err := CalculateSplits(input.TotalAmount, input.PaymentMode, input.CustomSplits, input.InstallmentCount)
	if err != nil {
		return nil, err
	}

	firstDue := time.Now()
	if input.FirstDueDate != nil {
		firstDue = *input.FirstDueDate
	}
	dueDates := DueDates(firstDue, len(amounts), input.PaymentMode)

	var installments []*domain.Installment
	err = uc.TxManager.Do(ctx, func(ctx context.Context) error {
		// Lock the pedido so two racing approvals cannot both pass the
		// duplicate-batch check.
		if _, err := uc.PedidoRepo.GetPedidoForUpdate(ctx, input.PedidoID); err != nil {
			return err
		}

		existing, err := uc.InstallmentRepo.CountInstallmentsByPedidoID(ctx, input.PedidoID)
		if err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("%w: installments for pedido %s", domain.ErrAlreadyExists, input.PedidoID)
		}

		now := time.Now()
		installments = make([]*domain.Installment, len(amounts))
		for i, amount := range amounts {
			installments[i] = &domain.Installment{
				ID:                uuid.NewString(),
				PedidoID:          input.PedidoID,
				InstallmentNumber: int32(i + 1),
				Amount:            amount,
				DueDate:           dueDates[i],
				Status:            domain.InstallmentPending,
				CreatedAt:         now,
				UpdatedAt:         now,
			}
		}
		if err := uc.InstallmentRepo.CreateInstallments(ctx, installments); err != nil {
			return err
		}

		return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
			ID:        uuid.NewString(),
			PedidoID:  input.PedidoID,
			Action:    domain.ActionInstallmentsCreated,
			ActorType: domain.ActorAdmin,
			Details: map[string]any{
				"payment_mode": string(input.PaymentMode),
				"count":        len(amounts),
				"amounts":      amounts,
			},
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return installments, nil
}
