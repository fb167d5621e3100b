package installment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/mocks"
	installmentdto "github.com/atelie-design/pedido-service/internal/usecase/dto/installment"
)

func newTestInstallmentUsecase() (*DefaultInstallmentUsecase, *mocks.MemPedidoRepo, *mocks.MemInstallmentRepo, *mocks.MemActivityRepo) {
	pedidoRepo := mocks.NewMemPedidoRepo()
	installmentRepo := mocks.NewMemInstallmentRepo()
	activityRepo := mocks.NewMemActivityRepo()
	uc := NewDefaultInstallmentUsecase(installmentRepo, pedidoRepo, activityRepo, mocks.NopTxManager{}, nil, nil)
	return uc, pedidoRepo, installmentRepo, activityRepo
}

func seedPedido(repo *mocks.MemPedidoRepo, status domain.PedidoStatus) *domain.Pedido {
	pedido := &domain.Pedido{
		ID:        "ped-1",
		Protocolo: "PED-TESTE123",
		Nome:      "Maria",
		Email:     "maria@example.com",
		Status:    status,
	}
	_ = repo.CreatePedido(context.Background(), pedido)
	return pedido
}

func TestCreateInstallments(t *testing.T) {
	t.Run("creates the schedule once", func(t *testing.T) {
		uc, pedidoRepo, _, activityRepo := newTestInstallmentUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoPagamento)

		input := &installmentdto.CreateInstallmentsInput{
			PedidoID:         "ped-1",
			TotalAmount:      10_000,
			PaymentMode:      domain.PaymentInstallments,
			InstallmentCount: 3,
		}
		installments, err := uc.CreateInstallments(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(installments) != 3 {
			t.Fatalf("got %d installments", len(installments))
		}
		if installments[0].Amount != 3_334 {
			t.Fatalf("first amount = %d, want 3334", installments[0].Amount)
		}
		for i, inst := range installments {
			if inst.Status != domain.InstallmentPending {
				t.Errorf("installment %d status = %s", i, inst.Status)
			}
			if inst.InstallmentNumber != int32(i+1) {
				t.Errorf("installment %d numbered %d", i, inst.InstallmentNumber)
			}
		}

		actions := activityRepo.Actions("ped-1")
		if len(actions) != 1 || actions[0] != domain.ActionInstallmentsCreated {
			t.Fatalf("logged actions = %v", actions)
		}

		if _, err := uc.CreateInstallments(context.Background(), input); !errors.Is(err, domain.ErrAlreadyExists) {
			t.Fatalf("second batch: expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("missing pedido", func(t *testing.T) {
		uc, _, _, _ := newTestInstallmentUsecase()
		_, err := uc.CreateInstallments(context.Background(), &installmentdto.CreateInstallmentsInput{
			PedidoID:    "nope",
			TotalAmount: 100,
			PaymentMode: domain.PaymentFull,
		})
		if !errors.Is(err, domain.ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}

func TestConfirmInstallment(t *testing.T) {
	t.Run("last installment advances awaiting payment", func(t *testing.T) {
		uc, pedidoRepo, _, activityRepo := newTestInstallmentUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoPagamento)

		installments, err := uc.CreateInstallments(context.Background(), &installmentdto.CreateInstallmentsInput{
			PedidoID:    "ped-1",
			TotalAmount: 10_000,
			PaymentMode: domain.PaymentSplit5050,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err = uc.ConfirmInstallment(context.Background(), &installmentdto.ConfirmInstallmentInput{
			InstallmentID: installments[0].ID,
			PaymentMethod: "pix",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pedido, _ := pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
		if pedido.Status != domain.StatusAguardandoPagamento {
			t.Fatalf("first of two payments moved status to %s", pedido.Status)
		}

		err = uc.ConfirmInstallment(context.Background(), &installmentdto.ConfirmInstallmentInput{
			InstallmentID: installments[1].ID,
			PaymentMethod: "pix",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pedido, _ = pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
		if pedido.Status != domain.StatusPagamentoConfirmado {
			t.Fatalf("status = %s, want pagamento_confirmado", pedido.Status)
		}
		if pedido.DataPagamento == nil {
			t.Fatal("data_pagamento not stamped")
		}

		var confirmations int
		for _, action := range activityRepo.Actions("ped-1") {
			if action == domain.ActionPaymentConfirmed {
				confirmations++
			}
		}
		if confirmations != 1 {
			t.Fatalf("payment_confirmed logged %d times", confirmations)
		}
	})

	t.Run("last installment finalizes the final payment wait", func(t *testing.T) {
		uc, pedidoRepo, installmentRepo, _ := newTestInstallmentUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoPagamentoFinal)

		now := time.Now()
		_ = installmentRepo.CreateInstallments(context.Background(), []*domain.Installment{
			{ID: "inst-1", PedidoID: "ped-1", InstallmentNumber: 1, Amount: 5_000, Status: domain.InstallmentPaid, PaidAt: &now},
			{ID: "inst-2", PedidoID: "ped-1", InstallmentNumber: 2, Amount: 5_000, Status: domain.InstallmentPending},
		})

		err := uc.ConfirmInstallment(context.Background(), &installmentdto.ConfirmInstallmentInput{
			InstallmentID: "inst-2",
			PaymentMethod: "transferencia",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pedido, _ := pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
		if pedido.Status != domain.StatusFinalizado {
			t.Fatalf("status = %s, want finalizado", pedido.Status)
		}
		if pedido.DataPagamentoFinal == nil {
			t.Fatal("data_pagamento_final not stamped")
		}
	})

	t.Run("paid installment cannot be confirmed again", func(t *testing.T) {
		uc, pedidoRepo, installmentRepo, _ := newTestInstallmentUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoPagamento)
		now := time.Now()
		_ = installmentRepo.CreateInstallments(context.Background(), []*domain.Installment{
			{ID: "inst-1", PedidoID: "ped-1", InstallmentNumber: 1, Amount: 5_000, Status: domain.InstallmentPaid, PaidAt: &now},
		})

		err := uc.ConfirmInstallment(context.Background(), &installmentdto.ConfirmInstallmentInput{InstallmentID: "inst-1"})
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestReportInstallmentPaid(t *testing.T) {
	uc, pedidoRepo, installmentRepo, activityRepo := newTestInstallmentUsecase()
	seedPedido(pedidoRepo, domain.StatusAguardandoPagamento)
	_ = installmentRepo.CreateInstallments(context.Background(), []*domain.Installment{
		{ID: "inst-1", PedidoID: "ped-1", InstallmentNumber: 1, Amount: 5_000, Status: domain.InstallmentPending},
	})

	if err := uc.ReportInstallmentPaid(context.Background(), "inst-1", "https://files/comprovante.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inst, _ := installmentRepo.GetInstallmentByID(context.Background(), "inst-1")
	if inst.Status != domain.InstallmentAwaitingConfirmation {
		t.Fatalf("status = %s, want awaiting_confirmation", inst.Status)
	}
	if inst.ComprovanteURL != "https://files/comprovante.pdf" {
		t.Fatalf("comprovante not stored: %q", inst.ComprovanteURL)
	}

	// the client report alone never advances the pedido
	pedido, _ := pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
	if pedido.Status != domain.StatusAguardandoPagamento {
		t.Fatalf("status moved to %s", pedido.Status)
	}
	if actions := activityRepo.Actions("ped-1"); len(actions) != 0 {
		t.Fatalf("unexpected log entries: %v", actions)
	}
}
