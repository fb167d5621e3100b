package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/mocks"
)

func newTestTrackingUsecase() (*DefaultTrackingUsecase, *mocks.MemPedidoRepo, *mocks.MemActivityRepo, *mocks.MemDeliverableRepo) {
	pedidoRepo := mocks.NewMemPedidoRepo()
	activityRepo := mocks.NewMemActivityRepo()
	deliverableRepo := mocks.NewMemDeliverableRepo()
	uc := NewDefaultTrackingUsecase(pedidoRepo, activityRepo, deliverableRepo, nil)
	return uc, pedidoRepo, activityRepo, deliverableRepo
}

func seedPedido(repo *mocks.MemPedidoRepo, status domain.PedidoStatus) {
	_ = repo.CreatePedido(context.Background(), &domain.Pedido{
		ID:           "ped-1",
		Protocolo:    "PED-PUB12345",
		Nome:         "Luisa",
		Email:        "luisa@example.com",
		Servico:      "logotipo",
		Status:       status,
		DataBriefing: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	})
}

func TestGetTracking(t *testing.T) {
	t.Run("projects status, progress and percentage", func(t *testing.T) {
		uc, pedidoRepo, _, _ := newTestTrackingUsecase()
		seedPedido(pedidoRepo, domain.StatusEmConfeccao)

		view, err := uc.GetTracking(context.Background(), "PED-PUB12345")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Pedido.Protocolo != "PED-PUB12345" || view.Pedido.Nome != "Luisa" {
			t.Fatalf("pedido projection = %+v", view.Pedido)
		}
		if view.Progress.Label != "Em Produção" || view.Progress.Step != 4 {
			t.Fatalf("progress = %+v", view.Progress)
		}
		if view.Progress.Percentage != 67 {
			t.Fatalf("percentage = %d, want 67", view.Progress.Percentage)
		}
	})

	t.Run("terminal failure shows step zero", func(t *testing.T) {
		uc, pedidoRepo, _, _ := newTestTrackingUsecase()
		seedPedido(pedidoRepo, domain.StatusCancelado)

		view, err := uc.GetTracking(context.Background(), "PED-PUB12345")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Progress.Step != 0 || view.Progress.Percentage != 0 {
			t.Fatalf("progress = %+v", view.Progress)
		}
		if view.Progress.Color != "#EF4444" {
			t.Fatalf("color = %s", view.Progress.Color)
		}
	})

	t.Run("timeline keeps only allow-listed actions", func(t *testing.T) {
		uc, pedidoRepo, activityRepo, _ := newTestTrackingUsecase()
		seedPedido(pedidoRepo, domain.StatusEmConfeccao)

		logged := []domain.ActivityAction{
			domain.ActionOrderCreated,
			domain.ActionQuoteSent,
			domain.ActionInstallmentsCreated,
			domain.ActionInstallmentPaid,
			domain.ActionRevisionExtraRequested,
			domain.ActionDeliverableDownloaded,
			domain.ActionNPSSubmitted,
			domain.ActionOrderArchived,
			domain.ActionProductionStarted,
		}
		for _, action := range logged {
			_ = activityRepo.AppendActivity(context.Background(), &domain.ActivityEntry{
				PedidoID: "ped-1", Action: action, CreatedAt: time.Now(),
			})
		}

		view, err := uc.GetTracking(context.Background(), "PED-PUB12345")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"order_created", "quote_sent", "production_started"}
		if len(view.Timeline) != len(want) {
			t.Fatalf("timeline = %+v", view.Timeline)
		}
		for i := range want {
			if view.Timeline[i].Action != want[i] {
				t.Fatalf("timeline[%d] = %s, want %s", i, view.Timeline[i].Action, want[i])
			}
		}
	})

	t.Run("expired deliverables are hidden", func(t *testing.T) {
		uc, pedidoRepo, _, deliverableRepo := newTestTrackingUsecase()
		seedPedido(pedidoRepo, domain.StatusFinalizado)

		now := time.Now()
		_ = deliverableRepo.CreateDeliverable(context.Background(), &domain.Deliverable{
			ID: "del-1", PedidoID: "ped-1", FileName: "old.zip",
			DeliveredAt: now.AddDate(0, 0, -40), ExpiresAt: now.AddDate(0, 0, -10),
		})
		_ = deliverableRepo.CreateDeliverable(context.Background(), &domain.Deliverable{
			ID: "del-2", PedidoID: "ped-1", FileName: "final.zip", IsFinal: true,
			DeliveredAt: now.AddDate(0, 0, -1), ExpiresAt: now.AddDate(0, 0, 29),
		})

		view, err := uc.GetTracking(context.Background(), "PED-PUB12345")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(view.Deliverables) != 1 || view.Deliverables[0].FileName != "final.zip" {
			t.Fatalf("deliverables = %+v", view.Deliverables)
		}
	})

	t.Run("projection is read only", func(t *testing.T) {
		uc, pedidoRepo, activityRepo, _ := newTestTrackingUsecase()
		seedPedido(pedidoRepo, domain.StatusBriefing)

		if _, err := uc.GetTracking(context.Background(), "PED-PUB12345"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.GetTracking(context.Background(), "PED-PUB12345"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(activityRepo.Entries) != 0 {
			t.Fatalf("tracking wrote %d activity entries", len(activityRepo.Entries))
		}
		pedido, _ := pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
		if pedido.Status != domain.StatusBriefing {
			t.Fatalf("status moved to %s", pedido.Status)
		}
	})

	t.Run("unknown protocolo", func(t *testing.T) {
		uc, _, _, _ := newTestTrackingUsecase()
		if _, err := uc.GetTracking(context.Background(), "PED-MISSING1"); !errors.Is(err, domain.ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}
