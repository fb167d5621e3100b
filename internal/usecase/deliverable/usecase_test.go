package deliverable

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/mocks"
	deliverabledto "github.com/atelie-design/pedido-service/internal/usecase/dto/deliverable"
)

func newTestDeliverableUsecase() (*DefaultDeliverableUsecase, *mocks.MemPedidoRepo, *mocks.MemDeliverableRepo, *mocks.MemActivityRepo) {
	pedidoRepo := mocks.NewMemPedidoRepo()
	deliverableRepo := mocks.NewMemDeliverableRepo()
	activityRepo := mocks.NewMemActivityRepo()
	uc := NewDefaultDeliverableUsecase(deliverableRepo, pedidoRepo, activityRepo, mocks.NopTxManager{})
	return uc, pedidoRepo, deliverableRepo, activityRepo
}

func TestAddDeliverable(t *testing.T) {
	t.Run("defaults the expiry to 30 days", func(t *testing.T) {
		uc, pedidoRepo, _, activityRepo := newTestDeliverableUsecase()
		_ = pedidoRepo.CreatePedido(context.Background(), &domain.Pedido{
			ID: "ped-1", Protocolo: "PED-DEL12345", Status: domain.StatusEmConfeccao,
		})

		created, err := uc.AddDeliverable(context.Background(), &deliverabledto.AddDeliverableInput{
			PedidoID: "ped-1",
			FileURL:  "https://files/arte.zip",
			FileName: "arte.zip",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ExpiresAt.Sub(created.DeliveredAt) != domain.DefaultDeliverableTTL {
			t.Fatalf("ttl = %v", created.ExpiresAt.Sub(created.DeliveredAt))
		}
		if actions := activityRepo.Actions("ped-1"); len(actions) != 1 || actions[0] != domain.ActionPartialDeliverableAdded {
			t.Fatalf("logged %v", actions)
		}
	})

	t.Run("final file with a custom expiry", func(t *testing.T) {
		uc, pedidoRepo, _, activityRepo := newTestDeliverableUsecase()
		_ = pedidoRepo.CreatePedido(context.Background(), &domain.Pedido{
			ID: "ped-1", Protocolo: "PED-DEL12345", Status: domain.StatusEmConfeccao,
		})

		created, err := uc.AddDeliverable(context.Background(), &deliverabledto.AddDeliverableInput{
			PedidoID:    "ped-1",
			FileURL:     "https://files/final.zip",
			FileName:    "final.zip",
			IsFinal:     true,
			ExpiresDays: 7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ExpiresAt.Sub(created.DeliveredAt) != 7*24*time.Hour {
			t.Fatalf("ttl = %v", created.ExpiresAt.Sub(created.DeliveredAt))
		}
		if actions := activityRepo.Actions("ped-1"); actions[0] != domain.ActionFinalDeliverableAdded {
			t.Fatalf("logged %v", actions)
		}
	})

	t.Run("unknown pedido", func(t *testing.T) {
		uc, _, _, _ := newTestDeliverableUsecase()
		_, err := uc.AddDeliverable(context.Background(), &deliverabledto.AddDeliverableInput{
			PedidoID: "nope", FileURL: "u", FileName: "n",
		})
		if !errors.Is(err, domain.ErrPedidoNotFound) {
			t.Fatalf("expected ErrPedidoNotFound, got %v", err)
		}
	})
}

func TestMarkDownloaded(t *testing.T) {
	uc, pedidoRepo, deliverableRepo, activityRepo := newTestDeliverableUsecase()
	_ = pedidoRepo.CreatePedido(context.Background(), &domain.Pedido{
		ID: "ped-1", Protocolo: "PED-DEL12345", Status: domain.StatusFinalizado,
	})
	now := time.Now()
	_ = deliverableRepo.CreateDeliverable(context.Background(), &domain.Deliverable{
		ID: "del-1", PedidoID: "ped-1", FileName: "arte.zip",
		DeliveredAt: now, ExpiresAt: now.Add(domain.DefaultDeliverableTTL),
	})

	if err := uc.MarkDownloaded(context.Background(), "del-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := deliverableRepo.GetDeliverableByID(context.Background(), "del-1")
	if stored.DownloadedAt == nil {
		t.Fatal("downloaded_at not stamped")
	}
	first := *stored.DownloadedAt

	// a second download keeps the first timestamp
	if err := uc.MarkDownloaded(context.Background(), "del-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ = deliverableRepo.GetDeliverableByID(context.Background(), "del-1")
	if !stored.DownloadedAt.Equal(first) {
		t.Fatalf("downloaded_at moved from %v to %v", first, stored.DownloadedAt)
	}

	var downloads int
	for _, action := range activityRepo.Actions("ped-1") {
		if action == domain.ActionDeliverableDownloaded {
			downloads++
		}
	}
	if downloads != 2 {
		t.Fatalf("deliverable_downloaded logged %d times", downloads)
	}
}
