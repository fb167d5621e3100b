package revision

import (
	"context"
	"errors"
	"testing"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/mocks"
	revisiondto "github.com/atelie-design/pedido-service/internal/usecase/dto/revision"
)

func newTestRevisionUsecase() (*DefaultRevisionUsecase, *mocks.MemPedidoRepo, *mocks.MemRevisionRepo, *mocks.MemActivityRepo) {
	pedidoRepo := mocks.NewMemPedidoRepo()
	revisionRepo := mocks.NewMemRevisionRepo()
	activityRepo := mocks.NewMemActivityRepo()
	uc := NewDefaultRevisionUsecase(revisionRepo, pedidoRepo, activityRepo, mocks.NopTxManager{}, nil)
	return uc, pedidoRepo, revisionRepo, activityRepo
}

func seedPedido(repo *mocks.MemPedidoRepo, status domain.PedidoStatus, maxRevisions int32) {
	_ = repo.CreatePedido(context.Background(), &domain.Pedido{
		ID:           "ped-1",
		Protocolo:    "PED-REV12345",
		Nome:         "Joana",
		Email:        "joana@example.com",
		Status:       status,
		MaxRevisions: maxRevisions,
	})
}

func TestCreateRevision(t *testing.T) {
	t.Run("sequential requests number and flag correctly", func(t *testing.T) {
		uc, pedidoRepo, _, activityRepo := newTestRevisionUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoAprovacaoCliente, 2)

		wantExtra := []bool{false, false, true}
		for i, extra := range wantExtra {
			rev, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
				PedidoID:    "ped-1",
				Description: "ajustar logotipo",
			})
			if err != nil {
				t.Fatalf("revision %d: %v", i+1, err)
			}
			if rev.RevisionNumber != int32(i+1) {
				t.Fatalf("revision numbered %d, want %d", rev.RevisionNumber, i+1)
			}
			if rev.IsExtra != extra {
				t.Fatalf("revision %d extra = %v, want %v", i+1, rev.IsExtra, extra)
			}
			if rev.RequestedBy != domain.RevisionByClient {
				t.Fatalf("default requester = %s", rev.RequestedBy)
			}

			pedido, _ := pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
			if pedido.Status != domain.StatusEmAjustes {
				t.Fatalf("revision %d left status %s", i+1, pedido.Status)
			}
			if pedido.RevisionCount != int32(i+1) {
				t.Fatalf("counter = %d after revision %d", pedido.RevisionCount, i+1)
			}
		}

		actions := activityRepo.Actions("ped-1")
		want := []domain.ActivityAction{
			domain.ActionRevisionRequested,
			domain.ActionRevisionRequested,
			domain.ActionRevisionExtraRequested,
		}
		if len(actions) != len(want) {
			t.Fatalf("logged %v", actions)
		}
		for i := range want {
			if actions[i] != want[i] {
				t.Fatalf("logged %v, want %v", actions, want)
			}
		}
	})

	t.Run("raising the quota later never rewrites old flags", func(t *testing.T) {
		uc, pedidoRepo, revisionRepo, _ := newTestRevisionUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoAprovacaoCliente, 1)

		first, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
			PedidoID: "ped-1", Description: "a",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
			PedidoID: "ped-1", Description: "b",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.IsExtra || !second.IsExtra {
			t.Fatalf("flags = [%v %v], want [false true]", first.IsExtra, second.IsExtra)
		}

		// quota raised after the fact
		pedidoRepo.Pedidos["ped-1"].MaxRevisions = 10

		stored, _ := revisionRepo.GetRevisionByID(context.Background(), second.ID)
		if !stored.IsExtra {
			t.Fatal("extra flag was rewritten by the quota change")
		}
	})

	t.Run("rejected outside the review window", func(t *testing.T) {
		uc, pedidoRepo, _, _ := newTestRevisionUsecase()
		seedPedido(pedidoRepo, domain.StatusBriefing, 2)

		_, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
			PedidoID: "ped-1", Description: "cedo demais",
		})
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestUpdateRevisionStatus(t *testing.T) {
	t.Run("completion returns the pedido to production", func(t *testing.T) {
		uc, pedidoRepo, revisionRepo, activityRepo := newTestRevisionUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoAprovacaoCliente, 2)

		rev, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
			PedidoID: "ped-1", Description: "trocar cor",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err = uc.UpdateRevisionStatus(context.Background(), &revisiondto.UpdateRevisionStatusInput{
			RevisionID:    rev.ID,
			Status:        domain.RevisionCompleted,
			AdminResponse: "cor ajustada",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := revisionRepo.GetRevisionByID(context.Background(), rev.ID)
		if stored.Status != domain.RevisionCompleted {
			t.Fatalf("status = %s", stored.Status)
		}
		if stored.ResolvedAt == nil {
			t.Fatal("resolved_at not stamped")
		}

		pedido, _ := pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
		if pedido.Status != domain.StatusEmConfeccao {
			t.Fatalf("pedido status = %s, want em_confeccao", pedido.Status)
		}

		actions := activityRepo.Actions("ped-1")
		if actions[len(actions)-1] != domain.ActionRevisionCompleted {
			t.Fatalf("last action = %s", actions[len(actions)-1])
		}
	})

	t.Run("completing a second open revision still resolves it", func(t *testing.T) {
		uc, pedidoRepo, revisionRepo, activityRepo := newTestRevisionUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoAprovacaoCliente, 2)

		first, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
			PedidoID: "ped-1", Description: "ajustar fonte",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
			PedidoID: "ped-1", Description: "ajustar paleta",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := uc.UpdateRevisionStatus(context.Background(), &revisiondto.UpdateRevisionStatusInput{
			RevisionID: first.ID, Status: domain.RevisionCompleted,
		}); err != nil {
			t.Fatalf("first completion: %v", err)
		}
		if err := uc.UpdateRevisionStatus(context.Background(), &revisiondto.UpdateRevisionStatusInput{
			RevisionID: second.ID, Status: domain.RevisionCompleted,
		}); err != nil {
			t.Fatalf("second completion: %v", err)
		}

		stored, _ := revisionRepo.GetRevisionByID(context.Background(), second.ID)
		if stored.Status != domain.RevisionCompleted {
			t.Fatalf("second revision status = %s", stored.Status)
		}
		if stored.ResolvedAt == nil {
			t.Fatal("second revision resolved_at not stamped")
		}

		pedido, _ := pedidoRepo.GetPedidoByID(context.Background(), "ped-1")
		if pedido.Status != domain.StatusEmConfeccao {
			t.Fatalf("pedido status = %s, want em_confeccao", pedido.Status)
		}

		actions := activityRepo.Actions("ped-1")
		if actions[len(actions)-1] != domain.ActionRevisionCompleted {
			t.Fatalf("last action = %s", actions[len(actions)-1])
		}
	})

	t.Run("resolved revisions are immutable", func(t *testing.T) {
		uc, pedidoRepo, _, _ := newTestRevisionUsecase()
		seedPedido(pedidoRepo, domain.StatusAguardandoAprovacaoCliente, 2)

		rev, err := uc.CreateRevision(context.Background(), &revisiondto.CreateRevisionInput{
			PedidoID: "ped-1", Description: "x",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := uc.UpdateRevisionStatus(context.Background(), &revisiondto.UpdateRevisionStatusInput{
			RevisionID: rev.ID, Status: domain.RevisionCompleted,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err = uc.UpdateRevisionStatus(context.Background(), &revisiondto.UpdateRevisionStatusInput{
			RevisionID: rev.ID, Status: domain.RevisionInProgress,
		})
		if !errors.Is(err, domain.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}
