package pedido

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	pedidodto "github.com/atelie-design/pedido-service/internal/usecase/dto/pedido"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

// protocoloAlphabet drops the ambiguous characters (0/O, 1/I/L) clients
// mistype when reading the code back over the phone.
const protocoloAlphabet = "0123456789ABCDEFGHJKMNPQRSTUVWXYZ"

const defaultMaxRevisions = 2

func generateProtocolo() (string, error) {
	gen, err := nanoid.CustomASCII(protocoloAlphabet, 8)
	if err != nil {
		return "", err
	}
	return "PED-" + gen(), nil
}

// CreatePedido registers a briefing submission. The pedido starts in
// briefing with a fresh public protocolo; a collision on the protocolo
// unique index is retried with a new code.
func (uc *DefaultPedidoUsecase) CreatePedido(ctx context.Context, input *pedidodto.CreatePedidoInput) (*domain.Pedido, error) {
	if input.Nome == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: nome and email are required", domain.ErrValidation)
	}

	orderType := input.OrderType
	if orderType == "" {
		orderType = domain.OrderTypeCustom
	}

	var created *domain.Pedido
	for attempt := 0; attempt < 3; attempt++ {
		protocolo, err := generateProtocolo()
		if err != nil {
			return nil, err
		}

		now := time.Now()
		pedido := &domain.Pedido{
			ID:              uuid.NewString(),
			Protocolo:       protocolo,
			OrderType:       orderType,
			Nome:            input.Nome,
			Email:           input.Email,
			Telefone:        input.Telefone,
			Empresa:         input.Empresa,
			Descricao:       input.Descricao,
			PrazoSolicitado: input.PrazoSolicitado,
			Referencias:     input.Referencias,
			ArquivoURLs:     input.ArquivoURLs,
			Servico:         input.Servico,
			MaxRevisions:    defaultMaxRevisions,
			Status:          domain.StatusBriefing,
			DataBriefing:    now,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		err = uc.TxManager.Do(ctx, func(ctx context.Context) error {
			if err := uc.PedidoRepo.CreatePedido(ctx, pedido); err != nil {
				return err
			}
			return uc.ActivityRepo.AppendActivity(ctx, &domain.ActivityEntry{
				ID:        uuid.NewString(),
				PedidoID:  pedido.ID,
				Action:    domain.ActionOrderCreated,
				ActorType: domain.ActorClient,
				Details: map[string]any{
					"protocolo": pedido.Protocolo,
					"servico":   pedido.Servico,
				},
				CreatedAt: now,
			})
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		created = pedido
		break
	}
	if created == nil {
		return nil, fmt.Errorf("%w: protocolo generation exhausted retries", domain.ErrAlreadyExists)
	}

	if uc.Metrics != nil {
		uc.Metrics.PedidosCreatedTotal.Inc()
	}
	return created, nil
}
