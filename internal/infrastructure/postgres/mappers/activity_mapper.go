package mappers

import (
	"encoding/json"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
)

func ToDomainActivity(model *models.ActivityModel) *domain.ActivityEntry {
	var details map[string]any
	if model.Details != "" {
		_ = json.Unmarshal([]byte(model.Details), &details)
	}
	return &domain.ActivityEntry{
		ID:        model.ID,
		PedidoID:  model.PedidoID,
		Action:    model.Action,
		ActorType: model.ActorType,
		ActorID:   model.ActorID,
		Details:   details,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMActivity(entry *domain.ActivityEntry) *models.ActivityModel {
	details, _ := json.Marshal(entry.Details)
	return &models.ActivityModel{
		ID:        entry.ID,
		PedidoID:  entry.PedidoID,
		Action:    entry.Action,
		ActorType: entry.ActorType,
		ActorID:   entry.ActorID,
		Details:   string(details),
		CreatedAt: entry.CreatedAt,
	}
}
