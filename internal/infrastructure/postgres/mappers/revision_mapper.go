package mappers

import (
	"encoding/json"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
)

func ToDomainRevision(model *models.RevisionModel) *domain.Revision {
	var files []domain.RevisionFile
	if model.Files != "" {
		_ = json.Unmarshal([]byte(model.Files), &files)
	}
	return &domain.Revision{
		ID:             model.ID,
		PedidoID:       model.PedidoID,
		RevisionNumber: model.RevisionNumber,
		RequestedBy:    model.RequestedBy,
		Description:    model.Description,
		Files:          files,
		Status:         model.Status,
		AdminResponse:  model.AdminResponse,
		IsExtra:        model.IsExtra,
		ExtraCost:      model.ExtraCost,
		CreatedAt:      model.CreatedAt,
		ResolvedAt:     model.ResolvedAt,
	}
}

func ToGORMRevision(revision *domain.Revision) *models.RevisionModel {
	files, _ := json.Marshal(revision.Files)
	return &models.RevisionModel{
		ID:             revision.ID,
		PedidoID:       revision.PedidoID,
		RevisionNumber: revision.RevisionNumber,
		RequestedBy:    revision.RequestedBy,
		Description:    revision.Description,
		Files:          string(files),
		Status:         revision.Status,
		AdminResponse:  revision.AdminResponse,
		IsExtra:        revision.IsExtra,
		ExtraCost:      revision.ExtraCost,
		CreatedAt:      revision.CreatedAt,
		ResolvedAt:     revision.ResolvedAt,
	}
}
