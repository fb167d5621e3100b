package mappers

import (
	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
)

func ToDomainDeliverable(model *models.DeliverableModel) *domain.Deliverable {
	return &domain.Deliverable{
		ID:           model.ID,
		PedidoID:     model.PedidoID,
		FileURL:      model.FileURL,
		FileName:     model.FileName,
		FileType:     model.FileType,
		FileSize:     model.FileSize,
		IsFinal:      model.IsFinal,
		DeliveredAt:  model.DeliveredAt,
		DownloadedAt: model.DownloadedAt,
		ExpiresAt:    model.ExpiresAt,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMDeliverable(deliverable *domain.Deliverable) *models.DeliverableModel {
	return &models.DeliverableModel{
		ID:           deliverable.ID,
		PedidoID:     deliverable.PedidoID,
		FileURL:      deliverable.FileURL,
		FileName:     deliverable.FileName,
		FileType:     deliverable.FileType,
		FileSize:     deliverable.FileSize,
		IsFinal:      deliverable.IsFinal,
		DeliveredAt:  deliverable.DeliveredAt,
		DownloadedAt: deliverable.DownloadedAt,
		ExpiresAt:    deliverable.ExpiresAt,
		CreatedAt:    deliverable.CreatedAt,
	}
}
