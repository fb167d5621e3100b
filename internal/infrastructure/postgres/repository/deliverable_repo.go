package repository

import (
	"context"
	"errors"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/mappers"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDeliverableRepository struct {
	DB *gorm.DB
}

func NewDefaultDeliverableRepository(db *gorm.DB) *DefaultDeliverableRepository {
	return &DefaultDeliverableRepository{DB: db}
}

func (r *DefaultDeliverableRepository) conn(ctx context.Context) *gorm.DB {
	return postgres.Conn(ctx, r.DB)
}

func (r *DefaultDeliverableRepository) CreateDeliverable(ctx context.Context, deliverable *domain.Deliverable) error {
	deliverableModel := mappers.ToGORMDeliverable(deliverable)
	return r.conn(ctx).Create(deliverableModel).Error
}

func (r *DefaultDeliverableRepository) GetDeliverableByID(ctx context.Context, deliverableID string) (*domain.Deliverable, error) {
	var deliverable models.DeliverableModel
	if err := r.conn(ctx).First(&deliverable, "id = ?", deliverableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDeliverableNotFound
		}
		return nil, err
	}
	return mappers.ToDomainDeliverable(&deliverable), nil
}

func (r *DefaultDeliverableRepository) ListDeliverablesByPedidoID(ctx context.Context, pedidoID string) ([]*domain.Deliverable, error) {
	var deliverableModels []models.DeliverableModel
	err := r.conn(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("delivered_at DESC").
		Find(&deliverableModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainDeliverables(deliverableModels), nil
}

func (r *DefaultDeliverableRepository) ListActiveDeliverables(ctx context.Context, pedidoID string, now time.Time) ([]*domain.Deliverable, error) {
	var deliverableModels []models.DeliverableModel
	err := r.conn(ctx).
		Where("pedido_id = ? AND expires_at > ?", pedidoID, now).
		Order("delivered_at DESC").
		Find(&deliverableModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainDeliverables(deliverableModels), nil
}

func (r *DefaultDeliverableRepository) MarkDownloaded(ctx context.Context, deliverableID string, downloadedAt time.Time) error {
	// First download wins; repeat downloads keep the original stamp.
	res := r.conn(ctx).Model(&models.DeliverableModel{}).
		Where("id = ? AND downloaded_at IS NULL", deliverableID).
		Update("downloaded_at", downloadedAt)
	return res.Error
}

func toDomainDeliverables(deliverableModels []models.DeliverableModel) []*domain.Deliverable {
	deliverables := make([]*domain.Deliverable, len(deliverableModels))
	for i, deliverableModel := range deliverableModels {
		deliverables[i] = mappers.ToDomainDeliverable(&deliverableModel)
	}
	return deliverables
}
