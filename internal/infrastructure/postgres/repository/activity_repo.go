package repository

import (
	"context"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/mappers"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultActivityRepository struct {
	DB *gorm.DB
}

func NewDefaultActivityRepository(db *gorm.DB) *DefaultActivityRepository {
	return &DefaultActivityRepository{DB: db}
}

func (r *DefaultActivityRepository) conn(ctx context.Context) *gorm.DB {
	return postgres.Conn(ctx, r.DB)
}

func (r *DefaultActivityRepository) AppendActivity(ctx context.Context, entry *domain.ActivityEntry) error {
	activityModel := mappers.ToGORMActivity(entry)
	return r.conn(ctx).Create(activityModel).Error
}

func (r *DefaultActivityRepository) ListActivitiesByPedidoID(ctx context.Context, pedidoID string, ascending bool) ([]*domain.ActivityEntry, error) {
	order := "created_at DESC"
	if ascending {
		order = "created_at ASC"
	}

	var activityModels []models.ActivityModel
	err := r.conn(ctx).
		Where("pedido_id = ?", pedidoID).
		Order(order).
		Find(&activityModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainActivities(activityModels), nil
}

func (r *DefaultActivityRepository) ListPublicActivities(ctx context.Context, pedidoID string, actions []domain.ActivityAction) ([]*domain.ActivityEntry, error) {
	var activityModels []models.ActivityModel
	err := r.conn(ctx).
		Where("pedido_id = ? AND action IN (?)", pedidoID, actions).
		Order("created_at ASC").
		Find(&activityModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainActivities(activityModels), nil
}

func toDomainActivities(activityModels []models.ActivityModel) []*domain.ActivityEntry {
	entries := make([]*domain.ActivityEntry, len(activityModels))
	for i, activityModel := range activityModels {
		entries[i] = mappers.ToDomainActivity(&activityModel)
	}
	return entries
}
