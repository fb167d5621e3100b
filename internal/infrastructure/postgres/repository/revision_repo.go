package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/mappers"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRevisionRepository struct {
	DB *gorm.DB
}

func NewDefaultRevisionRepository(db *gorm.DB) *DefaultRevisionRepository {
	return &DefaultRevisionRepository{DB: db}
}

func (r *DefaultRevisionRepository) conn(ctx context.Context) *gorm.DB {
	return postgres.Conn(ctx, r.DB)
}

func (r *DefaultRevisionRepository) CreateRevision(ctx context.Context, revision *domain.Revision) error {
	revisionModel := mappers.ToGORMRevision(revision)
	if err := r.conn(ctx).Create(revisionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: revision %d for pedido %s", domain.ErrAlreadyExists, revision.RevisionNumber, revision.PedidoID)
		}
		return err
	}
	return nil
}

func (r *DefaultRevisionRepository) GetRevisionByID(ctx context.Context, revisionID string) (*domain.Revision, error) {
	var revision models.RevisionModel
	if err := r.conn(ctx).First(&revision, "id = ?", revisionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRevisionNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRevision(&revision), nil
}

func (r *DefaultRevisionRepository) ListRevisionsByPedidoID(ctx context.Context, pedidoID string) ([]*domain.Revision, error) {
	var revisionModels []models.RevisionModel
	err := r.conn(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("revision_number ASC").
		Find(&revisionModels).Error
	if err != nil {
		return nil, err
	}

	revisions := make([]*domain.Revision, len(revisionModels))
	for i, revisionModel := range revisionModels {
		revisions[i] = mappers.ToDomainRevision(&revisionModel)
	}
	return revisions, nil
}

func (r *DefaultRevisionRepository) UpdateRevisionStatus(ctx context.Context, revisionID string, from, to domain.RevisionStatus, adminResponse string, resolvedAt *time.Time) error {
	updates := map[string]any{"status": to}
	if adminResponse != "" {
		updates["admin_response"] = adminResponse
	}
	if resolvedAt != nil {
		updates["resolved_at"] = *resolvedAt
	}

	res := r.conn(ctx).Model(&models.RevisionModel{}).
		Where("id = ? AND status = ?", revisionID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: revision %s is no longer %s", domain.ErrInvalidTransition, revisionID, from)
	}
	return nil
}
