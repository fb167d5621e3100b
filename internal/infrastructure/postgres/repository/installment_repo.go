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

type DefaultInstallmentRepository struct {
	DB *gorm.DB
}

func NewDefaultInstallmentRepository(db *gorm.DB) *DefaultInstallmentRepository {
	return &DefaultInstallmentRepository{DB: db}
}

func (r *DefaultInstallmentRepository) conn(ctx context.Context) *gorm.DB {
	return postgres.Conn(ctx, r.DB)
}

func (r *DefaultInstallmentRepository) CreateInstallments(ctx context.Context, installments []*domain.Installment) error {
	installmentModels := make([]*models.InstallmentModel, len(installments))
	for i, installment := range installments {
		installmentModels[i] = mappers.ToGORMInstallment(installment)
	}
	if err := r.conn(ctx).Create(installmentModels).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: installments for pedido %s", domain.ErrAlreadyExists, installments[0].PedidoID)
		}
		return err
	}
	return nil
}

func (r *DefaultInstallmentRepository) GetInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	var installment models.InstallmentModel
	if err := r.conn(ctx).First(&installment, "id = ?", installmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInstallmentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainInstallment(&installment), nil
}

func (r *DefaultInstallmentRepository) ListInstallmentsByPedidoID(ctx context.Context, pedidoID string) ([]*domain.Installment, error) {
	var installmentModels []models.InstallmentModel
	err := r.conn(ctx).
		Where("pedido_id = ?", pedidoID).
		Order("installment_number ASC").
		Find(&installmentModels).Error
	if err != nil {
		return nil, err
	}

	installments := make([]*domain.Installment, len(installmentModels))
	for i, installmentModel := range installmentModels {
		installments[i] = mappers.ToDomainInstallment(&installmentModel)
	}
	return installments, nil
}

func (r *DefaultInstallmentRepository) CountInstallmentsByPedidoID(ctx context.Context, pedidoID string) (int64, error) {
	var total int64
	err := r.conn(ctx).Model(&models.InstallmentModel{}).
		Where("pedido_id = ?", pedidoID).
		Count(&total).Error
	return total, err
}

func (r *DefaultInstallmentRepository) CountUnpaidByPedidoID(ctx context.Context, pedidoID string) (int64, error) {
	var total int64
	err := r.conn(ctx).Model(&models.InstallmentModel{}).
		Where("pedido_id = ? AND status <> ?", pedidoID, domain.InstallmentPaid).
		Count(&total).Error
	return total, err
}

func (r *DefaultInstallmentRepository) MarkInstallmentPaid(ctx context.Context, installmentID string, from []domain.InstallmentStatus, paymentMethod, comprovanteURL string, paidAt time.Time) error {
	updates := map[string]any{
		"status":     domain.InstallmentPaid,
		"paid_at":    paidAt,
		"updated_at": time.Now(),
	}
	if paymentMethod != "" {
		updates["payment_method"] = paymentMethod
	}
	if comprovanteURL != "" {
		updates["comprovante_url"] = comprovanteURL
	}

	res := r.conn(ctx).Model(&models.InstallmentModel{}).
		Where("id = ? AND status IN (?)", installmentID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: installment %s is not payable", domain.ErrInvalidTransition, installmentID)
	}
	return nil
}

func (r *DefaultInstallmentRepository) MarkAwaitingConfirmation(ctx context.Context, installmentID string, comprovanteURL string) error {
	updates := map[string]any{
		"status":     domain.InstallmentAwaitingConfirmation,
		"updated_at": time.Now(),
	}
	if comprovanteURL != "" {
		updates["comprovante_url"] = comprovanteURL
	}

	res := r.conn(ctx).Model(&models.InstallmentModel{}).
		Where("id = ? AND status = ?", installmentID, domain.InstallmentPending).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: installment %s is not pending", domain.ErrInvalidTransition, installmentID)
	}
	return nil
}
