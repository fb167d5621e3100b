package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/mappers"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPedidoRepository struct {
	DB *gorm.DB
}

func NewDefaultPedidoRepository(db *gorm.DB) *DefaultPedidoRepository {
	return &DefaultPedidoRepository{DB: db}
}

func (r *DefaultPedidoRepository) conn(ctx context.Context) *gorm.DB {
	return postgres.Conn(ctx, r.DB)
}

func (r *DefaultPedidoRepository) CreatePedido(ctx context.Context, pedido *domain.Pedido) error {
	pedidoModel := mappers.ToGORMPedido(pedido)
	if err := r.conn(ctx).Create(pedidoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: protocolo %s", domain.ErrAlreadyExists, pedido.Protocolo)
		}
		return err
	}
	return nil
}

func (r *DefaultPedidoRepository) GetPedidoByID(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	var pedido models.PedidoModel
	if err := r.conn(ctx).First(&pedido, "id = ?", pedidoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPedidoNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPedido(&pedido), nil
}

func (r *DefaultPedidoRepository) GetPedidoByProtocolo(ctx context.Context, protocolo string) (*domain.Pedido, error) {
	var pedido models.PedidoModel
	if err := r.conn(ctx).First(&pedido, "protocolo = ?", protocolo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPedidoNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPedido(&pedido), nil
}

func (r *DefaultPedidoRepository) GetPedidoForUpdate(ctx context.Context, pedidoID string) (*domain.Pedido, error) {
	var pedido models.PedidoModel
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&pedido, "id = ?", pedidoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPedidoNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPedido(&pedido), nil
}

func (r *DefaultPedidoRepository) ListPedidos(ctx context.Context, filters domain.PedidoFilters, page, limit int64) ([]*domain.Pedido, int64, error) {
	var pedidoModels []models.PedidoModel
	var total int64

	baseQuery := r.conn(ctx).Model(&models.PedidoModel{})

	if filters.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filters.Status)
	}
	if !filters.IncludeArchived {
		baseQuery = baseQuery.Where("archived_at IS NULL")
	}
	if filters.Search != "" {
		pattern := "%" + strings.TrimSpace(filters.Search) + "%"
		baseQuery = baseQuery.Where(
			"protocolo ILIKE ? OR nome ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pedidos: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&pedidoModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find pedidos: %w", err)
	}

	pedidos := make([]*domain.Pedido, len(pedidoModels))
	for i, pedidoModel := range pedidoModels {
		pedidos[i] = mappers.ToDomainPedido(&pedidoModel)
	}
	return pedidos, total, nil
}

// UpdatePedidoStatus compares against the expected current status in the
// WHERE clause, so a racing transition loses cleanly instead of overwriting.
func (r *DefaultPedidoRepository) UpdatePedidoStatus(ctx context.Context, pedidoID string, from, to domain.PedidoStatus, stamps domain.StatusStamps) error {
	updates := map[string]any{
		"status":     to,
		"updated_at": time.Now(),
	}
	if stamps.DataOrcamento != nil {
		updates["data_orcamento"] = *stamps.DataOrcamento
	}
	if stamps.DataAprovacao != nil {
		updates["data_aprovacao"] = *stamps.DataAprovacao
	}
	if stamps.DataPagamento != nil {
		updates["data_pagamento"] = *stamps.DataPagamento
	}
	if stamps.DataPagamentoFinal != nil {
		updates["data_pagamento_final"] = *stamps.DataPagamentoFinal
	}
	if stamps.DataInicioConfeccao != nil {
		updates["data_inicio_confeccao"] = *stamps.DataInicioConfeccao
	}
	if stamps.DataEntrega != nil {
		updates["data_entrega"] = *stamps.DataEntrega
	}
	if stamps.PrazoFinal != nil {
		updates["prazo_final"] = *stamps.PrazoFinal
	}
	if stamps.MotivoRecusa != "" {
		updates["motivo_recusa"] = stamps.MotivoRecusa
	}

	res := r.conn(ctx).Model(&models.PedidoModel{}).
		Where("id = ? AND status = ?", pedidoID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: pedido %s is no longer %s", domain.ErrInvalidTransition, pedidoID, from)
	}
	return nil
}

func (r *DefaultPedidoRepository) SetOrcamento(ctx context.Context, pedidoID string, orcamento domain.OrcamentoFields) error {
	updates := map[string]any{
		"valor_orcado":                orcamento.ValorOrcado,
		"prazo_orcado":                orcamento.PrazoOrcado,
		"observacoes_admin":           orcamento.ObservacoesAdmin,
		"discount_amount":             orcamento.DiscountAmount,
		"discount_reason":             orcamento.DiscountReason,
		"requer_pagamento_antecipado": orcamento.RequerPagamentoAntecipado,
		"payment_mode":                orcamento.PaymentMode,
		"installment_count":           orcamento.InstallmentCount,
		"updated_at":                  time.Now(),
	}
	if len(orcamento.CustomSplits) > 0 {
		splits, _ := json.Marshal(orcamento.CustomSplits)
		updates["custom_splits"] = string(splits)
	}
	if orcamento.ValorEntrada != nil {
		updates["valor_entrada"] = *orcamento.ValorEntrada
	}
	if orcamento.MaxRevisions != nil {
		updates["max_revisions"] = *orcamento.MaxRevisions
	}

	res := r.conn(ctx).Model(&models.PedidoModel{}).
		Where("id = ?", pedidoID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPedidoNotFound
	}
	return nil
}

func (r *DefaultPedidoRepository) RegisterRevision(ctx context.Context, pedidoID string, count int32) error {
	res := r.conn(ctx).Model(&models.PedidoModel{}).
		Where("id = ?", pedidoID).
		Updates(map[string]any{
			"revision_count": count,
			"status":         domain.StatusEmAjustes,
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPedidoNotFound
	}
	return nil
}

func (r *DefaultPedidoRepository) SetNPS(ctx context.Context, pedidoID string, score int32, comment string) error {
	res := r.conn(ctx).Model(&models.PedidoModel{}).
		Where("id = ?", pedidoID).
		Updates(map[string]any{
			"nps_score":   score,
			"nps_comment": comment,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPedidoNotFound
	}
	return nil
}

func (r *DefaultPedidoRepository) ArchivePedido(ctx context.Context, pedidoID string, archivedAt time.Time) error {
	res := r.conn(ctx).Model(&models.PedidoModel{}).
		Where("id = ? AND archived_at IS NULL", pedidoID).
		Updates(map[string]any{
			"archived_at": archivedAt,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPedidoNotFound
	}
	return nil
}
