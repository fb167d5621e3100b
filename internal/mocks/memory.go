// Package mocks holds in-memory implementations of the domain repositories
// for usecase tests. They honor the same guarded-update contracts as the
// postgres implementations so the tests exercise real transition semantics.
package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

// NopTxManager runs the function directly. The in-memory repositories are
// not transactional; tests asserting rollback behavior stub Do instead.
type NopTxManager struct{}

func (NopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MemPedidoRepo struct {
	mu      sync.Mutex
	Pedidos map[string]*domain.Pedido
}

func NewMemPedidoRepo() *MemPedidoRepo {
	return &MemPedidoRepo{Pedidos: make(map[string]*domain.Pedido)}
}

func (r *MemPedidoRepo) CreatePedido(_ context.Context, pedido *domain.Pedido) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.Pedidos {
		if existing.Protocolo == pedido.Protocolo {
			return domain.ErrAlreadyExists
		}
	}
	clone := *pedido
	r.Pedidos[pedido.ID] = &clone
	return nil
}

func (r *MemPedidoRepo) GetPedidoByID(_ context.Context, id string) (*domain.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pedido, ok := r.Pedidos[id]
	if !ok {
		return nil, domain.ErrPedidoNotFound
	}
	clone := *pedido
	return &clone, nil
}

func (r *MemPedidoRepo) GetPedidoByProtocolo(_ context.Context, protocolo string) (*domain.Pedido, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pedido := range r.Pedidos {
		if pedido.Protocolo == protocolo {
			clone := *pedido
			return &clone, nil
		}
	}
	return nil, domain.ErrPedidoNotFound
}

func (r *MemPedidoRepo) GetPedidoForUpdate(ctx context.Context, id string) (*domain.Pedido, error) {
	return r.GetPedidoByID(ctx, id)
}

func (r *MemPedidoRepo) ListPedidos(_ context.Context, filters domain.PedidoFilters, page, limit int64) ([]*domain.Pedido, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Pedido
	for _, pedido := range r.Pedidos {
		if filters.Status != "" && pedido.Status != filters.Status {
			continue
		}
		if !filters.IncludeArchived && pedido.ArchivedAt != nil {
			continue
		}
		if filters.Search != "" {
			needle := strings.ToLower(filters.Search)
			if !strings.Contains(strings.ToLower(pedido.Protocolo), needle) &&
				!strings.Contains(strings.ToLower(pedido.Nome), needle) &&
				!strings.Contains(strings.ToLower(pedido.Email), needle) {
				continue
			}
		}
		clone := *pedido
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *MemPedidoRepo) UpdatePedidoStatus(_ context.Context, pedidoID string, from, to domain.PedidoStatus, stamps domain.StatusStamps) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pedido, ok := r.Pedidos[pedidoID]
	if !ok {
		return domain.ErrPedidoNotFound
	}
	if pedido.Status != from {
		return fmt.Errorf("%w: stored %s, expected %s", domain.ErrInvalidTransition, pedido.Status, from)
	}
	pedido.Status = to
	if stamps.DataOrcamento != nil {
		pedido.DataOrcamento = stamps.DataOrcamento
	}
	if stamps.DataAprovacao != nil {
		pedido.DataAprovacao = stamps.DataAprovacao
	}
	if stamps.DataPagamento != nil {
		pedido.DataPagamento = stamps.DataPagamento
	}
	if stamps.DataPagamentoFinal != nil {
		pedido.DataPagamentoFinal = stamps.DataPagamentoFinal
	}
	if stamps.DataInicioConfeccao != nil {
		pedido.DataInicioConfeccao = stamps.DataInicioConfeccao
	}
	if stamps.DataEntrega != nil {
		pedido.DataEntrega = stamps.DataEntrega
	}
	if stamps.PrazoFinal != nil {
		pedido.PrazoFinal = stamps.PrazoFinal
	}
	if stamps.MotivoRecusa != "" {
		pedido.MotivoRecusa = stamps.MotivoRecusa
	}
	pedido.UpdatedAt = time.Now()
	return nil
}

func (r *MemPedidoRepo) SetOrcamento(_ context.Context, pedidoID string, orcamento domain.OrcamentoFields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pedido, ok := r.Pedidos[pedidoID]
	if !ok {
		return domain.ErrPedidoNotFound
	}
	pedido.ValorOrcado = &orcamento.ValorOrcado
	pedido.PrazoOrcado = &orcamento.PrazoOrcado
	pedido.ObservacoesAdmin = orcamento.ObservacoesAdmin
	pedido.DiscountAmount = orcamento.DiscountAmount
	pedido.DiscountReason = orcamento.DiscountReason
	pedido.RequerPagamentoAntecipado = orcamento.RequerPagamentoAntecipado
	pedido.PaymentMode = orcamento.PaymentMode
	pedido.ValorEntrada = orcamento.ValorEntrada
	pedido.InstallmentCount = orcamento.InstallmentCount
	pedido.CustomSplits = orcamento.CustomSplits
	if orcamento.MaxRevisions != nil {
		pedido.MaxRevisions = *orcamento.MaxRevisions
	}
	return nil
}

func (r *MemPedidoRepo) RegisterRevision(_ context.Context, pedidoID string, count int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pedido, ok := r.Pedidos[pedidoID]
	if !ok {
		return domain.ErrPedidoNotFound
	}
	pedido.RevisionCount = count
	pedido.Status = domain.StatusEmAjustes
	return nil
}

func (r *MemPedidoRepo) SetNPS(_ context.Context, pedidoID string, score int32, comment string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pedido, ok := r.Pedidos[pedidoID]
	if !ok {
		return domain.ErrPedidoNotFound
	}
	pedido.NPSScore = &score
	pedido.NPSComment = comment
	return nil
}

func (r *MemPedidoRepo) ArchivePedido(_ context.Context, pedidoID string, archivedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pedido, ok := r.Pedidos[pedidoID]
	if !ok {
		return domain.ErrPedidoNotFound
	}
	pedido.ArchivedAt = &archivedAt
	return nil
}

type MemRevisionRepo struct {
	mu        sync.Mutex
	Revisions map[string]*domain.Revision
}

func NewMemRevisionRepo() *MemRevisionRepo {
	return &MemRevisionRepo{Revisions: make(map[string]*domain.Revision)}
}

func (r *MemRevisionRepo) CreateRevision(_ context.Context, revision *domain.Revision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.Revisions {
		if existing.PedidoID == revision.PedidoID && existing.RevisionNumber == revision.RevisionNumber {
			return domain.ErrAlreadyExists
		}
	}
	clone := *revision
	r.Revisions[revision.ID] = &clone
	return nil
}

func (r *MemRevisionRepo) GetRevisionByID(_ context.Context, revisionID string) (*domain.Revision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	revision, ok := r.Revisions[revisionID]
	if !ok {
		return nil, domain.ErrRevisionNotFound
	}
	clone := *revision
	return &clone, nil
}

func (r *MemRevisionRepo) ListRevisionsByPedidoID(_ context.Context, pedidoID string) ([]*domain.Revision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Revision
	for _, revision := range r.Revisions {
		if revision.PedidoID == pedidoID {
			clone := *revision
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RevisionNumber < out[j].RevisionNumber })
	return out, nil
}

func (r *MemRevisionRepo) UpdateRevisionStatus(_ context.Context, revisionID string, from, to domain.RevisionStatus, adminResponse string, resolvedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	revision, ok := r.Revisions[revisionID]
	if !ok {
		return domain.ErrRevisionNotFound
	}
	if revision.Status != from {
		return fmt.Errorf("%w: stored %s, expected %s", domain.ErrInvalidTransition, revision.Status, from)
	}
	revision.Status = to
	if adminResponse != "" {
		revision.AdminResponse = adminResponse
	}
	if resolvedAt != nil {
		revision.ResolvedAt = resolvedAt
	}
	return nil
}

type MemInstallmentRepo struct {
	mu           sync.Mutex
	Installments map[string]*domain.Installment
}

func NewMemInstallmentRepo() *MemInstallmentRepo {
	return &MemInstallmentRepo{Installments: make(map[string]*domain.Installment)}
}

func (r *MemInstallmentRepo) CreateInstallments(_ context.Context, installments []*domain.Installment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, installment := range installments {
		clone := *installment
		r.Installments[installment.ID] = &clone
	}
	return nil
}

func (r *MemInstallmentRepo) GetInstallmentByID(_ context.Context, installmentID string) (*domain.Installment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	installment, ok := r.Installments[installmentID]
	if !ok {
		return nil, domain.ErrInstallmentNotFound
	}
	clone := *installment
	return &clone, nil
}

func (r *MemInstallmentRepo) ListInstallmentsByPedidoID(_ context.Context, pedidoID string) ([]*domain.Installment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Installment
	for _, installment := range r.Installments {
		if installment.PedidoID == pedidoID {
			clone := *installment
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InstallmentNumber < out[j].InstallmentNumber })
	return out, nil
}

func (r *MemInstallmentRepo) CountInstallmentsByPedidoID(_ context.Context, pedidoID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, installment := range r.Installments {
		if installment.PedidoID == pedidoID {
			count++
		}
	}
	return count, nil
}

func (r *MemInstallmentRepo) CountUnpaidByPedidoID(_ context.Context, pedidoID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, installment := range r.Installments {
		if installment.PedidoID == pedidoID && installment.Status != domain.InstallmentPaid {
			count++
		}
	}
	return count, nil
}

func (r *MemInstallmentRepo) MarkInstallmentPaid(_ context.Context, installmentID string, from []domain.InstallmentStatus, paymentMethod, comprovanteURL string, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	installment, ok := r.Installments[installmentID]
	if !ok {
		return domain.ErrInstallmentNotFound
	}
	allowed := false
	for _, status := range from {
		if installment.Status == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: installment is %s", domain.ErrInvalidTransition, installment.Status)
	}
	installment.Status = domain.InstallmentPaid
	installment.PaymentMethod = paymentMethod
	if comprovanteURL != "" {
		installment.ComprovanteURL = comprovanteURL
	}
	installment.PaidAt = &paidAt
	return nil
}

func (r *MemInstallmentRepo) MarkAwaitingConfirmation(_ context.Context, installmentID string, comprovanteURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	installment, ok := r.Installments[installmentID]
	if !ok {
		return domain.ErrInstallmentNotFound
	}
	if installment.Status != domain.InstallmentPending {
		return fmt.Errorf("%w: installment is %s", domain.ErrInvalidTransition, installment.Status)
	}
	installment.Status = domain.InstallmentAwaitingConfirmation
	if comprovanteURL != "" {
		installment.ComprovanteURL = comprovanteURL
	}
	return nil
}

type MemDeliverableRepo struct {
	mu           sync.Mutex
	Deliverables map[string]*domain.Deliverable
}

func NewMemDeliverableRepo() *MemDeliverableRepo {
	return &MemDeliverableRepo{Deliverables: make(map[string]*domain.Deliverable)}
}

func (r *MemDeliverableRepo) CreateDeliverable(_ context.Context, deliverable *domain.Deliverable) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *deliverable
	r.Deliverables[deliverable.ID] = &clone
	return nil
}

func (r *MemDeliverableRepo) GetDeliverableByID(_ context.Context, deliverableID string) (*domain.Deliverable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deliverable, ok := r.Deliverables[deliverableID]
	if !ok {
		return nil, domain.ErrDeliverableNotFound
	}
	clone := *deliverable
	return &clone, nil
}

func (r *MemDeliverableRepo) ListDeliverablesByPedidoID(_ context.Context, pedidoID string) ([]*domain.Deliverable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Deliverable
	for _, deliverable := range r.Deliverables {
		if deliverable.PedidoID == pedidoID {
			clone := *deliverable
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeliveredAt.After(out[j].DeliveredAt) })
	return out, nil
}

func (r *MemDeliverableRepo) ListActiveDeliverables(_ context.Context, pedidoID string, now time.Time) ([]*domain.Deliverable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Deliverable
	for _, deliverable := range r.Deliverables {
		if deliverable.PedidoID == pedidoID && deliverable.ExpiresAt.After(now) {
			clone := *deliverable
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeliveredAt.After(out[j].DeliveredAt) })
	return out, nil
}

func (r *MemDeliverableRepo) MarkDownloaded(_ context.Context, deliverableID string, downloadedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	deliverable, ok := r.Deliverables[deliverableID]
	if !ok {
		return domain.ErrDeliverableNotFound
	}
	if deliverable.DownloadedAt == nil {
		deliverable.DownloadedAt = &downloadedAt
	}
	return nil
}

type MemActivityRepo struct {
	mu      sync.Mutex
	Entries []*domain.ActivityEntry
}

func NewMemActivityRepo() *MemActivityRepo {
	return &MemActivityRepo{}
}

func (r *MemActivityRepo) AppendActivity(_ context.Context, entry *domain.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *entry
	r.Entries = append(r.Entries, &clone)
	return nil
}

func (r *MemActivityRepo) ListActivitiesByPedidoID(_ context.Context, pedidoID string, ascending bool) ([]*domain.ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.ActivityEntry
	for _, entry := range r.Entries {
		if entry.PedidoID == pedidoID {
			clone := *entry
			out = append(out, &clone)
		}
	}
	if !ascending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (r *MemActivityRepo) ListPublicActivities(_ context.Context, pedidoID string, actions []domain.ActivityAction) ([]*domain.ActivityEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	allowed := make(map[domain.ActivityAction]bool, len(actions))
	for _, action := range actions {
		allowed[action] = true
	}
	var out []*domain.ActivityEntry
	for _, entry := range r.Entries {
		if entry.PedidoID == pedidoID && allowed[entry.Action] {
			clone := *entry
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Actions is a convenience for asserting the logged sequence.
func (r *MemActivityRepo) Actions(pedidoID string) []domain.ActivityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ActivityAction
	for _, entry := range r.Entries {
		if entry.PedidoID == pedidoID {
			out = append(out, entry.Action)
		}
	}
	return out
}
