package tracking

import (
	"context"
	"math"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/metrics"
	trackingdto "github.com/atelie-design/pedido-service/internal/usecase/dto/tracking"
)

// statusInfo is what the public page sees instead of the raw status.
type statusInfo struct {
	Label string
	Step  int
	Color string
}

const trackingSteps = 6

// publicStatusMap deliberately collapses related internal statuses onto the
// same public step, e.g. em_ajustes shows as step 4 alongside em_confeccao.
// Terminal failures sit at step 0.
var publicStatusMap = map[domain.PedidoStatus]statusInfo{
	domain.StatusBriefing:                   {Label: "Briefing Recebido", Step: 1, Color: "#3B82F6"},
	domain.StatusOrcamentoEnviado:           {Label: "Orçamento Enviado", Step: 2, Color: "#F59E0B"},
	domain.StatusOrcamentoAprovado:          {Label: "Orçamento Aprovado", Step: 2, Color: "#10B981"},
	domain.StatusAguardandoPagamento:        {Label: "Aguardando Pagamento", Step: 3, Color: "#F97316"},
	domain.StatusPagamentoConfirmado:        {Label: "Pagamento Confirmado", Step: 3, Color: "#10B981"},
	domain.StatusEmConfeccao:                {Label: "Em Produção", Step: 4, Color: "#8B5CF6"},
	domain.StatusAguardandoAprovacaoCliente: {Label: "Aguardando sua Aprovação", Step: 5, Color: "#06B6D4"},
	domain.StatusEmAjustes:                  {Label: "Em Ajustes", Step: 4, Color: "#F59E0B"},
	domain.StatusAguardandoPagamentoFinal:   {Label: "Aguardando Pagamento Final", Step: 5, Color: "#F97316"},
	domain.StatusFinalizado:                 {Label: "Finalizado ✅", Step: 6, Color: "#10B981"},
	domain.StatusCancelado:                  {Label: "Cancelado", Step: 0, Color: "#EF4444"},
	domain.StatusRecusado:                   {Label: "Recusado", Step: 0, Color: "#EF4444"},
}

// publicActions is the timeline allow-list. Payment schedules, extra-revision
// flags and download stamps stay internal.
var publicActions = []domain.ActivityAction{
	domain.ActionOrderCreated,
	domain.ActionQuoteSent,
	domain.ActionQuoteApproved,
	domain.ActionPaymentConfirmed,
	domain.ActionProductionStarted,
	domain.ActionRevisionRequested,
	domain.ActionRevisionCompleted,
	domain.ActionPartialDeliverableAdded,
	domain.ActionFinalDeliverableAdded,
	domain.ActionStatusChanged,
}

type TrackingUsecase interface {
	GetTracking(ctx context.Context, protocolo string) (*trackingdto.TrackingView, error)
}

// DefaultTrackingUsecase builds the public projection. Reads only, no
// transaction: the page tolerates a timeline a moment behind the row.
type DefaultTrackingUsecase struct {
	PedidoRepo      domain.PedidoRepository
	ActivityRepo    domain.ActivityRepository
	DeliverableRepo domain.DeliverableRepository
	Metrics         *metrics.PedidoMetrics
}

func NewDefaultTrackingUsecase(
	pedidoRepo domain.PedidoRepository,
	activityRepo domain.ActivityRepository,
	deliverableRepo domain.DeliverableRepository,
	pedidoMetrics *metrics.PedidoMetrics) *DefaultTrackingUsecase {

	return &DefaultTrackingUsecase{
		PedidoRepo:      pedidoRepo,
		ActivityRepo:    activityRepo,
		DeliverableRepo: deliverableRepo,
		Metrics:         pedidoMetrics,
	}
}

func (uc *DefaultTrackingUsecase) GetTracking(ctx context.Context, protocolo string) (*trackingdto.TrackingView, error) {
	pedido, err := uc.PedidoRepo.GetPedidoByProtocolo(ctx, protocolo)
	if err != nil {
		return nil, err
	}

	timeline, err := uc.ActivityRepo.ListPublicActivities(ctx, pedido.ID, publicActions)
	if err != nil {
		return nil, err
	}

	deliverables, err := uc.DeliverableRepo.ListActiveDeliverables(ctx, pedido.ID, time.Now())
	if err != nil {
		return nil, err
	}

	info, ok := publicStatusMap[pedido.Status]
	if !ok {
		info = statusInfo{Label: string(pedido.Status), Step: 0, Color: "#666"}
	}

	view := &trackingdto.TrackingView{
		Pedido: trackingdto.TrackingPedido{
			Protocolo:    pedido.Protocolo,
			Status:       string(pedido.Status),
			Nome:         pedido.Nome,
			Servico:      pedido.Servico,
			DataBriefing: pedido.DataBriefing,
			DataEntrega:  pedido.DataEntrega,
			PrazoFinal:   pedido.PrazoFinal,
			NPSScore:     pedido.NPSScore,
		},
		Progress: trackingdto.TrackingProgress{
			Label:      info.Label,
			Step:       info.Step,
			Color:      info.Color,
			Percentage: int(math.Round(float64(info.Step) / trackingSteps * 100)),
		},
		Timeline:     make([]trackingdto.TrackingEvent, 0, len(timeline)),
		Deliverables: make([]trackingdto.TrackingDeliverable, 0, len(deliverables)),
	}
	for _, entry := range timeline {
		view.Timeline = append(view.Timeline, trackingdto.TrackingEvent{
			Action:    string(entry.Action),
			CreatedAt: entry.CreatedAt,
		})
	}
	for _, d := range deliverables {
		view.Deliverables = append(view.Deliverables, trackingdto.TrackingDeliverable{
			FileName:    d.FileName,
			FileType:    d.FileType,
			DeliveredAt: d.DeliveredAt,
			ExpiresAt:   d.ExpiresAt,
			IsFinal:     d.IsFinal,
		})
	}

	if uc.Metrics != nil {
		uc.Metrics.TrackingRequestsTotal.Inc()
	}
	return view, nil
}
