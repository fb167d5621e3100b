package pedidodto

import (
	"github.com/atelie-design/pedido-service/internal/domain"
)

type CreatePedidoInput struct {
	Nome            string
	Email           string
	Telefone        string
	Empresa         string
	Descricao       string
	PrazoSolicitado string
	Referencias     string
	ArquivoURLs     []string
	Servico         string
	OrderType       domain.OrderType
}

type OrcamentoInput struct {
	ValorOrcado               int64
	PrazoOrcado               int32
	ObservacoesAdmin          string
	DiscountAmount            int64
	DiscountReason            string
	RequerPagamentoAntecipado bool
	PaymentMode               domain.PaymentMode
	ValorEntrada              *int64
	MaxRevisions              *int32

	// Split configuration consumed when the quote is approved.
	CustomSplits     []int64
	InstallmentCount int32
}

type ListPedidosInput struct {
	Filters domain.PedidoFilters
	Page    int64
	Limit   int64
}
