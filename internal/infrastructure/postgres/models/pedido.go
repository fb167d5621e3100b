package models

import (
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
)

type PedidoModel struct {
	ID        string           `gorm:"primaryKey;type:uuid"`
	Protocolo string           `gorm:"uniqueIndex;not null"`
	OrderType domain.OrderType `gorm:"default:'custom'"`

	Nome            string `gorm:"not null"`
	Email           string `gorm:"not null;index"`
	Telefone        string
	Empresa         string
	Descricao       string
	PrazoSolicitado string
	Referencias     string
	ArquivoURLs     string `gorm:"type:jsonb;column:arquivo_urls"`
	Servico         string

	ValorOrcado      *int64
	PrazoOrcado      *int32
	ObservacoesAdmin string
	DiscountAmount   int64 `gorm:"default:0"`
	DiscountReason   string

	RequerPagamentoAntecipado bool               `gorm:"default:true"`
	PaymentMode               domain.PaymentMode `gorm:"default:'full'"`
	ValorEntrada              *int64
	InstallmentCount          int32  `gorm:"default:0"`
	CustomSplits              string `gorm:"type:jsonb"`

	MaxRevisions  int32 `gorm:"default:2"`
	RevisionCount int32 `gorm:"default:0"`

	Status domain.PedidoStatus `gorm:"index;not null"`

	DataBriefing        time.Time
	DataOrcamento       *time.Time
	DataAprovacao       *time.Time
	DataPagamento       *time.Time
	DataPagamentoFinal  *time.Time
	DataInicioConfeccao *time.Time
	DataEntrega         *time.Time
	PrazoFinal          *time.Time

	MotivoRecusa string

	NPSScore   *int32
	NPSComment string

	ArchivedAt *time.Time `gorm:"index"`

	CreatedAt time.Time `gorm:"index:idx_pedido_created_at"`
	UpdatedAt time.Time
}

func (PedidoModel) TableName() string {
	return "pedidos"
}
