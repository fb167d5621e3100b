package mappers

import (
	"encoding/json"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
)

func ToDomainPedido(model *models.PedidoModel) *domain.Pedido {
	var arquivos []string
	if model.ArquivoURLs != "" {
		_ = json.Unmarshal([]byte(model.ArquivoURLs), &arquivos)
	}
	var splits []int64
	if model.CustomSplits != "" {
		_ = json.Unmarshal([]byte(model.CustomSplits), &splits)
	}
	return &domain.Pedido{
		ID:                        model.ID,
		Protocolo:                 model.Protocolo,
		OrderType:                 model.OrderType,
		Nome:                      model.Nome,
		Email:                     model.Email,
		Telefone:                  model.Telefone,
		Empresa:                   model.Empresa,
		Descricao:                 model.Descricao,
		PrazoSolicitado:           model.PrazoSolicitado,
		Referencias:               model.Referencias,
		ArquivoURLs:               arquivos,
		Servico:                   model.Servico,
		ValorOrcado:               model.ValorOrcado,
		PrazoOrcado:               model.PrazoOrcado,
		ObservacoesAdmin:          model.ObservacoesAdmin,
		DiscountAmount:            model.DiscountAmount,
		DiscountReason:            model.DiscountReason,
		RequerPagamentoAntecipado: model.RequerPagamentoAntecipado,
		PaymentMode:               model.PaymentMode,
		ValorEntrada:              model.ValorEntrada,
		InstallmentCount:          model.InstallmentCount,
		CustomSplits:              splits,
		MaxRevisions:              model.MaxRevisions,
		RevisionCount:             model.RevisionCount,
		Status:                    model.Status,
		DataBriefing:              model.DataBriefing,
		DataOrcamento:             model.DataOrcamento,
		DataAprovacao:             model.DataAprovacao,
		DataPagamento:             model.DataPagamento,
		DataPagamentoFinal:        model.DataPagamentoFinal,
		DataInicioConfeccao:       model.DataInicioConfeccao,
		DataEntrega:               model.DataEntrega,
		PrazoFinal:                model.PrazoFinal,
		MotivoRecusa:              model.MotivoRecusa,
		NPSScore:                  model.NPSScore,
		NPSComment:                model.NPSComment,
		ArchivedAt:                model.ArchivedAt,
		CreatedAt:                 model.CreatedAt,
		UpdatedAt:                 model.UpdatedAt,
	}
}

func ToGORMPedido(pedido *domain.Pedido) *models.PedidoModel {
	arquivos, _ := json.Marshal(pedido.ArquivoURLs)
	splits, _ := json.Marshal(pedido.CustomSplits)
	return &models.PedidoModel{
		ID:                        pedido.ID,
		Protocolo:                 pedido.Protocolo,
		OrderType:                 pedido.OrderType,
		Nome:                      pedido.Nome,
		Email:                     pedido.Email,
		Telefone:                  pedido.Telefone,
		Empresa:                   pedido.Empresa,
		Descricao:                 pedido.Descricao,
		PrazoSolicitado:           pedido.PrazoSolicitado,
		Referencias:               pedido.Referencias,
		ArquivoURLs:               string(arquivos),
		Servico:                   pedido.Servico,
		ValorOrcado:               pedido.ValorOrcado,
		PrazoOrcado:               pedido.PrazoOrcado,
		ObservacoesAdmin:          pedido.ObservacoesAdmin,
		DiscountAmount:            pedido.DiscountAmount,
		DiscountReason:            pedido.DiscountReason,
		RequerPagamentoAntecipado: pedido.RequerPagamentoAntecipado,
		PaymentMode:               pedido.PaymentMode,
		ValorEntrada:              pedido.ValorEntrada,
		InstallmentCount:          pedido.InstallmentCount,
		CustomSplits:              string(splits),
		MaxRevisions:              pedido.MaxRevisions,
		RevisionCount:             pedido.RevisionCount,
		Status:                    pedido.Status,
		DataBriefing:              pedido.DataBriefing,
		DataOrcamento:             pedido.DataOrcamento,
		DataAprovacao:             pedido.DataAprovacao,
		DataPagamento:             pedido.DataPagamento,
		DataPagamentoFinal:        pedido.DataPagamentoFinal,
		DataInicioConfeccao:       pedido.DataInicioConfeccao,
		DataEntrega:               pedido.DataEntrega,
		PrazoFinal:                pedido.PrazoFinal,
		MotivoRecusa:              pedido.MotivoRecusa,
		NPSScore:                  pedido.NPSScore,
		NPSComment:                pedido.NPSComment,
		ArchivedAt:                pedido.ArchivedAt,
		CreatedAt:                 pedido.CreatedAt,
		UpdatedAt:                 pedido.UpdatedAt,
	}
}
