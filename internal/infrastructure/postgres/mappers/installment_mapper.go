package mappers

import (
	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/atelie-design/pedido-service/internal/infrastructure/postgres/models"
)

func ToDomainInstallment(model *models.InstallmentModel) *domain.Installment {
	return &domain.Installment{
		ID:                model.ID,
		PedidoID:          model.PedidoID,
		InstallmentNumber: model.InstallmentNumber,
		Amount:            model.Amount,
		DueDate:           model.DueDate,
		Status:            model.Status,
		PaymentMethod:     model.PaymentMethod,
		ComprovanteURL:    model.ComprovanteURL,
		PaidAt:            model.PaidAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMInstallment(installment *domain.Installment) *models.InstallmentModel {
	return &models.InstallmentModel{
		ID:                installment.ID,
		PedidoID:          installment.PedidoID,
		InstallmentNumber: installment.InstallmentNumber,
		Amount:            installment.Amount,
		DueDate:           installment.DueDate,
		Status:            installment.Status,
		PaymentMethod:     installment.PaymentMethod,
		ComprovanteURL:    installment.ComprovanteURL,
		PaidAt:            installment.PaidAt,
		CreatedAt:         installment.CreatedAt,
		UpdatedAt:         installment.UpdatedAt,
	}
}
