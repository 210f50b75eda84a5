package commands

import (
	"context"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

type RestockProductCommandHandler struct {
	uowFactory UoWFactory
}

func NewRestockProductCommandHandler(uowFactory UoWFactory) RestockProductCommandHandler {
	return RestockProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RestockProductCommandHandler) Handle(ctx context.Context, cmd RestockProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inTransaction(ctx, h.uowFactory, func(svc *services.WarehouseService) (*product.Product, error) {
		return svc.RestockProduct(ctx, cmd.ProductID(), cmd.Quantity())
	})
}
