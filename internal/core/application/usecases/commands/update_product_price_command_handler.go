package commands

import (
	"context"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

type UpdateProductPriceCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateProductPriceCommandHandler(uowFactory UoWFactory) UpdateProductPriceCommandHandler {
	return UpdateProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects an invalid price before anything is persisted.
func (h UpdateProductPriceCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductPriceCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inTransaction(ctx, h.uowFactory, func(svc *services.WarehouseService) (*product.Product, error) {
		return svc.UpdateProductPrice(ctx, cmd.ProductID(), cmd.Price())
	})
}
