package commands

import (
	"context"

	"warehouse/internal/core/domain/services"
)

type DeleteProductCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteProductCommandHandler(uowFactory UoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := inTransaction(ctx, h.uowFactory, func(svc *services.WarehouseService) (struct{}, error) {
		return struct{}{}, svc.DeleteProduct(ctx, cmd.ProductID())
	})
	return err
}
