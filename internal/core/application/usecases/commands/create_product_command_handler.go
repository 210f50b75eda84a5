package commands

import (
	"context"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

// CreateProductCommandHandler stores a new product with a unique name.
type CreateProductCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateProductCommandHandler(uowFactory UoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stored product with its assigned identity.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return inTransaction(ctx, h.uowFactory, func(svc *services.WarehouseService) (*product.Product, error) {
		return svc.CreateProduct(ctx, cmd.Name(), cmd.Quantity(), cmd.Price())
	})
}
