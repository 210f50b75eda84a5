package queries

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// GetProductQueryHandler returns a single product or a not found error.
type GetProductQueryHandler struct {
	warehouse *services.WarehouseService
}

func NewGetProductQueryHandler(warehouse *services.WarehouseService) GetProductQueryHandler {
	return GetProductQueryHandler{warehouse: warehouse}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	p, err := h.warehouse.GetProduct(ctx, query.ProductID())
	if err != nil {
		return ProductResponse{}, err
	}

	return newProductResponse(p), nil
}
