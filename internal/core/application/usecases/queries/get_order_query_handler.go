package queries

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// GetOrderQueryHandler returns an order with its lines and totals.
type GetOrderQueryHandler struct {
	warehouse *services.WarehouseService
}

func NewGetOrderQueryHandler(warehouse *services.WarehouseService) GetOrderQueryHandler {
	return GetOrderQueryHandler{warehouse: warehouse}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.warehouse.GetOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return newOrderResponse(o), nil
}
