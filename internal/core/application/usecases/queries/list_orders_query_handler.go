package queries

import (
	"context"

	"warehouse/internal/core/domain/services"
)

type ListOrdersQueryHandler struct {
	warehouse *services.WarehouseService
}

func NewListOrdersQueryHandler(warehouse *services.WarehouseService) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{warehouse: warehouse}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.warehouse.ListOrders(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return newOrderResponses(orders), nil
}
