package queries

import (
	"context"

	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
)

type ListProductsQueryHandler struct {
	warehouse *services.WarehouseService
}

func NewListProductsQueryHandler(warehouse *services.WarehouseService) ListProductsQueryHandler {
	return ListProductsQueryHandler{warehouse: warehouse}
}

// Handle returns an empty, non-nil slice when nothing matches.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		products []*product.Product
		err      error
	)
	if query.OnlyAvailable() {
		products, err = h.warehouse.ListAvailableProducts(ctx)
	} else {
		products, err = h.warehouse.ListProducts(ctx)
	}
	if err != nil {
		return nil, err
	}

	return newProductResponses(products), nil
}
