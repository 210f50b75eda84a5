// Package queries contains read-only operations. Query handlers read through
// the warehouse service without a unit of work and return plain response
// values instead of domain entities.
package queries

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductResponse is the read model of a catalog entry.
type ProductResponse struct {
	ID       kernel.UUID
	Name     string
	Quantity int
	Price    decimal.Decimal
	InStock  bool
}

// OrderItemResponse is one order line with the product data captured when
// the line was created.
type OrderItemResponse struct {
	ProductID    kernel.UUID
	ProductName  string
	Quantity     int
	PriceAtOrder decimal.Decimal
	TotalPrice   decimal.Decimal
}

// OrderResponse is the read model of an order.
//
// Example:
//
//	resp := OrderResponse{
//	    ID:         orderID,
//	    Status:     order.Pending,
//	    Items:      []OrderItemResponse{{ProductName: "Laptop", Quantity: 2, ...}},
//	    TotalItems: 2,
//	    TotalPrice: decimal.RequireFromString("1999.98"),
//	}
type OrderResponse struct {
	ID         kernel.UUID
	Status     order.Status
	CreatedAt  time.Time
	Items      []OrderItemResponse
	TotalItems int
	TotalPrice decimal.Decimal
}

func newProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID(),
		Name:     p.Name(),
		Quantity: p.Quantity(),
		Price:    p.Price(),
		InStock:  p.IsInStock(),
	}
}

func newProductResponses(products []*product.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, newProductResponse(p))
	}
	return resp
}

func newOrderResponse(o *order.Order) OrderResponse {
	items := o.Items()
	lines := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		snapshot := item.Product()
		lines = append(lines, OrderItemResponse{
			ProductID:    item.ProductID(),
			ProductName:  snapshot.Name(),
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder(),
			TotalPrice:   item.TotalPrice(),
		})
	}

	return OrderResponse{
		ID:         o.ID(),
		Status:     o.Status(),
		CreatedAt:  o.CreatedAt(),
		Items:      lines,
		TotalItems: o.TotalItems(),
		TotalPrice: o.TotalPrice(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, newOrderResponse(o))
	}
	return resp
}
