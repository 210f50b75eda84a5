package http

import (
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/generated/servers"
)

func productFromDomain(p *product.Product) servers.Product {
	return servers.Product{
		Id:       p.ID().Bytes(),
		Name:     p.Name(),
		Quantity: p.Quantity(),
		Price:    p.Price().String(),
		InStock:  p.IsInStock(),
	}
}

func productFromResponse(p queries.ProductResponse) servers.Product {
	return servers.Product{
		Id:       p.ID.Bytes(),
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price.String(),
		InStock:  p.InStock,
	}
}

func orderFromDomain(o *order.Order) servers.Order {
	items := o.Items()
	lines := make([]servers.OrderItem, len(items))
	for i, item := range items {
		snapshot := item.Product()
		lines[i] = servers.OrderItem{
			ProductId:    item.ProductID().Bytes(),
			ProductName:  snapshot.Name(),
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder().String(),
			TotalPrice:   item.TotalPrice().String(),
		}
	}

	return servers.Order{
		Id:         o.ID().Bytes(),
		Status:     servers.OrderStatus(o.Status()),
		CreatedAt:  o.CreatedAt(),
		Items:      lines,
		TotalItems: o.TotalItems(),
		TotalPrice: o.TotalPrice().String(),
	}
}

func orderFromResponse(o queries.OrderResponse) servers.Order {
	lines := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		lines[i] = servers.OrderItem{
			ProductId:    item.ProductID.Bytes(),
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder.String(),
			TotalPrice:   item.TotalPrice.String(),
		}
	}

	return servers.Order{
		Id:         o.ID.Bytes(),
		Status:     servers.OrderStatus(o.Status),
		CreatedAt:  o.CreatedAt,
		Items:      lines,
		TotalItems: o.TotalItems,
		TotalPrice: o.TotalPrice.String(),
	}
}
