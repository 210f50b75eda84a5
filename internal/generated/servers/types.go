// Package servers provides the HTTP API contract of the warehouse: request and
// response types, the server interface, echo route registration with parameter
// binding, and the embedded OpenAPI document they are derived from.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for OrderStatus.
const (
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPending   OrderStatus = "pending"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Items []NewOrderItem `json:"items"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt  time.Time          `json:"createdAt"`
	Id         openapi_types.UUID `json:"id"`
	Items      []OrderItem        `json:"items"`
	Status     OrderStatus        `json:"status"`
	TotalItems int                `json:"totalItems"`
	TotalPrice string             `json:"totalPrice"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	PriceAtOrder string             `json:"priceAtOrder"`
	ProductId    openapi_types.UUID `json:"productId"`
	ProductName  string             `json:"productName"`
	Quantity     int                `json:"quantity"`
	TotalPrice   string             `json:"totalPrice"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// PriceChange defines model for PriceChange.
type PriceChange struct {
	Price string `json:"price"`
}

// Product defines model for Product.
type Product struct {
	Id       openapi_types.UUID `json:"id"`
	InStock  bool               `json:"inStock"`
	Name     string             `json:"name"`
	Price    string             `json:"price"`
	Quantity int                `json:"quantity"`
}

// Restock defines model for Restock.
type Restock struct {
	Quantity int `json:"quantity"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ProductId defines model for ProductId.
type ProductId = openapi_types.UUID

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ListProductsParams defines parameters for ListProducts.
type ListProductsParams struct {
	// Available Only products with stock when true.
	Available *bool `form:"available,omitempty" json:"available,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct

// UpdateProductPriceJSONRequestBody defines body for UpdateProductPrice for application/json ContentType.
type UpdateProductPriceJSONRequestBody = PriceChange

// RestockProductJSONRequestBody defines body for RestockProduct for application/json ContentType.
type RestockProductJSONRequestBody = Restock
