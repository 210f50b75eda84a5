package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders, oldest first
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Create a pending order and reserve its stock
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Get an order with its lines
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Cancel an order and return its stock
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error
	// Complete a confirmed order
	// (POST /api/v1/orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderId OrderId) error
	// Confirm a pending order
	// (POST /api/v1/orders/{orderId}/confirm)
	ConfirmOrder(ctx echo.Context, orderId OrderId) error
	// List products ordered by name
	// (GET /api/v1/products)
	ListProducts(ctx echo.Context, params ListProductsParams) error
	// Create a product
	// (POST /api/v1/products)
	CreateProduct(ctx echo.Context) error
	// Delete a product that no order references
	// (DELETE /api/v1/products/{productId})
	DeleteProduct(ctx echo.Context, productId ProductId) error
	// Get a product
	// (GET /api/v1/products/{productId})
	GetProduct(ctx echo.Context, productId ProductId) error
	// Change the unit price
	// (PUT /api/v1/products/{productId}/price)
	UpdateProductPrice(ctx echo.Context, productId ProductId) error
	// Add units to stock
	// (POST /api/v1/products/{productId}/restock)
	RestockProduct(ctx echo.Context, productId ProductId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderId)
}

// CompleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompleteOrder(ctx, orderId)
}

// ConfirmOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ConfirmOrder(ctx, orderId)
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListProductsParams
	// ------------- Optional query parameter "available" -------------

	err = runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &params.Available)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter available: %s", err))
	}

	err = w.Handler.ListProducts(ctx, params)
	return err
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

// DeleteProduct converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	productId, err := bindProductID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteProduct(ctx, productId)
}

// GetProduct converts echo context to params.
func (w *ServerInterfaceWrapper) GetProduct(ctx echo.Context) error {
	productId, err := bindProductID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetProduct(ctx, productId)
}

// UpdateProductPrice converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateProductPrice(ctx echo.Context) error {
	productId, err := bindProductID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateProductPrice(ctx, productId)
}

// RestockProduct converts echo context to params.
func (w *ServerInterfaceWrapper) RestockProduct(ctx echo.Context) error {
	productId, err := bindProductID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RestockProduct(ctx, productId)
}

func bindOrderID(ctx echo.Context) (OrderId, error) {
	var orderId OrderId
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

func bindProductID(ctx echo.Context) (ProductId, error) {
	var productId ProductId
	err := runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return productId, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}
	return productId, nil
}

// EchoRouter is the subset of echo.Echo / echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL, e.g. when
// the API sits behind a path prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/complete", wrapper.CompleteOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/confirm", wrapper.ConfirmOrder)
	router.GET(baseURL+"/api/v1/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/v1/products", wrapper.CreateProduct)
	router.DELETE(baseURL+"/api/v1/products/:productId", wrapper.DeleteProduct)
	router.GET(baseURL+"/api/v1/products/:productId", wrapper.GetProduct)
	router.PUT(baseURL+"/api/v1/products/:productId/price", wrapper.UpdateProductPrice)
	router.POST(baseURL+"/api/v1/products/:productId/restock", wrapper.RestockProduct)
}
