package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	CreateProduct      commands.CreateProductCommandHandler
	UpdateProductPrice commands.UpdateProductPriceCommandHandler
	RestockProduct     commands.RestockProductCommandHandler
	DeleteProduct      commands.DeleteProductCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	ConfirmOrder       commands.ConfirmOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	CompleteOrder      commands.CompleteOrderCommandHandler

	GetProduct   queries.GetProductQueryHandler
	ListProducts queries.ListProductsQueryHandler
	GetOrder     queries.GetOrderQueryHandler
	ListOrders   queries.ListOrdersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It translates between the API types and the application use cases;
// failures are returned as errors and rendered by the error handler.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	onlyAvailable := params.Available != nil && *params.Available
	query := queries.NewListProductsQuery(onlyAvailable)

	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = productFromResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	price, err := parsePrice(body.Price)
	if err != nil {
		return err
	}

	cmd := commands.NewCreateProductCommand(body.Name, body.Quantity, price)
	p, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(p))
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId servers.ProductId) error {
	id, err := kernel.UUIDFromGoogle(productId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return err
	}

	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, productFromResponse(p))
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productId servers.ProductId) error {
	id, err := kernel.UUIDFromGoogle(productId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateProductPrice handles PUT /api/v1/products/{productId}/price.
func (s *Server) UpdateProductPrice(ctx echo.Context, productId servers.ProductId) error {
	var body servers.UpdateProductPriceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	id, err := kernel.UUIDFromGoogle(productId)
	if err != nil {
		return err
	}

	price, err := parsePrice(body.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductPriceCommand(id, price)
	if err != nil {
		return err
	}

	p, err := s.h.UpdateProductPrice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, productFromDomain(p))
}

// RestockProduct handles POST /api/v1/products/{productId}/restock.
func (s *Server) RestockProduct(ctx echo.Context, productId servers.ProductId) error {
	var body servers.RestockProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	id, err := kernel.UUIDFromGoogle(productId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRestockProductCommand(id, body.Quantity)
	if err != nil {
		return err
	}

	p, err := s.h.RestockProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, productFromDomain(p))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(err)
	}

	lines := make([]services.OrderLine, len(body.Items))
	for i, item := range body.Items {
		id, err := kernel.UUIDFromGoogle(item.ProductId)
		if err != nil {
			return err
		}
		lines[i] = services.OrderLine{ProductID: id, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(lines)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(o))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(o))
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return err
	}

	o, err := s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}

	o, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return err
	}

	o, err := s.h.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, echo.NewHTTPError(http.StatusBadRequest, "price must be a decimal number")
	}
	return price, nil
}

func invalidBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
}
