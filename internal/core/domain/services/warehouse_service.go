package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderLine is one requested (product, quantity) pair of a new order.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// WarehouseService runs the product and order use cases against a product
// and an order repository.
//
// Example usage:
//
//	svc := services.NewWarehouseService(uow.ProductRepository(), uow.OrderRepository())
//	laptop, err := svc.CreateProduct(ctx, "Laptop", 10, decimal.RequireFromString("999.99"))
//	o, err := svc.CreateOrder(ctx, []services.OrderLine{{ProductID: laptop.ID(), Quantity: 2}})
//	o, err = svc.CancelOrder(ctx, o.ID()) // stock is back to 10
type WarehouseService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
}

func NewWarehouseService(products ports.ProductRepository, orders ports.OrderRepository) *WarehouseService {
	return &WarehouseService{
		products: products,
		orders:   orders,
	}
}

// CreateProduct stores a new product. Names are unique across the catalog.
func (s *WarehouseService) CreateProduct(ctx context.Context, name string, quantity int, price decimal.Decimal) (*product.Product, error) {
	existing, err := s.products.GetByName(ctx, strings.TrimSpace(name))
	switch {
	case err == nil:
		return nil, errs.NewValidationError(fmt.Sprintf("product with name '%s' already exists", existing.Name()))
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	p, err := product.NewProduct(name, quantity, price)
	if err != nil {
		return nil, err
	}

	return s.products.Add(ctx, p)
}

func (s *WarehouseService) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *WarehouseService) ListProducts(ctx context.Context) ([]*product.Product, error) {
	return s.products.List(ctx)
}

// ListAvailableProducts returns only products that are in stock.
func (s *WarehouseService) ListAvailableProducts(ctx context.Context) ([]*product.Product, error) {
	return s.products.ListInStock(ctx)
}

// UpdateProductPrice re-validates the product with the new price before persisting it.
func (s *WarehouseService) UpdateProductPrice(ctx context.Context, id kernel.UUID, price decimal.Decimal) (*product.Product, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := p.WithPrice(price)
	if err != nil {
		return nil, err
	}

	return s.products.Update(ctx, updated)
}

func (s *WarehouseService) RestockProduct(ctx context.Context, id kernel.UUID, quantity int) (*product.Product, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = p.IncreaseQuantity(quantity); err != nil {
		return nil, err
	}

	return s.products.Update(ctx, p)
}

// DeleteProduct removes a product that no order references, whatever the order status.
func (s *WarehouseService) DeleteProduct(ctx context.Context, id kernel.UUID) error {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return err
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.ContainsProduct(p.ID()) {
			return errs.NewValidationError(
				fmt.Sprintf("cannot delete product %s: it is referenced in order %s", p.ID(), o.ID()),
			)
		}
	}

	deleted, err := s.products.Delete(ctx, p.ID())
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewObjectNotFoundError("product", p.ID())
	}
	return nil
}

// CreateOrder builds a pending order from lines, taking stock as it goes.
//
// Lines are processed in sequence. For each one the product is loaded, the
// stock is checked, the line is added at the product's current price and the
// reduced stock is persisted right away. A failure on a later line leaves the
// earlier stock writes in place; only a surrounding unit of work undoes them.
func (s *WarehouseService) CreateOrder(ctx context.Context, lines []OrderLine) (*order.Order, error) {
	o := order.NewOrder()

	for _, line := range lines {
		p, err := s.products.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		if line.Quantity > p.Quantity() {
			return nil, errs.NewInsufficientStockError(p.Name(), line.Quantity, p.Quantity())
		}

		if err = o.AddItem(p, line.Quantity); err != nil {
			return nil, err
		}

		if err = p.ReduceQuantity(line.Quantity); err != nil {
			return nil, err
		}

		if _, err = s.products.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	return s.orders.Add(ctx, o)
}

func (s *WarehouseService) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.orders.Get(ctx, id)
}

// ListOrders returns all orders, or only those in *status when status is not nil.
func (s *WarehouseService) ListOrders(ctx context.Context, status *order.Status) ([]*order.Order, error) {
	if status == nil {
		return s.orders.List(ctx)
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return s.orders.ListByStatus(ctx, *status)
}

// ConfirmOrder moves a non-empty pending order to confirmed.
func (s *WarehouseService) ConfirmOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = o.Confirm(); err != nil {
		return nil, err
	}

	return s.orders.Update(ctx, o)
}

// CancelOrder returns every line's quantity to stock and cancels the order.
//
// Stock is restored onto the product as currently stored, not onto the
// snapshot held by the line.
func (s *WarehouseService) CancelOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = o.CanCancel(); err != nil {
		return nil, err
	}

	for _, item := range o.Items() {
		p, err := s.products.Get(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}

		if err = p.IncreaseQuantity(item.Quantity()); err != nil {
			return nil, err
		}

		if _, err = s.products.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = o.Cancel(); err != nil {
		return nil, err
	}

	return s.orders.Update(ctx, o)
}

// CompleteOrder moves a confirmed order to completed.
func (s *WarehouseService) CompleteOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = o.Complete(); err != nil {
		return nil, err
	}

	return s.orders.Update(ctx, o)
}
