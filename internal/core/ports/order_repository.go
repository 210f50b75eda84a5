package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Absence is reported as *errs.ObjectNotFoundError with ParamName "order".
type OrderRepository interface {
	// Add persists a new order with its lines and returns it with an assigned identity.
	Add(ctx context.Context, o *order.Order) (*order.Order, error)

	// Get returns the order together with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns all orders, oldest first.
	List(ctx context.Context) ([]*order.Order, error)

	// ListByStatus returns orders in the given status, oldest first.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Update persists scalar fields of an existing order. Changes to the
	// line list are not guaranteed to be stored; callers must not rely on it.
	Update(ctx context.Context, o *order.Order) (*order.Order, error)

	// Delete reports whether an order was found and removed, lines included.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
