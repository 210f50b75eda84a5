package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// OrderEventPublisher announces order state changes to other systems.
// It is called after the change has been committed.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, o *order.Order) error
}
