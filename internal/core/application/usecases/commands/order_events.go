package commands

import (
	"context"
	"log/slog"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// orderNotifier publishes committed order changes. A nil publisher disables it.
// Publish failures are logged; the committed change stands.
type orderNotifier struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func newOrderNotifier(publisher ports.OrderEventPublisher, logger *slog.Logger) orderNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return orderNotifier{
		publisher: publisher,
		logger:    logger.With("component", "order-notifier"),
	}
}

func (n orderNotifier) orderChanged(ctx context.Context, o *order.Order) {
	if n.publisher == nil {
		return
	}

	if err := n.publisher.PublishOrderChanged(ctx, o); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish order change",
			"order_id", o.ID().String(),
			"status", o.Status().String(),
			"error", err,
		)
	}
}
