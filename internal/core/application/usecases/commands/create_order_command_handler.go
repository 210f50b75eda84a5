package commands

import (
	"context"
	"log/slog"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

// CreateOrderCommandHandler creates a pending order and takes its stock.
//
// Stock reductions and the order are committed together: if any line fails
// (unknown product, insufficient stock) nothing is persisted.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // nothing was reserved
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   orderNotifier
}

// NewCreateOrderCommandHandler accepts a nil publisher when order events are disabled.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newOrderNotifier(publisher, logger),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, err := inTransaction(ctx, h.uowFactory, func(svc *services.WarehouseService) (*order.Order, error) {
		return svc.CreateOrder(ctx, cmd.Lines())
	})
	if err != nil {
		return nil, err
	}

	h.notifier.orderChanged(ctx, o)
	return o, nil
}
