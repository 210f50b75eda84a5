package commands

import (
	"context"
	"log/slog"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

type statusChange func(svc *services.WarehouseService, ctx context.Context, id kernel.UUID) (*order.Order, error)

// orderStatusHandler runs one order transition in a unit of work and
// announces the committed result.
type orderStatusHandler struct {
	uowFactory UoWFactory
	notifier   orderNotifier
	change     statusChange
}

func newOrderStatusHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
	change statusChange,
) orderStatusHandler {
	return orderStatusHandler{
		uowFactory: uowFactory,
		notifier:   newOrderNotifier(publisher, logger),
		change:     change,
	}
}

func (h orderStatusHandler) handle(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	o, err := inTransaction(ctx, h.uowFactory, func(svc *services.WarehouseService) (*order.Order, error) {
		return h.change(svc, ctx, id)
	})
	if err != nil {
		return nil, err
	}

	h.notifier.orderChanged(ctx, o)
	return o, nil
}

// ConfirmOrderCommandHandler confirms pending orders.
type ConfirmOrderCommandHandler struct {
	orderStatusHandler
}

func NewConfirmOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		newOrderStatusHandler(uowFactory, publisher, logger, (*services.WarehouseService).ConfirmOrder),
	}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.handle(ctx, cmd.OrderID())
}

// CancelOrderCommandHandler cancels orders and puts their stock back, all in
// one transaction.
type CancelOrderCommandHandler struct {
	orderStatusHandler
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		newOrderStatusHandler(uowFactory, publisher, logger, (*services.WarehouseService).CancelOrder),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.handle(ctx, cmd.OrderID())
}

// CompleteOrderCommandHandler completes confirmed orders.
type CompleteOrderCommandHandler struct {
	orderStatusHandler
}

func NewCompleteOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		newOrderStatusHandler(uowFactory, publisher, logger, (*services.WarehouseService).CompleteOrder),
	}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.handle(ctx, cmd.OrderID())
}
