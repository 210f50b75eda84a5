package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// orderRef is the payload shared by the status change commands.
type orderRef struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderRef(orderID kernel.UUID) (orderRef, error) {
	if err := orderID.Validate(); err != nil {
		return orderRef{}, err
	}
	return orderRef{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (r orderRef) OrderID() kernel.UUID {
	return r.orderID
}

// ConfirmOrderCommand moves a pending order with items to confirmed.
type ConfirmOrderCommand struct {
	orderRef
}

func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	ref, err := newOrderRef(orderID)
	if err != nil {
		return ConfirmOrderCommand{}, err
	}
	return ConfirmOrderCommand{orderRef: ref}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// CancelOrderCommand cancels a pending or confirmed order and returns its stock.
type CancelOrderCommand struct {
	orderRef
}

func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	ref, err := newOrderRef(orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderRef: ref}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// CompleteOrderCommand moves a confirmed order to completed.
type CompleteOrderCommand struct {
	orderRef
}

func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	ref, err := newOrderRef(orderID)
	if err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderRef: ref}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}
