package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand requests a new order for one or more (product, quantity) lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand([]services.OrderLine{
//	    {ProductID: laptopID, Quantity: 2},
//	    {ProductID: mouseID, Quantity: 1},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created, total %s", o.ID(), o.TotalPrice())
type CreateOrderCommand struct {
	lines []services.OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand requires at least one line, and every line needs a
// product id and a positive quantity.
func NewCreateOrderCommand(lines []services.OrderLine) (CreateOrderCommand, error) {
	if len(lines) == 0 {
		return CreateOrderCommand{}, ErrOrderLinesAreRequired
	}

	var err error
	for idx, line := range lines {
		if idErr := line.ProductID.Validate(); idErr != nil {
			err = errors.Join(err, fmt.Errorf("item %d: %w", idx, idErr))
		}
		if line.Quantity <= 0 {
			err = errors.Join(err, fmt.Errorf("item %d: %w", idx, errs.NewInvalidQuantityError(line.Quantity)))
		}
	}
	if err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		lines: append([]services.OrderLine(nil), lines...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Lines returns a copy of the requested lines in request order.
func (c CreateOrderCommand) Lines() []services.OrderLine {
	return append([]services.OrderLine(nil), c.lines...)
}
