package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrRestockProductCommandIsNotConstructed = errors.New(
	"RestockProductCommand must be created via NewRestockProductCommand constructor",
)

// RestockProductCommand adds units to a product's stock.
//
// Example:
//
//	cmd, err := NewRestockProductCommand(productID, 25)
//	if err != nil {
//	    return fmt.Errorf("invalid restock request: %w", err)
//	}
//	p, err := handler.Handle(ctx, cmd)
type RestockProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRestockProductCommand validates that the id is set and quantity is positive.
func NewRestockProductCommand(productID kernel.UUID, quantity int) (RestockProductCommand, error) {
	cmd := RestockProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RestockProductCommand{}, err
	}

	return cmd, nil
}

func (c RestockProductCommand) Validate() error {
	return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
}

func (c RestockProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c RestockProductCommand) Quantity() int {
	return c.quantity
}

func (c *RestockProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *RestockProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewInvalidQuantityError(quantity)
	}
	c.quantity = quantity
	return nil
}
