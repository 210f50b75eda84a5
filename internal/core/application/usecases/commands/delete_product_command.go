package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a product that no order references.
type DeleteProductCommand struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}
