package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateProductPriceCommandIsNotConstructed = errors.New(
	"UpdateProductPriceCommand must be created via NewUpdateProductPriceCommand constructor",
)

// UpdateProductPriceCommand changes the unit price of a product.
// Lines of existing orders keep the price they were created with.
type UpdateProductPriceCommand struct {
	productID kernel.UUID
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

func NewUpdateProductPriceCommand(productID kernel.UUID, price decimal.Decimal) (UpdateProductPriceCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductPriceCommand{}, err
	}

	return UpdateProductPriceCommand{
		productID: productID,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductPriceCommandIsNotConstructed)
}

func (c UpdateProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductPriceCommand) Price() decimal.Decimal {
	return c.price
}
