package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand requests a new catalog entry.
// Name, quantity and price rules are enforced by the product entity.
//
// Example:
//
//	cmd := NewCreateProductCommand("Laptop", 10, decimal.RequireFromString("999.99"))
//	p, err := handler.Handle(ctx, cmd)
type CreateProductCommand struct {
	name     string
	quantity int
	price    decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(name string, quantity int, price decimal.Decimal) CreateProductCommand {
	return CreateProductCommand{
		name:     name,
		quantity: quantity,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Quantity() int {
	return c.quantity
}

func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}
