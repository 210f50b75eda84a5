package order

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is one order line. The product is a copy taken when the line was
// created, so later catalog changes do not alter it.
type Item struct {
	product      product.Product
	quantity     int
	priceAtOrder decimal.Decimal
}

// NewItem builds an order line. quantity and priceAtOrder must be positive.
func NewItem(p product.Product, quantity int, priceAtOrder decimal.Decimal) (Item, error) {
	var err error
	if quantity <= 0 {
		err = errors.Join(err, errs.NewInvalidQuantityError(quantity))
	}
	if !priceAtOrder.IsPositive() {
		err = errors.Join(err, errs.NewInvalidPriceError(priceAtOrder))
	}
	if err != nil {
		return Item{}, err
	}

	return Item{
		product:      p,
		quantity:     quantity,
		priceAtOrder: priceAtOrder,
	}, nil
}

// Product returns the snapshot captured for this line.
func (i Item) Product() product.Product {
	return i.product
}

func (i Item) ProductID() kernel.UUID {
	return i.product.ID()
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) PriceAtOrder() decimal.Decimal {
	return i.priceAtOrder
}

// TotalPrice is quantity × price_at_order.
func (i Item) TotalPrice() decimal.Decimal {
	return i.priceAtOrder.Mul(decimal.NewFromInt(int64(i.quantity)))
}
