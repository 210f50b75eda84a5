package product

import (
	"errors"
	"math"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrNameIsRequired is returned for an empty or whitespace-only product name.
	ErrNameIsRequired = errs.NewValidationError("product name cannot be empty")
	// ErrProductIsNotConstructed is returned when a Product was not built via NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog entry with its current stock level and unit price.
//
// Example usage:
//
//	p, err := product.NewProduct("Laptop", 10, decimal.RequireFromString("999.99"))
//	if err != nil {
//	    // errs.ErrInvalidPrice, errs.ErrInvalidQuantity or errs.ErrValidation
//	}
//	err = p.ReduceQuantity(3) // 7 left
type Product struct {
	// id is zero until the product is persisted
	id       kernel.UUID
	name     string
	quantity int
	price    decimal.Decimal
	guard    guard.ConstructorGuard
}

// NewProduct creates a product that has not been persisted yet.
// Every violated rule is reported in the returned error (joined with errors.Join).
func NewProduct(name string, quantity int, price decimal.Decimal) (*Product, error) {
	return build(kernel.UUID{}, name, quantity, price)
}

// RestoreProduct rebuilds a stored product. The id must be assigned.
func RestoreProduct(id kernel.UUID, name string, quantity int, price decimal.Decimal) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return build(id, name, quantity, price)
}

func build(id kernel.UUID, name string, quantity int, price decimal.Decimal) (*Product, error) {
	p := &Product{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setPrice(price),
		p.setQuantity(quantity),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

// IsEqual compares products by identity. Two unpersisted products are never equal.
func (p *Product) IsEqual(other *Product) bool {
	if other == nil || p.id.IsZero() {
		return false
	}
	return p.id.IsEqual(other.id)
}

// IsInStock reports whether at least one unit is available.
func (p *Product) IsInStock() bool {
	return p.quantity > 0
}

// ReduceQuantity takes amount units out of stock.
//
// Returns errs.InvalidQuantityError when amount <= 0 and
// errs.InsufficientStockError when amount exceeds the current quantity.
// On error the quantity is unchanged.
func (p *Product) ReduceQuantity(amount int) error {
	if amount <= 0 {
		return errs.NewInvalidQuantityError(amount)
	}
	if amount > p.quantity {
		return errs.NewInsufficientStockError(p.name, amount, p.quantity)
	}
	p.quantity -= amount
	return nil
}

// IncreaseQuantity puts amount units back into stock.
//
// Returns errs.InvalidQuantityError when amount <= 0 or when the new stock
// level would not fit in an int. On error the quantity is unchanged.
func (p *Product) IncreaseQuantity(amount int) error {
	if amount <= 0 || amount > math.MaxInt-p.quantity {
		return errs.NewInvalidQuantityError(amount)
	}
	p.quantity += amount
	return nil
}

// WithPrice returns a copy of the product carrying the new price.
// The receiver is left untouched.
func (p *Product) WithPrice(price decimal.Decimal) (*Product, error) {
	updated := p.Snapshot()
	if err := updated.setPrice(price); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Snapshot returns a value copy of the product as it is right now.
func (p *Product) Snapshot() Product {
	return *p
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewInvalidQuantityError(quantity)
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewInvalidPriceError(price)
	}
	p.price = price
	return nil
}
