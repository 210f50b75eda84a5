package order

import (
	"errors"
	"math"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyOrder is returned when confirming an order without lines.
	ErrEmptyOrder = errs.NewValidationError("cannot confirm empty order")
	// ErrOrderIsNotConstructed is returned when an Order was not built via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCreatedAtIsRequired is returned when restoring an order without a creation time.
	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Order is the aggregate root for a customer order.
//
// Order follows these invariants:
//   - Each product appears in at most one line
//   - Status transitions follow the Status state machine
//   - An order is confirmed only when it has at least one line
//
// Example:
//
//	o := order.NewOrder()
//	_ = o.AddItem(laptop, 2)
//	_ = o.Confirm()
//	total := o.TotalPrice()
type Order struct {
	// id is zero until the order is persisted
	id        kernel.UUID
	items     []Item
	createdAt time.Time
	status    Status
	guard     guard.ConstructorGuard
}

// NewOrder creates an empty pending order stamped with the current UTC time.
func NewOrder() *Order {
	return &Order{
		createdAt: time.Now().UTC(),
		status:    Pending,
		guard:     guard.NewConstructorGuard(),
	}
}

// RestoreOrder rebuilds a stored order. Lines are taken in the given sequence.
func RestoreOrder(id kernel.UUID, items []Item, createdAt time.Time, status Status) (*Order, error) {
	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = ErrCreatedAtIsRequired
	}
	if err := errors.Join(id.Validate(), status.Validate(), createdAtErr); err != nil {
		return nil, err
	}

	return &Order{
		id:        id,
		items:     slices.Clone(items),
		createdAt: createdAt,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

// AddItem adds quantity units of p to the order.
//
// If a line for the same product already exists its quantity is increased
// and its price_at_order is kept. Otherwise a new line is appended with the
// product's current price.
//
// The order's total item count must fit in an int; a quantity that would
// overflow it is rejected with errs.InvalidQuantityError.
func (o *Order) AddItem(p *product.Product, quantity int) error {
	if quantity <= 0 || quantity > math.MaxInt-o.TotalItems() {
		return errs.NewInvalidQuantityError(quantity)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	for idx := range o.items {
		if o.items[idx].ProductID().IsEqual(p.ID()) {
			o.items[idx].quantity += quantity
			return nil
		}
	}

	item, err := NewItem(p.Snapshot(), quantity, p.Price())
	if err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

// RemoveItem drops every line for productID. Missing products are ignored.
func (o *Order) RemoveItem(productID kernel.UUID) {
	o.items = slices.DeleteFunc(o.items, func(i Item) bool {
		return i.ProductID().IsEqual(productID)
	})
}

// ContainsProduct reports whether any line references productID.
func (o *Order) ContainsProduct(productID kernel.UUID) bool {
	return slices.ContainsFunc(o.items, func(i Item) bool {
		return i.ProductID().IsEqual(productID)
	})
}

// Confirm moves a non-empty pending order to confirmed.
func (o *Order) Confirm() error {
	if len(o.items) == 0 {
		return ErrEmptyOrder
	}
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Complete moves a confirmed order to completed.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// CanCancel reports the cancel precondition without changing the order.
func (o *Order) CanCancel() error {
	return o.status.ValidateCancel()
}

// Cancel moves a pending or confirmed order to cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// TotalPrice sums the line totals.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// TotalItems sums the line quantities.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.items {
		total += item.quantity
	}
	return total
}
