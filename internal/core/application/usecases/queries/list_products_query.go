package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves the catalog ordered by name.
//
// Example:
//
//	query := NewListProductsQuery(true) // only products with stock
//	products, err := handler.Handle(ctx, query)
//	for _, p := range products {
//	    fmt.Printf("%s: %d left\n", p.Name, p.Quantity)
//	}
type ListProductsQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewListProductsQuery lists every product, or only those in stock when
// onlyAvailable is set.
func NewListProductsQuery(onlyAvailable bool) ListProductsQuery {
	return ListProductsQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}
