package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one product by identity.
type GetProductQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.UUID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() kernel.UUID {
	return q.productID
}
