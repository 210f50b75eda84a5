// Package ports defines the contracts between the warehouse core and its
// infrastructure: repositories, the unit of work and outbound events.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
// Absence is reported as *errs.ObjectNotFoundError with ParamName "product".
type ProductRepository interface {
	// Add persists a new product and returns its stored form with an assigned identity.
	// A product whose name is already stored is rejected with a validation error.
	Add(ctx context.Context, p *product.Product) (*product.Product, error)

	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByName looks a product up by its exact (trimmed) name.
	GetByName(ctx context.Context, name string) (*product.Product, error)

	// List returns every product ordered by name.
	List(ctx context.Context) ([]*product.Product, error)

	// ListInStock returns products with quantity > 0, ordered by name.
	ListInStock(ctx context.Context) ([]*product.Product, error)

	// Update persists name, quantity and price. Unknown identities fail with not found.
	Update(ctx context.Context, p *product.Product) (*product.Product, error)

	// Delete reports whether a product was found and removed.
	Delete(ctx context.Context, id kernel.UUID) (bool, error)
}
