package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var _ ports.ProductRepository = (*ProductRepository)(nil)

type ProductRepository struct {
	access
}

// NewProductRepository returns a repository that locks the store per call.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{access: access{store: store}}
}

func (r *ProductRepository) Add(_ context.Context, p *product.Product) (*product.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	defer r.write()()

	if _, found := r.findByName(p.Name()); found {
		return nil, errs.NewValidationError(fmt.Sprintf("product with name '%s' already exists", p.Name()))
	}

	rec := productFromDomain(p)
	if p.ID().IsZero() {
		rec.id = uuid.New()
	} else if _, exists := r.store.products[rec.id]; exists {
		return nil, errs.NewValidationError(fmt.Sprintf("product %s already exists", rec.id))
	}
	r.store.products[rec.id] = rec

	return rec.toDomain()
}

func (r *ProductRepository) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	defer r.read()()

	rec, ok := r.store.products[id.Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id)
	}
	return rec.toDomain()
}

func (r *ProductRepository) GetByName(_ context.Context, name string) (*product.Product, error) {
	defer r.read()()

	rec, ok := r.findByName(strings.TrimSpace(name))
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", name)
	}
	return rec.toDomain()
}

func (r *ProductRepository) List(_ context.Context) ([]*product.Product, error) {
	defer r.read()()
	return r.list(func(productRecord) bool { return true })
}

func (r *ProductRepository) ListInStock(_ context.Context) ([]*product.Product, error) {
	defer r.read()()
	return r.list(func(rec productRecord) bool { return rec.quantity > 0 })
}

func (r *ProductRepository) Update(_ context.Context, p *product.Product) (*product.Product, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	defer r.write()()

	if _, ok := r.store.products[p.ID().Bytes()]; !ok {
		return nil, errs.NewObjectNotFoundError("product", p.ID())
	}
	if other, found := r.findByName(p.Name()); found && other.id != p.ID().Bytes() {
		return nil, errs.NewValidationError(fmt.Sprintf("product with name '%s' already exists", p.Name()))
	}

	rec := productFromDomain(p)
	r.store.products[rec.id] = rec
	return rec.toDomain()
}

func (r *ProductRepository) Delete(_ context.Context, id kernel.UUID) (bool, error) {
	defer r.write()()

	if _, ok := r.store.products[id.Bytes()]; !ok {
		return false, nil
	}
	delete(r.store.products, id.Bytes())
	return true, nil
}

func (r *ProductRepository) findByName(name string) (productRecord, bool) {
	for _, rec := range r.store.products {
		if rec.name == name {
			return rec, true
		}
	}
	return productRecord{}, false
}

func (r *ProductRepository) list(keep func(productRecord) bool) ([]*product.Product, error) {
	records := make([]productRecord, 0, len(r.store.products))
	for _, rec := range r.store.products {
		if keep(rec) {
			records = append(records, rec)
		}
	}
	slices.SortFunc(records, func(a, b productRecord) int {
		return strings.Compare(a.name, b.name)
	})

	products := make([]*product.Product, 0, len(records))
	for _, rec := range records {
		p, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func productFromDomain(p *product.Product) productRecord {
	return productRecord{
		id:       p.ID().Bytes(),
		name:     p.Name(),
		quantity: p.Quantity(),
		price:    p.Price(),
	}
}

func (rec productRecord) toDomain() (*product.Product, error) {
	id, err := kernel.UUIDFromGoogle(rec.id)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(id, rec.name, rec.quantity, rec.price)
}
