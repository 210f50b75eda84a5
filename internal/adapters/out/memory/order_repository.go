package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

var _ ports.OrderRepository = (*OrderRepository)(nil)

type OrderRepository struct {
	access
}

// NewOrderRepository returns a repository that locks the store per call.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{access: access{store: store}}
}

func (r *OrderRepository) Add(_ context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	defer r.write()()

	rec := orderFromDomain(o)
	if o.ID().IsZero() {
		rec.id = uuid.New()
	} else if _, exists := r.store.orders[rec.id]; exists {
		return nil, errs.NewValidationError(fmt.Sprintf("order %s already exists", rec.id))
	}
	r.store.nextOrder++
	rec.seq = r.store.nextOrder
	r.store.orders[rec.id] = rec

	return rec.toDomain()
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	defer r.read()()

	rec, ok := r.store.orders[id.Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return rec.toDomain()
}

func (r *OrderRepository) List(_ context.Context) ([]*order.Order, error) {
	defer r.read()()
	return r.list(func(orderRecord) bool { return true })
}

func (r *OrderRepository) ListByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	defer r.read()()
	return r.list(func(rec orderRecord) bool { return rec.status == status.String() })
}

// Update stores the status only, matching the PostgreSQL adapter.
func (r *OrderRepository) Update(_ context.Context, o *order.Order) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	defer r.write()()

	rec, ok := r.store.orders[o.ID().Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", o.ID())
	}
	rec.status = o.Status().String()
	r.store.orders[rec.id] = rec

	return rec.toDomain()
}

func (r *OrderRepository) Delete(_ context.Context, id kernel.UUID) (bool, error) {
	defer r.write()()

	if _, ok := r.store.orders[id.Bytes()]; !ok {
		return false, nil
	}
	delete(r.store.orders, id.Bytes())
	return true, nil
}

func (r *OrderRepository) list(keep func(orderRecord) bool) ([]*order.Order, error) {
	records := make([]orderRecord, 0, len(r.store.orders))
	for _, rec := range r.store.orders {
		if keep(rec) {
			records = append(records, rec)
		}
	}
	slices.SortFunc(records, func(a, b orderRecord) int {
		return cmp.Or(a.createdAt.Compare(b.createdAt), cmp.Compare(a.seq, b.seq))
	})

	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func orderFromDomain(o *order.Order) orderRecord {
	items := o.Items()
	rec := orderRecord{
		id:        o.ID().Bytes(),
		createdAt: o.CreatedAt(),
		status:    o.Status().String(),
		items:     make([]itemRecord, 0, len(items)),
	}
	for _, item := range items {
		snapshot := item.Product()
		rec.items = append(rec.items, itemRecord{
			product:      productFromDomain(&snapshot),
			quantity:     item.Quantity(),
			priceAtOrder: item.PriceAtOrder(),
		})
	}
	return rec
}

func (rec orderRecord) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(rec.id)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(rec.status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(rec.items))
	for _, itemRec := range rec.items {
		p, err := itemRec.product.toDomain()
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(p.Snapshot(), itemRec.quantity, itemRec.priceAtOrder)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, items, rec.createdAt, status)
}
