package memory

import (
	"context"
	"errors"

	"warehouse/internal/core/ports"
)

var (
	ErrTransactionAlreadyStarted = errors.New("transaction already started")
	ErrNoActiveTransaction       = errors.New("no active transaction")
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork serializes transactions by holding the store's write lock from
// Begin until Commit or Rollback. Rollback puts back the state captured at Begin.
//
// Repositories returned by a UnitOfWork must only be used between Begin and
// Commit/Rollback.
type UnitOfWork struct {
	store    *Store
	products *ProductRepository
	orders   *OrderRepository
	saved    *state
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	locked := access{store: store, locked: true}
	return &UnitOfWork{
		store:    store,
		products: &ProductRepository{access: locked},
		orders:   &OrderRepository{access: locked},
	}
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.saved != nil {
		return ErrTransactionAlreadyStarted
	}
	u.store.mu.Lock()
	saved := u.store.snapshot()
	u.saved = &saved
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.saved == nil {
		return ErrNoActiveTransaction
	}
	u.saved = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.saved == nil {
		return ErrNoActiveTransaction
	}
	u.store.restore(*u.saved)
	u.saved = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) ProductRepository() ports.ProductRepository {
	return u.products
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.orders
}

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}
