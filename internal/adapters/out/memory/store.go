// Package memory keeps products and orders in process memory.
//
// It implements the same repository contracts as the PostgreSQL adapter and
// serves the binary when STORAGE_DRIVER=memory as well as tests. Entities are
// stored as plain records and rebuilt through the domain constructors on read,
// so callers never share state with the store.
package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the shared in-memory state. A UnitOfWork holds its write lock for
// the whole transaction.
type Store struct {
	mu        sync.RWMutex
	products  map[uuid.UUID]productRecord
	orders    map[uuid.UUID]orderRecord
	nextOrder int64
}

func NewStore() *Store {
	return &Store{
		products: make(map[uuid.UUID]productRecord),
		orders:   make(map[uuid.UUID]orderRecord),
	}
}

type productRecord struct {
	id       uuid.UUID
	name     string
	quantity int
	price    decimal.Decimal
}

type itemRecord struct {
	product      productRecord
	quantity     int
	priceAtOrder decimal.Decimal
}

type orderRecord struct {
	id        uuid.UUID
	seq       int64
	createdAt time.Time
	status    string
	items     []itemRecord
}

// state is a copy of the store contents used to undo a transaction.
type state struct {
	products  map[uuid.UUID]productRecord
	orders    map[uuid.UUID]orderRecord
	nextOrder int64
}

// snapshot must be called with the write lock held.
func (s *Store) snapshot() state {
	orders := make(map[uuid.UUID]orderRecord, len(s.orders))
	for id, o := range s.orders {
		o.items = slices.Clone(o.items)
		orders[id] = o
	}
	return state{
		products:  maps.Clone(s.products),
		orders:    orders,
		nextOrder: s.nextOrder,
	}
}

// restore must be called with the write lock held.
func (s *Store) restore(st state) {
	s.products = st.products
	s.orders = st.orders
	s.nextOrder = st.nextOrder
}

// access wraps the store for one repository. When locked is true the caller
// (a UnitOfWork) already holds the write lock.
type access struct {
	store  *Store
	locked bool
}

func (a access) read() func() {
	if a.locked {
		return func() {}
	}
	a.store.mu.RLock()
	return a.store.mu.RUnlock
}

func (a access) write() func() {
	if a.locked {
		return func() {}
	}
	a.store.mu.Lock()
	return a.store.mu.Unlock
}
