package commands_test

import (
	"context"

	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) GetByName(ctx context.Context, name string) (*product.Product, error) {
	args := m.Called(ctx, name)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*product.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) ListInStock(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*product.Product)
	return products, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// memoryUoWFactory hands out units of work over a shared in-memory store.
type memoryUoWFactory struct {
	store *memory.Store
}

func (f memoryUoWFactory) Create() commands.UoW {
	return memory.NewUnitOfWork(f.store)
}

func productOrNil(v any) *product.Product {
	if p, ok := v.(*product.Product); ok {
		return p
	}
	return nil
}

func orderOrNil(v any) *order.Order {
	if o, ok := v.(*order.Order); ok {
		return o
	}
	return nil
}
