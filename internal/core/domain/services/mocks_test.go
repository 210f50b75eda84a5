package services_test

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, *product.Product) (*product.Product, error)); ok {
		return fn(ctx, p)
	}
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
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) ListInStock(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) (*product.Product, error) {
	args := m.Called(ctx, p)
	if fn, ok := args.Get(0).(func(context.Context, *product.Product) (*product.Product, error)); ok {
		return fn(ctx, p)
	}
	return productOrNil(args.Get(0)), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if fn, ok := args.Get(0).(func(context.Context, *order.Order) (*order.Order, error)); ok {
		return fn(ctx, o)
	}
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if fn, ok := args.Get(0).(func(context.Context, *order.Order) (*order.Order, error)); ok {
		return fn(ctx, o)
	}
	return orderOrNil(args.Get(0)), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func productOrNil(v any) *product.Product {
	if v == nil {
		return nil
	}
	return v.(*product.Product)
}

func orderOrNil(v any) *order.Order {
	if v == nil {
		return nil
	}
	return v.(*order.Order)
}

// echoProduct and echoOrder return the entity they were given, the way a store does.
func echoProduct(_ context.Context, p *product.Product) (*product.Product, error) { return p, nil }

func echoOrder(_ context.Context, o *order.Order) (*order.Order, error) { return o, nil }
