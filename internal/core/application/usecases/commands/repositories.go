// Package commands contains business operations that modify system state.
// Every command is validated on construction, and its handler runs the
// warehouse service inside a unit of work: commit on success, rollback on
// any error or early return.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides the product repository bound to a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides the order repository bound to a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UoW spans products and orders, which every warehouse command touches
	// through the warehouse service.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   svc := services.NewWarehouseService(uow.ProductRepository(), uow.OrderRepository())
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ProductRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates a new unit of work per command.
	UoWFactory interface {
		Create() UoW
	}
)
