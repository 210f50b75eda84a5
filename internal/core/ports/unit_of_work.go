package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transactional boundary of the warehouse.
// Everything written through its repositories between Begin and Commit is
// applied together; Rollback discards all of it.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit applies the current transaction.
	// Returns error if no transaction is active or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	// Returns error if no transaction is active; deferred calls ignore it.
	Rollback(ctx context.Context) error

	// ProductRepository returns a repository bound to the current transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
