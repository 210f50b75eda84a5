package commands

import (
	"context"

	"warehouse/internal/core/domain/services"
)

// inTransaction runs fn against a warehouse service bound to a fresh unit of
// work. The work is committed only when fn succeeds; the deferred rollback
// covers every other exit path and is a no-op after a successful commit.
func inTransaction[T any](
	ctx context.Context,
	factory UoWFactory,
	fn func(svc *services.WarehouseService) (T, error),
) (T, error) {
	var zero T

	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	svc := services.NewWarehouseService(uow.ProductRepository(), uow.OrderRepository())
	result, err := fn(svc)
	if err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return result, nil
}
