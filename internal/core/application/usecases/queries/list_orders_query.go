package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders oldest first, optionally in one status.
//
// Example:
//
//	query, err := NewListOrdersQuery("pending")
//	if err != nil {
//	    return fmt.Errorf("invalid status filter: %w", err)
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts an empty status for "all orders". Any other
// value must name a lifecycle status.
func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if status == "" {
		return q, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = &parsed
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, or nil when every order is requested.
func (q ListOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	status := *q.status
	return &status
}
