// Package services provides domain services that orchestrate business operations
// across multiple aggregates of the warehouse.
//
// The package includes:
//   - WarehouseService: product and order use cases that keep product stock
//     consistent with order state
//
// Stock versus order state cannot be enforced by a single aggregate, so the
// rules live here in one place. The service performs no locking and no
// transaction handling of its own: CreateOrder and CancelOrder persist per line,
// and callers wrap each call in a unit of work to make it all-or-nothing.
package services
