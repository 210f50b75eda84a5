// Package order provides the Order aggregate of the warehouse and its lines.
//
// The package includes:
//   - Order: the aggregate root holding order lines, creation time and status
//   - Item: an order line binding a product snapshot to a quantity and the
//     price that was locked in when the line was added
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - Lines are merged by product identity; the first price_at_order wins
//   - An order without lines cannot be confirmed
//   - Status follows pending -> confirmed -> completed, and pending or
//     confirmed orders may be cancelled
//   - Nothing leaves completed or cancelled
//
// Stock is not managed here. Keeping product stock consistent with order state
// is the job of the warehouse service.
package order
