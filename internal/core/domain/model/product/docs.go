// Package product provides the Product entity of the warehouse catalog.
//
// A product has a name, a stock quantity and a unit price. Stock changes only
// through ReduceQuantity and IncreaseQuantity, both of which reject
// non-positive amounts, and reducing never takes stock below zero.
//
// Key business rules:
//   - Name is trimmed and must not be empty
//   - Quantity is never negative
//   - Price is strictly greater than zero
//   - Identity is assigned by the repository on first persist
package product
