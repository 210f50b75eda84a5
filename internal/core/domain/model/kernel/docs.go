// Package kernel holds the value objects shared by the warehouse aggregates.
//
// UUID identifies products and orders. Its zero value is meaningful: an entity
// that has not been persisted yet carries a zero UUID and receives its identity
// from the repository that stores it.
package kernel
