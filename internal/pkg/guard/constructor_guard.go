// Package guard detects values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in entities and commands. Only NewConstructorGuard
// produces a constructed guard, so a zero-value struct fails Validate.
//
//	type RestockProductCommand struct {
//	    productID kernel.UUID
//	    quantity  int
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c RestockProductCommand) Validate() error {
//	    return c.guard.Validate(ErrRestockProductCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// for a guard that was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
