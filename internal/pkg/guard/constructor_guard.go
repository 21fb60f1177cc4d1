// Package guard lets value objects and commands detect that they were built
// through their constructor rather than declared as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types whose zero value is not usable.
// Constructors set it with NewConstructorGuard; Validate fails for the zero value.
//
// Example:
//
//	type AddItemCommand struct {
//	    quantity int
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c AddItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
