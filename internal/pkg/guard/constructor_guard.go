// Package guard provides the constructor guard used by domain objects, commands
// and queries to tell a constructed value apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded value was
// not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a
// private field and check it from the owner's Validate method.
//
// Example:
//
//	var ErrReviewOrderCommandIsNotConstructed = errors.New(
//	    "ReviewOrderCommand must be created via NewReviewOrderCommand constructor")
//
//	type ReviewOrderCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ReviewOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrReviewOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
