// Package guard provides a defensive construction pattern for commands,
// queries and domain objects. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable, so code paths can insist that objects were
// built through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error. This ensures validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails Validate, which distinguishes constructor-built instances from
// direct struct literals.
//
// Example usage:
//
//	type AssignItemCommand struct {
//	    itemID int64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewAssignItemCommand(itemID int64) (AssignItemCommand, error) {
//	    return AssignItemCommand{itemID: itemID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AssignItemCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object went through its constructor.
// Returns nil for constructed objects, validationError for zero values, and
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
