// Package guard provides the constructor guard pattern used by domain value objects
// and entities to ensure they are only created through their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed properly and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its constructor
// function or as a zero value. Embedding a guard in a struct and setting it via
// NewConstructorGuard inside the constructor makes zero-value instances fail
// validation, which keeps invariants of domain objects intact.
//
// Example:
//
//	type Battery struct {
//	    current int
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewBattery(current int) (Battery, error) {
//	    return Battery{current: current, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (b Battery) Validate() error {
//	    return b.guard.Validate(ErrBatteryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the enclosing object was created through its constructor.
// For zero-value guards it returns notConstructedErr, or ErrDefaultConstructorGuard
// when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
