// Package guard provides a construction check for value objects, commands,
// and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value, keeping invariants enforced at the construction boundary.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does
// not supply its own error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value fails validation, which is the whole point: a struct built
// with a literal instead of its New... function carries a zero guard.
//
// Example:
//
//	type Meal struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMeal(name string) (Meal, error) {
//	    if name == "" {
//	        return Meal{}, errs.NewValueIsRequiredError("meal name")
//	    }
//	    return Meal{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Meal) Validate() error {
//	    return m.guard.Validate(ErrMealIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
