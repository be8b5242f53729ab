package geometry

import "github.com/pkg/errors"

// Broken invariants (a negative radius, rings of different lengths) are
// programmer errors, so constructors panic instead of returning an error. The
// panic value is always an *InvariantError, which lets a caller at an API
// boundary recover it with HandlePanicRecover. Any other panic, runtime errors
// included, is passed through.

type InvariantError struct {
	err error
}

func (e *InvariantError) Error() string {
	return e.err.Error()
}

func (e *InvariantError) Unwrap() error {
	return e.err
}

// Panic with an InvariantError.
func fatalf(format string, args ...interface{}) {
	panic(&InvariantError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if invariantError, ok := r.(*InvariantError); ok {
			return invariantError
		}
		panic(r)
	}
	return nil
}
