package html

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by attribute and element operations.
var (
	// ErrInvalidInput reports malformed caller input such as an attribute name
	// outside NamePattern or a value that has no attribute representation.
	ErrInvalidInput = errors.New("html: invalid input")
	// ErrState groups state conflicts on an Attributes collection.
	ErrState = errors.New("html: state conflict")
	// ErrCallbackRegistered is returned when a name already has callbacks.
	ErrCallbackRegistered = fmt.Errorf("%w: attribute callback already registered", ErrState)
	// ErrReadOnlyAttribute is returned when writing a getter-only name.
	ErrReadOnlyAttribute = fmt.Errorf("%w: attribute is read-only", ErrState)
	// ErrCallbackFailed wraps an error returned by a getter callback.
	ErrCallbackFailed = errors.New("html: attribute callback failed")
	// ErrUnexpectedValue reports a getter returning something other than an
	// *Attribute or nil.
	ErrUnexpectedValue = errors.New("html: attribute callback returned unexpected value")
)

// IsInvalidInput checks if err reports invalid caller input.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStateError checks if err is a callback registration or read-only conflict.
func IsStateError(err error) bool {
	return errors.Is(err, ErrState)
}
