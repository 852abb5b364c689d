package formelement

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-formhtml/pkg/html"
)

var (
	// ErrDuplicateElement is returned when a container already holds an
	// element with the same name.
	ErrDuplicateElement = fmt.Errorf("%w: duplicate element", html.ErrState)
	// ErrUnnamedElement is returned when adding an element without a name.
	ErrUnnamedElement = fmt.Errorf("%w: element name is required", html.ErrInvalidInput)
	// ErrUnsupportedValue is returned when a value cannot be assigned to an
	// element.
	ErrUnsupportedValue = fmt.Errorf("%w: unsupported element value", html.ErrInvalidInput)
)

// IsDuplicateElement checks if err reports a name collision in a container.
func IsDuplicateElement(err error) bool {
	return errors.Is(err, ErrDuplicateElement)
}
