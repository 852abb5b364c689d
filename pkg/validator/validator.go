package validator

import (
	"fmt"

	"github.com/goliatone/go-formhtml/pkg/html"
)

var (
	// ErrUnknownValidator is returned when a kind has no registered factory.
	ErrUnknownValidator = fmt.Errorf("%w: unknown validator", html.ErrInvalidInput)
	// ErrInvalidOptions is returned when a factory rejects its options.
	ErrInvalidOptions = fmt.Errorf("%w: invalid validator options", html.ErrInvalidInput)
)

// Validator decides whether a value is valid. Messages returns the failure
// messages of the most recent IsValid call.
type Validator interface {
	IsValid(value any) bool
	Messages() []string
}

// Options configure a validator built by a Factory.
type Options map[string]any

// Spec names a validator kind and the options to build it with.
type Spec struct {
	Kind    string  `json:"kind" yaml:"kind"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// messageLog is embedded by the built-in validators.
type messageLog struct {
	messages []string
}

// Messages implements Validator.
func (m *messageLog) Messages() []string {
	return append([]string(nil), m.messages...)
}

func (m *messageLog) reset() {
	m.messages = nil
}

func (m *messageLog) fail(format string, args ...any) bool {
	m.messages = append(m.messages, fmt.Sprintf(format, args...))
	return false
}
