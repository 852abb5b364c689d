package html

import (
	"fmt"
	"regexp"
)

// NamePattern restricts attribute names accepted by Create and SetName.
// Replace it to widen or narrow the accepted character set.
var NamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9:-]*$`)

// Attribute is a single name/value pair of an element's opening tag.
type Attribute struct {
	name  string
	value Value

	// proxy receives the value after every mutation when the attribute was
	// handed out for a name bound to a setter callback.
	proxy func(Value) error
	err   error
}

// Create validates name and converts value with ValueOf.
func Create(name string, value any) (*Attribute, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	v, err := ValueOf(value)
	if err != nil {
		return nil, fmt.Errorf("html: attribute %q: %w", name, err)
	}
	return &Attribute{name: name, value: v}, nil
}

// MustCreate mirrors Create but panics on error.
func MustCreate(name string, value any) *Attribute {
	attr, err := Create(name, value)
	if err != nil {
		panic(err)
	}
	return attr
}

// ValidateName checks name against NamePattern.
func ValidateName(name string) error {
	if !NamePattern.MatchString(name) {
		return fmt.Errorf("%w: attribute name %q contains unsupported characters", ErrInvalidInput, name)
	}
	return nil
}

// Name returns the attribute name.
func (a *Attribute) Name() string {
	return a.name
}

// SetName renames the attribute.
func (a *Attribute) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	a.name = name
	return nil
}

// Value returns the current value.
func (a *Attribute) Value() Value {
	return a.value
}

// SetValue replaces the current value.
func (a *Attribute) SetValue(value Value) *Attribute {
	a.value = value
	a.changed()
	return a
}

// AddValue appends values. An absent or boolean value is replaced, anything
// else becomes a list keeping existing items first. Duplicates are kept.
func (a *Attribute) AddValue(values ...string) *Attribute {
	switch len(values) {
	case 0:
		return a
	case 1:
		a.value = a.value.merge(String(values[0]))
	default:
		a.value = a.value.merge(List(values...))
	}
	a.changed()
	return a
}

// RemoveValue removes values from a list, or clears a scalar equal to one of
// them. Other values are left untouched.
func (a *Attribute) RemoveValue(values ...string) *Attribute {
	a.value = a.value.remove(values)
	a.changed()
	return a
}

// Err returns the last error reported by a proxied setter callback.
func (a *Attribute) Err() error {
	return a.err
}

func (a *Attribute) changed() {
	if a.proxy == nil {
		return
	}
	if err := a.proxy(a.value); err != nil {
		a.err = err
	}
}

// Render returns the attribute as it appears in an opening tag. Empty values
// render nothing, true renders the bare name.
func (a *Attribute) Render() string {
	switch {
	case a.value.IsEmpty():
		return ""
	case a.value.IsTrue():
		return a.name
	default:
		return a.name + `="` + a.RenderValue() + `"`
	}
}

// RenderValue returns the escaped value without the name.
func (a *Attribute) RenderValue() string {
	return Escape(a.value.String())
}

// String implements fmt.Stringer using Render.
func (a *Attribute) String() string {
	return a.Render()
}

// Clone returns a detached copy that does not forward to any setter.
func (a *Attribute) Clone() *Attribute {
	return &Attribute{name: a.name, value: a.value.clone()}
}
