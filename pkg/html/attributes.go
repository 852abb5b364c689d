package html

import (
	"fmt"
	"strings"
)

// AttributeGetter produces the attribute for a bound name. It must return an
// *Attribute or nil; any other result is reported as ErrUnexpectedValue.
type AttributeGetter func() (any, error)

// AttributeSetter receives values written to a bound name.
type AttributeSetter func(value any) error

type binding struct {
	getter AttributeGetter
	setter AttributeSetter
}

// Attributes is an ordered collection of attributes plus a table of callback
// bindings. A bound name is owned by its callbacks: reads go through the
// getter and writes through the setter, the stored attributes are not
// consulted. The zero value is ready to use.
type Attributes struct {
	order    []string
	attrs    map[string]*Attribute
	bindings map[string]binding
	bound    []string
}

// NewAttributes returns a collection holding attrs in the given order. Later
// attributes with the same name replace earlier ones in place.
func NewAttributes(attrs ...*Attribute) *Attributes {
	a := &Attributes{}
	for _, attr := range attrs {
		if attr != nil {
			a.put(attr)
		}
	}
	return a
}

// RegisterAttributeCallback binds name to getter and setter, either of which
// may be nil. A name can only be bound once.
func (a *Attributes) RegisterAttributeCallback(name string, getter AttributeGetter, setter AttributeSetter) error {
	if getter == nil && setter == nil {
		return fmt.Errorf("%w: callbacks for %q are nil", ErrInvalidInput, name)
	}
	if _, exists := a.bindings[name]; exists {
		return fmt.Errorf("%w: %q", ErrCallbackRegistered, name)
	}
	if a.bindings == nil {
		a.bindings = make(map[string]binding)
	}
	a.bindings[name] = binding{getter: getter, setter: setter}
	a.bound = append(a.bound, name)
	return nil
}

// HasCallback reports whether name is bound to callbacks.
func (a *Attributes) HasCallback(name string) bool {
	_, ok := a.bindings[name]
	return ok
}

// Get returns the attribute for name, or nil when there is none. Bound names
// are resolved through their getter; when the name also has a setter, later
// mutations of the returned attribute are forwarded to it.
func (a *Attributes) Get(name string) (*Attribute, error) {
	b, ok := a.bindings[name]
	if !ok || b.getter == nil {
		return a.attrs[name], nil
	}

	result, err := b.getter()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCallbackFailed, name, err)
	}

	switch attr := result.(type) {
	case nil:
		return nil, nil
	case *Attribute:
		if attr == nil {
			return nil, nil
		}
		if setter := b.setter; setter != nil {
			attr.proxy = func(v Value) error {
				return setter(v.Any())
			}
		}
		return attr, nil
	default:
		return nil, fmt.Errorf("%w: %q returned %T", ErrUnexpectedValue, name, result)
	}
}

// Has reports whether name has a getter or a stored attribute.
func (a *Attributes) Has(name string) bool {
	if b, ok := a.bindings[name]; ok && b.getter != nil {
		return true
	}
	_, ok := a.attrs[name]
	return ok
}

// Set replaces the value of name. Bound names are handed to their setter.
func (a *Attributes) Set(name string, value any) error {
	if handled, err := a.dispatch(name, value); handled {
		return err
	}
	v, err := ValueOf(value)
	if err != nil {
		return fmt.Errorf("html: set %q: %w", name, err)
	}
	if attr, ok := a.attrs[name]; ok {
		attr.SetValue(v)
		return nil
	}
	attr, err := Create(name, v)
	if err != nil {
		return err
	}
	a.put(attr)
	return nil
}

// Add merges value into name following Attribute.AddValue. Bound names are
// handed to their setter.
func (a *Attributes) Add(name string, value any) error {
	if handled, err := a.dispatch(name, value); handled {
		return err
	}
	v, err := ValueOf(value)
	if err != nil {
		return fmt.Errorf("html: add %q: %w", name, err)
	}
	if attr, ok := a.attrs[name]; ok {
		attr.value = attr.value.merge(v)
		attr.changed()
		return nil
	}
	attr, err := Create(name, v)
	if err != nil {
		return err
	}
	a.put(attr)
	return nil
}

// SetAttribute stores attr, replacing an attribute with the same name in
// place. Bound names receive the attribute value through their setter.
func (a *Attributes) SetAttribute(attr *Attribute) error {
	if attr == nil {
		return fmt.Errorf("%w: attribute is nil", ErrInvalidInput)
	}
	if handled, err := a.dispatch(attr.name, attr.value.Any()); handled {
		return err
	}
	a.put(attr)
	return nil
}

// Merge adds every stored attribute of other to the collection.
func (a *Attributes) Merge(other *Attributes) error {
	if other == nil {
		return nil
	}
	for _, attr := range other.List() {
		if err := a.Add(attr.name, attr.value); err != nil {
			return err
		}
	}
	return nil
}

// Remove removes values from the stored attribute name, or the whole
// attribute when no values are given.
func (a *Attributes) Remove(name string, values ...string) {
	if len(values) == 0 {
		a.Delete(name)
		return
	}
	if attr, ok := a.attrs[name]; ok {
		attr.RemoveValue(values...)
	}
}

// Delete drops the stored attribute name. Callback bindings are kept.
func (a *Attributes) Delete(name string) {
	if _, ok := a.attrs[name]; !ok {
		return
	}
	delete(a.attrs, name)
	for idx, existing := range a.order {
		if existing == name {
			a.order = append(a.order[:idx], a.order[idx+1:]...)
			break
		}
	}
}

// List returns the stored attributes in insertion order.
func (a *Attributes) List() []*Attribute {
	out := make([]*Attribute, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.attrs[name])
	}
	return out
}

// Len returns the number of stored attributes.
func (a *Attributes) Len() int {
	return len(a.order)
}

// Render returns the attributes as written into an opening tag, prefixed with
// a space when not empty. Getter-backed names come first in registration
// order, followed by stored attributes in insertion order.
func (a *Attributes) Render() (string, error) {
	parts := make([]string, 0, len(a.bound)+len(a.order))
	for _, name := range a.bound {
		if a.bindings[name].getter == nil {
			continue
		}
		attr, err := a.Get(name)
		if err != nil {
			return "", err
		}
		if attr == nil {
			continue
		}
		if rendered := attr.Render(); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	for _, name := range a.order {
		if b, ok := a.bindings[name]; ok && b.getter != nil {
			continue
		}
		if rendered := a.attrs[name].Render(); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " " + strings.Join(parts, " "), nil
}

// Clone copies the stored attributes. Callback bindings belong to the owner
// of the collection and are not copied.
func (a *Attributes) Clone() *Attributes {
	cloned := &Attributes{}
	for _, attr := range a.List() {
		cloned.put(attr.Clone())
	}
	return cloned
}

func (a *Attributes) dispatch(name string, value any) (bool, error) {
	b, ok := a.bindings[name]
	if !ok {
		return false, nil
	}
	if b.setter == nil {
		return true, fmt.Errorf("%w: %q", ErrReadOnlyAttribute, name)
	}
	return true, b.setter(value)
}

func (a *Attributes) put(attr *Attribute) {
	if a.attrs == nil {
		a.attrs = make(map[string]*Attribute)
	}
	if _, exists := a.attrs[attr.name]; !exists {
		a.order = append(a.order, attr.name)
	}
	a.attrs[attr.name] = attr
}
