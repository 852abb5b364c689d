package formelement

import (
	"fmt"
	"strings"
)

// Container holds named elements in insertion order.
type Container struct {
	elements []Element
	index    map[string]Element
}

// NewContainer returns a container holding elements.
func NewContainer(elements ...Element) (*Container, error) {
	c := &Container{}
	for _, el := range elements {
		if err := c.AddElement(el); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddElement appends el. Names must be unique within the container.
func (c *Container) AddElement(el Element) error {
	if el == nil {
		return fmt.Errorf("%w: element is nil", ErrUnsupportedValue)
	}
	name := el.Name()
	if strings.TrimSpace(name) == "" {
		return ErrUnnamedElement
	}
	if _, exists := c.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateElement, name)
	}
	if c.index == nil {
		c.index = make(map[string]Element)
	}
	c.index[name] = el
	c.elements = append(c.elements, el)
	return nil
}

// Element returns the element registered under name.
func (c *Container) Element(name string) (Element, bool) {
	el, ok := c.index[name]
	return el, ok
}

// HasElement reports whether name is registered.
func (c *Container) HasElement(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Elements returns the elements in insertion order.
func (c *Container) Elements() []Element {
	return append([]Element(nil), c.elements...)
}

// Populate assigns values by element name. Unknown names are ignored.
func (c *Container) Populate(values map[string]any) error {
	for _, el := range c.elements {
		value, ok := values[el.Name()]
		if !ok {
			continue
		}
		if err := el.SetValue(value); err != nil {
			return fmt.Errorf("formelement: populate %q: %w", el.Name(), err)
		}
	}
	return nil
}

// Values returns the element values keyed by name, skipping ignored elements.
func (c *Container) Values() map[string]any {
	out := make(map[string]any, len(c.elements))
	for _, el := range c.elements {
		if el.IsIgnored() {
			continue
		}
		out[el.Name()] = el.Value()
	}
	return out
}

// IsValid reports whether every element is valid. All elements are checked
// so that each collects its messages.
func (c *Container) IsValid() bool {
	valid := true
	for _, el := range c.elements {
		if !el.IsValid() {
			valid = false
		}
	}
	return valid
}

// Clone returns a container holding clones of every element.
func (c *Container) Clone() (*Container, error) {
	cloned := &Container{}
	for _, el := range c.elements {
		copied, err := el.CloneElement()
		if err != nil {
			return nil, fmt.Errorf("formelement: clone %q: %w", el.Name(), err)
		}
		if err := cloned.AddElement(copied); err != nil {
			return nil, err
		}
	}
	return cloned, nil
}

// Render implements html.Renderer by concatenating the element markup.
func (c *Container) Render() (string, error) {
	var builder strings.Builder
	for _, el := range c.elements {
		out, err := el.Render()
		if err != nil {
			return "", fmt.Errorf("formelement: render %q: %w", el.Name(), err)
		}
		builder.WriteString(out)
	}
	return builder.String(), nil
}
