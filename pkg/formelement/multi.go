package formelement

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goliatone/go-formhtml/pkg/html"
)

// DefaultSubformClass is the class of the wrapper rendered by
// MultiInstanceElement.
const DefaultSubformClass = "subform"

// MultiInstanceElement repeats a prototype container. Instances are cloned
// from the prototype on first access by index.
type MultiInstanceElement struct {
	BaseFormElement
	prototype *Container
	instances map[int]*Container
}

// NewMultiInstance creates a repeating element around prototype. The value
// attribute is write-only.
func NewMultiInstance(name string, prototype *Container, opts ...ElementOption) (*MultiInstanceElement, error) {
	if prototype == nil {
		return nil, fmt.Errorf("%w: multi instance %q needs a prototype", html.ErrInvalidInput, name)
	}
	cfg := newElementConfig(opts)
	e := &MultiInstanceElement{
		BaseFormElement: newBaseFormElement("div", cfg),
		prototype:       prototype,
	}
	if err := e.Attributes().Set("class", DefaultSubformClass); err != nil {
		return nil, err
	}
	if err := e.registerAttributeCallbacks(e, false); err != nil {
		return nil, err
	}
	if err := e.apply(name, cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Prototype returns the container instances are cloned from.
func (e *MultiInstanceElement) Prototype() *Container {
	return e.prototype
}

// Instance returns the instance at index, cloning the prototype when it does
// not exist yet.
func (e *MultiInstanceElement) Instance(index int) (*Container, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: negative instance index %d", html.ErrInvalidInput, index)
	}
	if inst, ok := e.instances[index]; ok {
		return inst, nil
	}
	inst, err := e.prototype.Clone()
	if err != nil {
		return nil, err
	}
	if e.instances == nil {
		e.instances = make(map[int]*Container)
	}
	e.instances[index] = inst
	return inst, nil
}

// Indexes returns the indexes of existing instances in ascending order.
func (e *MultiInstanceElement) Indexes() []int {
	out := make([]int, 0, len(e.instances))
	for index := range e.instances {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// Value returns the values of every instance keyed by its decimal index.
func (e *MultiInstanceElement) Value() any {
	out := make(map[string]any, len(e.instances))
	for index, inst := range e.instances {
		out[strconv.Itoa(index)] = inst.Values()
	}
	return out
}

// HasValue reports whether any instance exists.
func (e *MultiInstanceElement) HasValue() bool {
	return len(e.instances) > 0
}

// SetValue populates instances. value is either a map keyed by decimal index
// or a slice, each entry holding the values of one instance. nil drops all
// instances.
func (e *MultiInstanceElement) SetValue(value any) error {
	e.validity = validityUnknown
	switch t := value.(type) {
	case nil:
		e.instances = nil
		return nil
	case map[string]any:
		entries := make(map[int]any, len(t))
		for key, entry := range t {
			index, err := strconv.Atoi(key)
			if err != nil || index < 0 {
				return fmt.Errorf("%w: instance key %q is not an index", ErrUnsupportedValue, key)
			}
			entries[index] = entry
		}
		return e.populateAll(entries)
	case []map[string]any:
		entries := make(map[int]any, len(t))
		for index, entry := range t {
			entries[index] = entry
		}
		return e.populateAll(entries)
	case []any:
		entries := make(map[int]any, len(t))
		for index, entry := range t {
			entries[index] = entry
		}
		return e.populateAll(entries)
	default:
		return fmt.Errorf("%w: multi instance value of type %T", ErrUnsupportedValue, value)
	}
}

// populateAll checks every entry before touching an instance, then populates
// in index order.
func (e *MultiInstanceElement) populateAll(entries map[int]any) error {
	indexes := make([]int, 0, len(entries))
	values := make(map[int]map[string]any, len(entries))
	for index, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: instance %d value of type %T", ErrUnsupportedValue, index, entry)
		}
		indexes = append(indexes, index)
		values[index] = m
	}
	sort.Ints(indexes)
	for _, index := range indexes {
		if err := e.populate(index, values[index]); err != nil {
			return err
		}
	}
	return nil
}

func (e *MultiInstanceElement) populate(index int, values map[string]any) error {
	inst, err := e.Instance(index)
	if err != nil {
		return err
	}
	return inst.Populate(values)
}

// IsValid reports whether every instance is valid. Each instance validates
// its own elements; validators on the element itself are not consulted.
func (e *MultiInstanceElement) IsValid() bool {
	valid := true
	for _, index := range e.Indexes() {
		if !e.instances[index].IsValid() {
			valid = false
		}
	}
	if valid {
		e.validity = validityValid
	} else {
		e.validity = validityInvalid
	}
	return valid
}

// Render renders the wrapper with every instance in index order. Instance
// elements are named after their position, e.g. contacts[0][email], so
// submitted names map back to instances.
func (e *MultiInstanceElement) Render() (string, error) {
	content := make([]html.Renderer, 0, len(e.instances))
	for _, index := range e.Indexes() {
		inst, err := e.instances[index].Clone()
		if err != nil {
			return "", err
		}
		for _, el := range inst.Elements() {
			if named, ok := el.(interface{ SetName(string) }); ok {
				named.SetName(InstanceName(e.name, index, el.Name()))
			}
		}
		content = append(content, inst)
	}
	return html.RenderTag(e.Tag(), e.Attributes(), content...)
}

// InstanceName returns the rendered name of element within instance index of
// the multi instance element named parent.
func InstanceName(parent string, index int, element string) string {
	return parent + "[" + strconv.Itoa(index) + "][" + element + "]"
}

// Clone returns a copy sharing no instances with e.
func (e *MultiInstanceElement) Clone() (*MultiInstanceElement, error) {
	prototype, err := e.prototype.Clone()
	if err != nil {
		return nil, err
	}
	cloned, err := NewMultiInstance("", prototype, WithRegistry(e.registry))
	if err != nil {
		return nil, err
	}
	if err := e.copyInto(&cloned.BaseFormElement); err != nil {
		return nil, err
	}
	cloned.value = nil
	for index, inst := range e.instances {
		copied, err := inst.Clone()
		if err != nil {
			return nil, err
		}
		if cloned.instances == nil {
			cloned.instances = make(map[int]*Container)
		}
		cloned.instances[index] = copied
	}
	return cloned, nil
}

// CloneElement implements Element.
func (e *MultiInstanceElement) CloneElement() (Element, error) {
	return e.Clone()
}
