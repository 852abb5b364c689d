package formelement

// HiddenElement is an <input type="hidden">. A protected hidden element keeps
// its first non-nil value and ignores later writes.
type HiddenElement struct {
	InputElement
	protected bool
}

// NewHidden creates a hidden element. The extra protected attribute is
// write-only.
func NewHidden(name string, opts ...ElementOption) (*HiddenElement, error) {
	cfg := newElementConfig(opts)
	e := &HiddenElement{InputElement: InputElement{BaseFormElement: newBaseFormElement("input", cfg)}}
	if err := e.bind(e, "hidden"); err != nil {
		return nil, err
	}
	if err := e.Attributes().RegisterAttributeCallback("protected", nil, func(value any) error {
		return setFlag(value, e.SetProtected)
	}); err != nil {
		return nil, err
	}
	if err := e.apply(name, cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// IsProtected reports whether writes are ignored once a value is held.
func (e *HiddenElement) IsProtected() bool {
	return e.protected
}

// SetProtected toggles write protection.
func (e *HiddenElement) SetProtected(protected bool) {
	e.protected = protected
}

// SetValue stores value unless the element is protected and already holds
// a value.
func (e *HiddenElement) SetValue(value any) error {
	if e.protected && e.value != nil {
		return nil
	}
	return e.InputElement.SetValue(value)
}

// Clone returns an unvalidated copy with its own attribute bindings.
func (e *HiddenElement) Clone() (*HiddenElement, error) {
	cloned, err := NewHidden("", WithRegistry(e.registry))
	if err != nil {
		return nil, err
	}
	if err := e.copyInto(&cloned.BaseFormElement); err != nil {
		return nil, err
	}
	cloned.inputType = e.inputType
	cloned.protected = e.protected
	return cloned, nil
}

// CloneElement implements Element.
func (e *HiddenElement) CloneElement() (Element, error) {
	return e.Clone()
}
