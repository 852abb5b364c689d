package formelement

import (
	"strings"

	"github.com/goliatone/go-formhtml/pkg/html"
)

// DefaultInputType is used when an input is created without a type.
const DefaultInputType = "text"

// InputElement renders an <input> of a configurable type.
type InputElement struct {
	BaseFormElement
	inputType string
}

// NewInput creates an input element. Attribute options are applied through
// the element callbacks before name is set.
func NewInput(inputType, name string, opts ...ElementOption) (*InputElement, error) {
	cfg := newElementConfig(opts)
	e := &InputElement{BaseFormElement: newBaseFormElement("input", cfg)}
	if err := e.bind(e, inputType); err != nil {
		return nil, err
	}
	if err := e.apply(name, cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// bind registers the type binding ahead of the shared callbacks so the type
// renders first.
func (e *InputElement) bind(owner ValueOwner, inputType string) error {
	e.SetType(inputType)
	err := e.Attributes().RegisterAttributeCallback("type",
		func() (any, error) { return html.Create("type", e.inputType) },
		func(value any) error { return setText(value, e.SetType) },
	)
	if err != nil {
		return err
	}
	return e.RegisterAttributeCallbacks(owner)
}

// Type returns the input type.
func (e *InputElement) Type() string {
	return e.inputType
}

// SetType changes the input type. Blank types fall back to DefaultInputType.
func (e *InputElement) SetType(inputType string) {
	inputType = strings.ToLower(strings.TrimSpace(inputType))
	if inputType == "" {
		inputType = DefaultInputType
	}
	e.inputType = inputType
}

// Clone returns an unvalidated copy with its own attribute bindings.
func (e *InputElement) Clone() (*InputElement, error) {
	cloned, err := NewInput(e.inputType, "", WithRegistry(e.registry))
	if err != nil {
		return nil, err
	}
	if err := e.copyInto(&cloned.BaseFormElement); err != nil {
		return nil, err
	}
	return cloned, nil
}

// CloneElement implements Element.
func (e *InputElement) CloneElement() (Element, error) {
	return e.Clone()
}
