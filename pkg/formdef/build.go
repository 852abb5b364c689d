package formdef

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formhtml/pkg/formelement"
	"github.com/goliatone/go-formhtml/pkg/validator"
)

// ErrUnknownElementType is returned for element types that are neither an
// input type nor one of TypeHidden and TypeMulti.
var ErrUnknownElementType = errors.New("formdef: unknown element type")

var inputTypes = map[string]struct{}{
	"button": {}, "checkbox": {}, "color": {}, "date": {}, "datetime-local": {},
	"email": {}, "file": {}, "image": {}, "month": {}, "number": {},
	"password": {}, "radio": {}, "range": {}, "reset": {}, "search": {},
	"submit": {}, "tel": {}, "text": {}, "time": {}, "url": {}, "week": {},
}

// Build creates a form from def. Form options are applied after the method
// and action of the definition, so they take precedence.
func Build(def Definition, opts ...formelement.FormOption) (*formelement.Form, error) {
	formOpts := []formelement.FormOption{
		formelement.WithMethod(def.Method),
		formelement.WithAction(def.Action),
	}
	form := formelement.NewForm(append(formOpts, opts...)...)

	for _, attr := range def.Attributes {
		if err := form.Attributes().Set(attr.Name, attr.Value); err != nil {
			return nil, fmt.Errorf("formdef: form %q attribute %q: %w", def.Name, attr.Name, err)
		}
	}

	for _, elDef := range def.Elements {
		el, err := buildElement(elDef, form.ValidatorRegistry())
		if err != nil {
			return nil, fmt.Errorf("formdef: form %q: %w", def.Name, err)
		}
		if err := form.AddElement(el); err != nil {
			return nil, fmt.Errorf("formdef: form %q: %w", def.Name, err)
		}
	}
	return form, nil
}

// BuildElement creates a single element from def.
func BuildElement(def ElementDefinition, registry *validator.Registry) (formelement.Element, error) {
	return buildElement(def, registry)
}

func buildElement(def ElementDefinition, registry *validator.Registry) (formelement.Element, error) {
	opts := []formelement.ElementOption{formelement.WithRegistry(registry)}
	for _, attr := range def.Attributes {
		opts = append(opts, formelement.WithAttribute(attr.Name, attr.Value))
	}

	var (
		el         formelement.Element
		validators func(...any) error
		err        error
	)
	kind := strings.ToLower(strings.TrimSpace(def.Type))
	switch {
	case kind == TypeHidden:
		var hidden *formelement.HiddenElement
		if hidden, err = formelement.NewHidden(def.Name, opts...); err == nil {
			el, validators = hidden, hidden.AddValidators
		}
	case kind == TypeMulti:
		var prototype *formelement.Container
		if prototype, err = buildContainer(def.Prototype, registry); err != nil {
			return nil, fmt.Errorf("element %q prototype: %w", def.Name, err)
		}
		var multi *formelement.MultiInstanceElement
		if multi, err = formelement.NewMultiInstance(def.Name, prototype, opts...); err == nil {
			el, validators = multi, multi.AddValidators
		}
	case kind == "" || isInputType(kind):
		var input *formelement.InputElement
		if input, err = formelement.NewInput(kind, def.Name, opts...); err == nil {
			el, validators = input, input.AddValidators
		}
	default:
		return nil, fmt.Errorf("%w: %q (element %q)", ErrUnknownElementType, def.Type, def.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", def.Name, err)
	}

	if len(def.Validators) > 0 {
		if err := validators([]validator.Spec(def.Validators)); err != nil {
			return nil, fmt.Errorf("element %q validators: %w", def.Name, err)
		}
	}
	return el, nil
}

func buildContainer(defs []ElementDefinition, registry *validator.Registry) (*formelement.Container, error) {
	container := &formelement.Container{}
	for _, def := range defs {
		el, err := buildElement(def, registry)
		if err != nil {
			return nil, err
		}
		if err := container.AddElement(el); err != nil {
			return nil, err
		}
	}
	return container, nil
}

func isInputType(kind string) bool {
	_, ok := inputTypes[kind]
	return ok
}
