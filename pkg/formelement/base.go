package formelement

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formhtml/pkg/html"
	"github.com/goliatone/go-formhtml/pkg/validator"
)

// Element is implemented by everything a Container holds.
type Element interface {
	html.Renderer
	Name() string
	Label() string
	Description() string
	Value() any
	SetValue(value any) error
	HasValue() bool
	IsRequired() bool
	IsIgnored() bool
	IsValid() bool
	Messages() []string
	AddMessage(format string, args ...any)
	AddMessages(messages ...string)
	Attributes() *html.Attributes
	CloneElement() (Element, error)
}

// ValueOwner receives values written to the value attribute. Elements that
// embed BaseFormElement pass themselves so their own SetValue is used.
type ValueOwner interface {
	SetValue(value any) error
}

type validity uint8

const (
	validityUnknown validity = iota
	validityValid
	validityInvalid
)

// BaseFormElement carries the state shared by all form elements: identity,
// value, validators and the validation outcome. It is meant to be embedded
// and must not be copied once its attribute callbacks are registered.
type BaseFormElement struct {
	*html.Element
	MessageLog

	name        string
	label       string
	description string
	required    bool
	ignored     bool
	value       any
	validators  []validator.Validator
	validity    validity
	registry    *validator.Registry
}

func newBaseFormElement(tag string, cfg elementConfig) BaseFormElement {
	return BaseFormElement{Element: html.NewElement(tag), registry: cfg.registry}
}

// Name returns the element name.
func (b *BaseFormElement) Name() string { return b.name }

// SetName renames the element.
func (b *BaseFormElement) SetName(name string) { b.name = name }

// Label returns the element label.
func (b *BaseFormElement) Label() string { return b.label }

// SetLabel sets the element label.
func (b *BaseFormElement) SetLabel(label string) { b.label = label }

// Description returns the element description.
func (b *BaseFormElement) Description() string { return b.description }

// SetDescription sets the element description.
func (b *BaseFormElement) SetDescription(description string) { b.description = description }

// IsRequired reports whether the element is marked as required.
func (b *BaseFormElement) IsRequired() bool { return b.required }

// SetRequired toggles the required flag. The flag only affects rendering;
// use the required validator to enforce a value.
func (b *BaseFormElement) SetRequired(required bool) { b.required = required }

// IsIgnored reports whether the element is left out of container values.
func (b *BaseFormElement) IsIgnored() bool { return b.ignored }

// SetIgnored toggles the ignored flag.
func (b *BaseFormElement) SetIgnored(ignored bool) { b.ignored = ignored }

// Value returns the current value.
func (b *BaseFormElement) Value() any { return b.value }

// SetValue stores value and forgets the previous validation outcome. The
// empty string is stored as nil.
func (b *BaseFormElement) SetValue(value any) error {
	if s, ok := value.(string); ok && s == "" {
		value = nil
	}
	b.value = value
	b.validity = validityUnknown
	return nil
}

// HasValue reports whether the value is set and not empty.
func (b *BaseFormElement) HasValue() bool {
	switch t := b.value.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []string:
		return len(t) > 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// ValueAttribute returns the value as a value attribute, or nil when unset.
func (b *BaseFormElement) ValueAttribute() (*html.Attribute, error) {
	if b.value == nil {
		return nil, nil
	}
	return html.Create("value", b.value)
}

// RequiredAttribute returns a boolean required attribute when the element is
// required and nil otherwise.
func (b *BaseFormElement) RequiredAttribute() *html.Attribute {
	if !b.required {
		return nil
	}
	return html.MustCreate("required", true)
}

// ValidatorRegistry returns the registry used to build validators by kind.
func (b *BaseFormElement) ValidatorRegistry() *validator.Registry {
	if b.registry == nil {
		return validator.Default()
	}
	return b.registry
}

// SetValidatorRegistry replaces the registry used by CreateValidator.
func (b *BaseFormElement) SetValidatorRegistry(registry *validator.Registry) {
	b.registry = registry
}

// Validators returns the validator chain.
func (b *BaseFormElement) Validators() []validator.Validator {
	return append([]validator.Validator(nil), b.validators...)
}

// CreateValidator builds a validator of the given kind from the registry.
func (b *BaseFormElement) CreateValidator(kind string, options validator.Options) (validator.Validator, error) {
	return b.ValidatorRegistry().Create(kind, options)
}

// SetValidators replaces the validator chain. See AddValidators for the
// accepted items.
func (b *BaseFormElement) SetValidators(items ...any) error {
	collected, err := b.collectValidators(items)
	if err != nil {
		return err
	}
	b.validators = collected
	b.validity = validityUnknown
	return nil
}

// AddValidators appends to the validator chain. Items may be a
// validator.Validator, a validator.Spec, a kind name or list of kind names, a map of kind to
// options (applied in sorted kind order), or slices of those.
func (b *BaseFormElement) AddValidators(items ...any) error {
	collected, err := b.collectValidators(items)
	if err != nil {
		return err
	}
	b.validators = append(b.validators, collected...)
	b.validity = validityUnknown
	return nil
}

func (b *BaseFormElement) collectValidators(items []any) ([]validator.Validator, error) {
	var out []validator.Validator
	for _, item := range items {
		built, err := b.buildValidators(item)
		if err != nil {
			return nil, err
		}
		out = append(out, built...)
	}
	return out, nil
}

func (b *BaseFormElement) buildValidators(item any) ([]validator.Validator, error) {
	switch t := item.(type) {
	case nil:
		return nil, nil
	case validator.Validator:
		return []validator.Validator{t}, nil
	case []validator.Validator:
		return append([]validator.Validator(nil), t...), nil
	case string:
		v, err := b.CreateValidator(t, nil)
		if err != nil {
			return nil, err
		}
		return []validator.Validator{v}, nil
	case []string:
		out := make([]validator.Validator, 0, len(t))
		for _, kind := range t {
			v, err := b.CreateValidator(kind, nil)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case validator.Spec:
		v, err := b.CreateValidator(t.Kind, t.Options)
		if err != nil {
			return nil, err
		}
		return []validator.Validator{v}, nil
	case []validator.Spec:
		out := make([]validator.Validator, 0, len(t))
		for _, spec := range t {
			built, err := b.buildValidators(spec)
			if err != nil {
				return nil, err
			}
			out = append(out, built...)
		}
		return out, nil
	case []any:
		var out []validator.Validator
		for _, entry := range t {
			built, err := b.buildValidators(entry)
			if err != nil {
				return nil, err
			}
			out = append(out, built...)
		}
		return out, nil
	case map[string]any:
		if kind, ok := t["kind"].(string); ok {
			options, err := optionsOf(t["options"])
			if err != nil {
				return nil, err
			}
			return b.buildValidators(validator.Spec{Kind: kind, Options: options})
		}
		kinds := make([]string, 0, len(t))
		for kind := range t {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		out := make([]validator.Validator, 0, len(kinds))
		for _, kind := range kinds {
			if v, ok := t[kind].(validator.Validator); ok {
				out = append(out, v)
				continue
			}
			options, err := optionsOf(t[kind])
			if err != nil {
				return nil, fmt.Errorf("formelement: validator %q: %w", kind, err)
			}
			v, err := b.CreateValidator(kind, options)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: validator item of type %T", ErrUnsupportedValue, item)
	}
}

func optionsOf(raw any) (validator.Options, error) {
	switch t := raw.(type) {
	case nil:
		return nil, nil
	case validator.Options:
		return t, nil
	case map[string]any:
		return validator.Options(t), nil
	default:
		return nil, fmt.Errorf("%w: validator options of type %T", ErrUnsupportedValue, raw)
	}
}

// IsValid validates on first use and returns the memoised outcome until the
// value or the validator chain changes.
func (b *BaseFormElement) IsValid() bool {
	if b.validity == validityUnknown {
		b.Validate()
	}
	return b.validity == validityValid
}

// HasBeenValidatedAndIsNotValid reports a known invalid outcome without
// triggering validation.
func (b *BaseFormElement) HasBeenValidatedAndIsNotValid() bool {
	return b.validity == validityInvalid
}

// Validate runs every validator against the value, appending the messages of
// each failing one. All validators run even after a failure.
func (b *BaseFormElement) Validate() *BaseFormElement {
	valid := true
	for _, v := range b.validators {
		if !v.IsValid(b.value) {
			valid = false
			b.AddMessages(v.Messages()...)
		}
	}
	if valid {
		b.validity = validityValid
	} else {
		b.validity = validityInvalid
	}
	return b
}

// RegisterAttributeCallbacks binds the element state to its attributes:
// name and value are readable and writable, label, description, validators
// and ignore are write-only, required renders only when set. Writes to value
// are routed to owner.
func (b *BaseFormElement) RegisterAttributeCallbacks(owner ValueOwner) error {
	return b.registerAttributeCallbacks(owner, true)
}

func (b *BaseFormElement) registerAttributeCallbacks(owner ValueOwner, readableValue bool) error {
	attrs := b.Attributes()

	var valueGetter html.AttributeGetter
	if readableValue {
		valueGetter = func() (any, error) { return b.ValueAttribute() }
	}

	bindings := []struct {
		name   string
		getter html.AttributeGetter
		setter html.AttributeSetter
	}{
		{
			name:   "name",
			getter: func() (any, error) { return html.Create("name", b.name) },
			setter: func(value any) error { return setText(value, b.SetName) },
		},
		{
			name:   "value",
			getter: valueGetter,
			setter: owner.SetValue,
		},
		{
			name:   "label",
			setter: func(value any) error { return setText(value, b.SetLabel) },
		},
		{
			name:   "description",
			setter: func(value any) error { return setText(value, b.SetDescription) },
		},
		{
			name:   "validators",
			setter: func(value any) error { return b.SetValidators(value) },
		},
		{
			name:   "ignore",
			setter: func(value any) error { return setFlag(value, b.SetIgnored) },
		},
		{
			name:   "required",
			getter: func() (any, error) { return b.RequiredAttribute(), nil },
			setter: func(value any) error { return setFlag(value, b.SetRequired) },
		},
	}

	for _, binding := range bindings {
		if err := attrs.RegisterAttributeCallback(binding.name, binding.getter, binding.setter); err != nil {
			return err
		}
	}
	return nil
}

// copyInto transfers configuration, value and stored attributes to a freshly
// constructed element. Validation state is not copied.
func (b *BaseFormElement) copyInto(dst *BaseFormElement) error {
	dst.name = b.name
	dst.label = b.label
	dst.description = b.description
	dst.required = b.required
	dst.ignored = b.ignored
	dst.value = cloneValue(b.value)
	dst.validators = append([]validator.Validator(nil), b.validators...)
	dst.registry = b.registry
	for _, attr := range b.Attributes().List() {
		if err := dst.Attributes().SetAttribute(attr.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func cloneValue(value any) any {
	switch t := value.(type) {
	case []string:
		return append([]string(nil), t...)
	case []any:
		return append([]any(nil), t...)
	default:
		return value
	}
}

func setText(value any, apply func(string)) error {
	v, err := html.ValueOf(value)
	if err != nil {
		return err
	}
	switch v.Kind() {
	case html.KindBool, html.KindList:
		return fmt.Errorf("%w: expected text, got %s", ErrUnsupportedValue, v.Kind())
	}
	apply(v.String())
	return nil
}

func setFlag(value any, apply func(bool)) error {
	flag, err := coerceBool(value)
	if err != nil {
		return err
	}
	apply(flag)
	return nil
}

// coerceBool reads flags written through attributes. Blank strings, "0",
// "false", "no" and "off" are false, any other text is true.
func coerceBool(value any) (bool, error) {
	switch t := value.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "0", "false", "no", "off":
			return false, nil
		default:
			return true, nil
		}
	case html.Value:
		if t.Kind() == html.KindBool {
			return t.IsTrue(), nil
		}
		return coerceBool(t.String())
	}
	v, err := html.ValueOf(value)
	if err != nil || v.Kind() != html.KindString {
		return false, fmt.Errorf("%w: expected flag, got %T", ErrUnsupportedValue, value)
	}
	n, err := strconv.ParseFloat(v.String(), 64)
	if err != nil {
		return false, fmt.Errorf("%w: expected flag, got %T", ErrUnsupportedValue, value)
	}
	return n != 0, nil
}
