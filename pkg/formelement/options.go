package formelement

import (
	"fmt"

	"github.com/goliatone/go-formhtml/pkg/validator"
)

// ElementOption configures element constructors.
type ElementOption func(*elementConfig)

type attributeEntry struct {
	name  string
	value any
}

type elementConfig struct {
	registry   *validator.Registry
	attributes []attributeEntry
}

// WithRegistry sets the registry used to build validators by kind.
func WithRegistry(registry *validator.Registry) ElementOption {
	return func(cfg *elementConfig) {
		cfg.registry = registry
	}
}

// WithAttribute adds an attribute applied after the element callbacks are
// registered, so bound names such as label or validators reach the element
// state. Attributes are applied in option order.
func WithAttribute(name string, value any) ElementOption {
	return func(cfg *elementConfig) {
		cfg.attributes = append(cfg.attributes, attributeEntry{name: name, value: value})
	}
}

func newElementConfig(opts []ElementOption) elementConfig {
	var cfg elementConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// apply adds the configured attributes and then sets the element name.
func (b *BaseFormElement) apply(name string, cfg elementConfig) error {
	attrs := b.Attributes()
	for _, entry := range cfg.attributes {
		if err := attrs.Add(entry.name, entry.value); err != nil {
			return fmt.Errorf("formelement: %s attribute %q: %w", name, entry.name, err)
		}
	}
	if name != "" {
		b.name = name
	}
	return nil
}
