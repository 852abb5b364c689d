package formdef

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhtml/pkg/validator"
)

// Element types besides the HTML input types.
const (
	TypeHidden = "hidden"
	TypeMulti  = "multi"
)

// Definition describes one form.
type Definition struct {
	Name       string
	Source     string
	Method     string
	Action     string
	Attributes AttributeList
	Elements   []ElementDefinition
}

// ElementDefinition describes one element. Prototype is only used by multi
// elements.
type ElementDefinition struct {
	Name       string              `yaml:"name"`
	Type       string              `yaml:"type"`
	Attributes AttributeList       `yaml:"attributes"`
	Validators ValidatorList       `yaml:"validators"`
	Prototype  []ElementDefinition `yaml:"prototype"`
}

// Attribute is a single name/value entry of an AttributeList.
type Attribute struct {
	Name  string
	Value any
}

// AttributeList is an attribute mapping that keeps document order.
type AttributeList []Attribute

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *AttributeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("formdef: line %d: attributes must be a mapping", node.Line)
	}
	out := make(AttributeList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var decoded any
		if err := value.Decode(&decoded); err != nil {
			return fmt.Errorf("formdef: line %d: attribute %q: %w", value.Line, key.Value, err)
		}
		out = append(out, Attribute{Name: key.Value, Value: decoded})
	}
	*l = out
	return nil
}

// ValidatorList is written either as a sequence of kinds or {kind, options}
// entries, or as a mapping of kind to options. Mapping order is kept.
type ValidatorList []validator.Spec

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *ValidatorList) UnmarshalYAML(node *yaml.Node) error {
	var out ValidatorList
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				out = append(out, validator.Spec{Kind: item.Value})
				continue
			}
			var spec validator.Spec
			if err := item.Decode(&spec); err != nil {
				return fmt.Errorf("formdef: line %d: validator: %w", item.Line, err)
			}
			if spec.Kind == "" {
				return fmt.Errorf("formdef: line %d: validator kind is required", item.Line)
			}
			out = append(out, spec)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			var options validator.Options
			if err := value.Decode(&options); err != nil {
				return fmt.Errorf("formdef: line %d: validator %q options: %w", value.Line, key.Value, err)
			}
			out = append(out, validator.Spec{Kind: key.Value, Options: options})
		}
	default:
		return fmt.Errorf("formdef: line %d: validators must be a sequence or a mapping", node.Line)
	}
	*l = out
	return nil
}

type documentFile struct {
	Forms map[string]formFile `yaml:"forms"`
}

type formFile struct {
	Method     string              `yaml:"method"`
	Action     string              `yaml:"action"`
	Attributes AttributeList       `yaml:"attributes"`
	Elements   []ElementDefinition `yaml:"elements"`
}
