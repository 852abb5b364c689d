package formdef

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhtml/pkg/formelement"
)

// ErrUnknownForm is returned when a store has no definition for a name.
var ErrUnknownForm = errors.New("formdef: unknown form")

// Store holds loaded definitions keyed by form name.
type Store struct {
	forms map[string]Definition
}

// LoadFS walks fsys and parses every .yaml, .yml and .json file. Form names
// must be unique across files. A nil fsys yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("formdef: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Forms {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("formdef: file %s defines an empty form name", path)
			}
			if existing, exists := store.forms[name]; exists {
				return fmt.Errorf("formdef: duplicate form %q (files %s and %s)", name, existing.Source, path)
			}
			if err := checkElements(raw.Elements, name, path); err != nil {
				return err
			}
			store.forms[name] = Definition{
				Name:       name,
				Source:     path,
				Method:     raw.Method,
				Action:     raw.Action,
				Attributes: raw.Attributes,
				Elements:   raw.Elements,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Form returns the definition registered under name.
func (s *Store) Form(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.forms[name]
	return def, ok
}

// Names returns the form names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.forms))
	for name := range s.forms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// Build builds the form registered under name.
func (s *Store) Build(name string, opts ...formelement.FormOption) (*formelement.Form, error) {
	def, ok := s.Form(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return Build(def, opts...)
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("formdef: file %s is empty", source)
	}
	// JSON documents are valid YAML, so one decoder keeps attribute order for
	// both formats.
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("formdef: parse %s: %w", source, err)
	}
	return doc, nil
}

func checkElements(elements []ElementDefinition, form, source string) error {
	seen := make(map[string]struct{}, len(elements))
	for _, el := range elements {
		name := strings.TrimSpace(el.Name)
		if name == "" {
			return fmt.Errorf("formdef: form %q (file %s) has an element without a name", form, source)
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("formdef: form %q (file %s) defines duplicate element %q", form, source, name)
		}
		seen[name] = struct{}{}

		if strings.EqualFold(el.Type, TypeMulti) {
			if len(el.Prototype) == 0 {
				return fmt.Errorf("formdef: form %q (file %s) multi element %q needs a prototype", form, source, name)
			}
			if err := checkElements(el.Prototype, form, source); err != nil {
				return err
			}
		}
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
