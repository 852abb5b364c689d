package validator

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Built-in validator kinds.
const (
	KindRequired     = "required"
	KindStringLength = "stringlength"
	KindRegex        = "regex"
	KindInArray      = "inarray"
	KindBetween      = "between"
	KindCallback     = "callback"
	KindSafeHTML     = "safehtml"
	KindSchema       = "schema"
)

// Factory builds a validator from options.
type Factory func(options Options) (Validator, error)

// Registry maps validator kinds to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry holding the built-in kinds.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry constructs a registry with the built-in kinds registered.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.registerBuiltins()
	return reg
}

// NewEmptyRegistry constructs a registry without any kinds.
func NewEmptyRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for kind. Kinds are unique; registering a kind
// twice is an error.
func (r *Registry) Register(kind string, factory Factory) error {
	key := normalizeKind(kind)
	if key == "" {
		return fmt.Errorf("validator: kind is required")
	}
	if factory == nil {
		return fmt.Errorf("validator: factory for %q is nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("validator: kind %q already registered", kind)
	}
	r.factories[key] = factory
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Create builds a validator of the given kind.
func (r *Registry) Create(kind string, options Options) (Validator, error) {
	r.mu.RLock()
	factory, ok := r.factories[normalizeKind(kind)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, kind)
	}

	v, err := factory(options)
	if err != nil {
		return nil, fmt.Errorf("validator: create %q: %w", kind, err)
	}
	return v, nil
}

// CreateSpec builds the validator described by spec.
func (r *Registry) CreateSpec(spec Spec) (Validator, error) {
	return r.Create(spec.Kind, spec.Options)
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[normalizeKind(kind)]
	return ok
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func (r *Registry) registerBuiltins() {
	r.MustRegister(KindRequired, NewRequired)
	r.MustRegister(KindStringLength, NewStringLength)
	r.MustRegister(KindRegex, NewRegex)
	r.MustRegister(KindInArray, NewInArray)
	r.MustRegister(KindBetween, NewBetween)
	r.MustRegister(KindCallback, NewCallback)
	r.MustRegister(KindSafeHTML, NewSafeHTML)
	r.MustRegister(KindSchema, NewSchema)
}

// normalizeKind folds case so lookups ignore capitalisation. Casers keep
// state, so one is built per call.
func normalizeKind(kind string) string {
	return cases.Fold().String(strings.TrimSpace(kind))
}
