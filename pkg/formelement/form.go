package formelement

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goliatone/go-formhtml/pkg/html"
	"github.com/goliatone/go-formhtml/pkg/validator"
)

// FormOption configures a Form.
type FormOption func(*Form)

// WithMethod sets the form method. Defaults to POST.
func WithMethod(method string) FormOption {
	return func(f *Form) {
		if method = strings.TrimSpace(method); method != "" {
			f.method = strings.ToUpper(method)
		}
	}
}

// WithAction sets the form action URL.
func WithAction(action string) FormOption {
	return func(f *Form) {
		f.action = strings.TrimSpace(action)
	}
}

// WithLogger injects the logger used by Handle.
func WithLogger(logger *slog.Logger) FormOption {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithValidatorRegistry sets the registry handed to elements built for the
// form.
func WithValidatorRegistry(registry *validator.Registry) FormOption {
	return func(f *Form) {
		if registry != nil {
			f.registry = registry
		}
	}
}

// Form is a <form> element wrapping a Container. Form level messages, such
// as errors not tied to an element, are kept in its MessageLog.
type Form struct {
	*Container
	MessageLog

	element  *html.Element
	method   string
	action   string
	logger   *slog.Logger
	registry *validator.Registry
}

// NewForm creates an empty form.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		Container: &Container{},
		element:   html.NewElement("form"),
		method:    "POST",
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry:  validator.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Method returns the form method.
func (f *Form) Method() string { return f.method }

// Action returns the form action.
func (f *Form) Action() string { return f.action }

// Logger returns the form logger.
func (f *Form) Logger() *slog.Logger { return f.logger }

// ValidatorRegistry returns the registry elements of this form should use.
func (f *Form) ValidatorRegistry() *validator.Registry { return f.registry }

// Attributes returns the attributes of the form tag. method and action are
// added at render time.
func (f *Form) Attributes() *html.Attributes {
	return f.element.Attributes()
}

// Handle populates the form from values and validates it. Validation
// failures are reported through the returned flag and element messages.
func (f *Form) Handle(ctx context.Context, values map[string]any) (bool, error) {
	if err := f.Populate(values); err != nil {
		return false, err
	}
	valid := f.IsValid()

	attrs := []any{slog.Bool("valid", valid), slog.Int("elements", len(f.elements))}
	if !valid {
		attrs = append(attrs, slog.Any("errors", f.ElementMessages()))
	}
	f.logger.DebugContext(ctx, "form handled", attrs...)
	return valid, nil
}

// ElementMessages returns the messages of every element that has any, keyed
// by name. Instances of multi elements are keyed by dotted path.
func (f *Form) ElementMessages() map[string][]string {
	out := make(map[string][]string)
	collectMessages(f.Container, "", out)
	return out
}

func collectMessages(c *Container, prefix string, dest map[string][]string) {
	for _, el := range c.elements {
		path := joinPath(prefix, el.Name())
		if messages := el.Messages(); len(messages) > 0 {
			dest[path] = messages
		}
		if multi, ok := el.(*MultiInstanceElement); ok {
			for _, index := range multi.Indexes() {
				collectMessages(multi.instances[index], joinPath(path, strconv.Itoa(index)), dest)
			}
		}
	}
}

// Render renders the form tag around its elements.
func (f *Form) Render() (string, error) {
	attrs := f.element.Attributes().Clone()
	if err := attrs.Set("method", strings.ToLower(f.method)); err != nil {
		return "", err
	}
	if f.action != "" {
		if err := attrs.Set("action", f.action); err != nil {
			return "", err
		}
	}
	return html.RenderTag("form", attrs, f.Container)
}
