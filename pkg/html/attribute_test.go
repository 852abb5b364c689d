package html_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhtml/pkg/html"
)

func simpleAttribute() *html.Attribute {
	return html.MustCreate("class", "simple")
}

func TestAttribute_Render(t *testing.T) {
	tests := []struct {
		name  string
		attr  *html.Attribute
		want  string
		value string
	}{
		{name: "scalar", attr: simpleAttribute(), want: `class="simple"`, value: "simple"},
		{name: "list", attr: html.MustCreate("class", []string{"two", "classes"}), want: `class="two classes"`, value: "two classes"},
		{name: "true", attr: html.MustCreate("required", true), want: "required"},
		{name: "false", attr: html.MustCreate("name", false), want: ""},
		{name: "nil", attr: html.MustCreate("name", nil), want: ""},
		{name: "empty list", attr: html.MustCreate("name", []string{}), want: ""},
		{name: "empty string", attr: html.MustCreate("name", ""), want: ""},
		{name: "number", attr: html.MustCreate("maxlength", 12), want: `maxlength="12"`, value: "12"},
		{name: "mixed list", attr: html.MustCreate("data-range", []any{1, "to", 2.5}), want: `data-range="1 to 2.5"`, value: "1 to 2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.Render(); got != tt.want {
				t.Fatalf("Render() = %q, want %q", got, tt.want)
			}
			if got := tt.attr.RenderValue(); got != tt.value {
				t.Fatalf("RenderValue() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestAttribute_NameAndValue(t *testing.T) {
	attr := simpleAttribute()
	if attr.Name() != "class" {
		t.Fatalf("unexpected name %q", attr.Name())
	}
	if got := attr.Value(); !got.Equal(html.String("simple")) {
		t.Fatalf("unexpected value %#v", got.Any())
	}
}

func TestAttribute_SetValueReplacesAddedValues(t *testing.T) {
	got := simpleAttribute().AddValue("byebye").SetValue(html.String("changed")).Render()
	if got != `class="changed"` {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestAttribute_SetValueEmptyStringIsAbsent(t *testing.T) {
	attr := simpleAttribute().SetValue(html.String(""))
	if attr.Value().Kind() != html.KindAbsent {
		t.Fatalf("expected absent value, got %s", attr.Value().Kind())
	}
}

func TestAttribute_AddValueKeepsOrder(t *testing.T) {
	attr := simpleAttribute().AddValue("one").AddValue("more")

	if got := attr.Render(); got != `class="simple one more"` {
		t.Fatalf("unexpected render %q", got)
	}
	if diff := cmp.Diff([]string{"simple", "one", "more"}, attr.Value().Any()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestAttribute_AddValueKeepsDuplicates(t *testing.T) {
	attr := html.MustCreate("class", []string{"a"}).AddValue("b", "a")
	if diff := cmp.Diff([]string{"a", "b", "a"}, attr.Value().Strings()); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestAttribute_AddValueToAbsentBehavesLikeSet(t *testing.T) {
	attr := html.MustCreate("class", nil).AddValue("first")
	if attr.Value().Kind() != html.KindString {
		t.Fatalf("expected scalar, got %s", attr.Value().Kind())
	}
	if got := attr.Render(); got != `class="first"` {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestAttribute_AddValueReplacesBoolean(t *testing.T) {
	attr := html.MustCreate("hidden", true).AddValue("until-found")
	if attr.Value().Kind() != html.KindString {
		t.Fatalf("expected scalar, got %s", attr.Value().Kind())
	}
	if got := attr.Render(); got != `hidden="until-found"` {
		t.Fatalf("unexpected render %q", got)
	}

	attrs := html.NewAttributes(html.MustCreate("class", []string{"a", "b"}))
	if err := attrs.Add("class", true); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, err := attrs.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != " class" {
		t.Fatalf("Render() = %q, want %q", got, " class")
	}
}

func TestAttribute_RemoveValue(t *testing.T) {
	tests := []struct {
		name   string
		attr   *html.Attribute
		remove []string
		want   any
	}{
		{name: "scalar match", attr: html.MustCreate("name", "value"), remove: []string{"value"}, want: nil},
		{name: "scalar noop", attr: html.MustCreate("name", "value"), remove: []string{"noop"}, want: "value"},
		{name: "list match", attr: html.MustCreate("class", []string{"foo", "bar"}), remove: []string{"bar"}, want: []string{"foo"}},
		{name: "list noop", attr: html.MustCreate("class", []string{"foo", "bar"}), remove: []string{"baz"}, want: []string{"foo", "bar"}},
		{name: "list value on scalar", attr: html.MustCreate("class", "foo"), remove: []string{"foo"}, want: nil},
		{name: "list value on scalar noop", attr: html.MustCreate("class", "foo"), remove: []string{"bar"}, want: "foo"},
		{name: "boolean untouched", attr: html.MustCreate("disabled", true), remove: []string{"disabled"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.attr.RemoveValue(tt.remove...).Value().Any()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAttribute_Escaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "special characters", in: `“‘>"&<’”`, want: `“‘&gt;&quot;&amp;&lt;’”`},
		{name: "umlauts", in: "süß", want: "süß"},
		{name: "single quote", in: "it's", want: "it's"},
		{name: "entities are encoded again", in: "&amp;", want: "&amp;amp;"},
		{name: "invalid utf-8", in: "a\xffb", want: "a�b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := html.MustCreate("x", tt.in).RenderValue(); got != tt.want {
				t.Fatalf("RenderValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttribute_EmojisAreAllowed(t *testing.T) {
	if got := html.MustCreate("heart", "♥").Render(); got != `heart="♥"` {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestAttribute_ComplexValueIsEscaped(t *testing.T) {
	got := html.MustCreate("data-some-thing", `"sweet" & - $ ist <süß>`).Render()
	want := `data-some-thing="&quot;sweet&quot; &amp; - $ ist &lt;süß&gt;"`
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestCreate_RejectsUnsupportedNames(t *testing.T) {
	for _, name := range []string{"a_a", "", "1a", "a b"} {
		if _, err := html.Create(name, "sa"); !errors.Is(err, html.ErrInvalidInput) {
			t.Fatalf("Create(%q) error = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestCreate_RejectsUnsupportedValues(t *testing.T) {
	_, err := html.Create("data-x", map[string]string{"a": "b"})
	if !html.IsInvalidInput(err) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	_, err = html.Create("data-x", []any{"a", struct{}{}})
	if !html.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for list item, got %v", err)
	}
}

func TestAttribute_CloneIsDetached(t *testing.T) {
	attr := html.MustCreate("class", []string{"a", "b"})
	clone := attr.Clone()
	clone.AddValue("c")

	if got := attr.Render(); got != `class="a b"` {
		t.Fatalf("original changed: %q", got)
	}
	if got := clone.Render(); got != `class="a b c"` {
		t.Fatalf("unexpected clone render %q", got)
	}
}
