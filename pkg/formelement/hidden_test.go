package formelement_test

import (
	"testing"

	"github.com/goliatone/go-formhtml/pkg/formelement"
)

func TestHiddenElement_ProtectedKeepsFirstValue(t *testing.T) {
	el, err := formelement.NewHidden("csrf", formelement.WithAttribute("protected", true))
	if err != nil {
		t.Fatalf("NewHidden: %v", err)
	}
	if !el.IsProtected() {
		t.Fatalf("protected attribute should reach the element")
	}

	if err := el.SetValue("token-1"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := el.SetValue("forged"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := el.Attributes().Set("value", "forged-through-attributes"); err != nil {
		t.Fatalf("Set value: %v", err)
	}
	if el.Value() != "token-1" {
		t.Fatalf("protected value overwritten: %#v", el.Value())
	}

	rendered, err := el.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := `<input type="hidden" name="csrf" value="token-1">`; rendered != want {
		t.Fatalf("Render() = %q, want %q", rendered, want)
	}
}

func TestHiddenElement_UnprotectedAcceptsWrites(t *testing.T) {
	el, err := formelement.NewHidden("step")
	if err != nil {
		t.Fatalf("NewHidden: %v", err)
	}
	for _, value := range []string{"1", "2"} {
		if err := el.Attributes().Set("value", value); err != nil {
			t.Fatalf("Set value: %v", err)
		}
	}
	if el.Value() != "2" {
		t.Fatalf("value = %#v, want 2", el.Value())
	}
}

func TestHiddenElement_ProtectedAcceptsFirstWriteAfterNil(t *testing.T) {
	el, err := formelement.NewHidden("id")
	if err != nil {
		t.Fatalf("NewHidden: %v", err)
	}
	el.SetProtected(true)
	if err := el.SetValue(""); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := el.SetValue("42"); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if el.Value() != "42" {
		t.Fatalf("value = %#v, want 42", el.Value())
	}
}

func TestHiddenElement_CloneKeepsProtection(t *testing.T) {
	el, err := formelement.NewHidden("csrf", formelement.WithAttribute("protected", "1"), formelement.WithAttribute("value", "t"))
	if err != nil {
		t.Fatalf("NewHidden: %v", err)
	}
	cloned, err := el.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if err := cloned.Attributes().Set("value", "other"); err != nil {
		t.Fatalf("Set value: %v", err)
	}
	if cloned.Value() != "t" || cloned.Name() != "csrf" || cloned.Type() != "hidden" {
		t.Fatalf("clone = %q %q %#v", cloned.Name(), cloned.Type(), cloned.Value())
	}
}
