package formelement_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhtml/pkg/formelement"
)

func TestMapErrors(t *testing.T) {
	form := formelement.NewForm()
	email := newInput(t, "email")
	contacts := newContacts(t)
	if err := contacts.SetValue([]any{map[string]any{"email": "a@example.com"}}); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	for _, el := range []formelement.Element{email, contacts} {
		if err := form.AddElement(el); err != nil {
			t.Fatalf("AddElement: %v", err)
		}
	}

	mapping := formelement.MapErrors(form, map[string][]string{
		"/body/email":        {" taken ", "taken"},
		"contacts[0].phone":  {"invalid phone"},
		"contacts.7.email":   {"no such instance"},
		"non_field_errors":   {"try again later"},
		"unknown":            {"lost field"},
		"email.confirmation": {"does not match"},
		"empty":              {"   "},
	})

	want := formelement.ErrorMapping{
		Fields: map[string][]string{
			"email":            {"taken", "does not match"},
			"contacts.0.phone": {"invalid phone"},
			"contacts":         {"no such instance"},
		},
		Form: []string{"try again later", "lost field"},
	}
	if diff := cmp.Diff(want, mapping); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"taken", "does not match"}, email.Messages()); diff != "" {
		t.Fatalf("email messages mismatch (-want +got):\n%s", diff)
	}
	inst, _ := contacts.Instance(0)
	phone, _ := inst.Element("phone")
	if diff := cmp.Diff([]string{"invalid phone"}, phone.Messages()); diff != "" {
		t.Fatalf("phone messages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"try again later", "lost field"}, form.Messages()); diff != "" {
		t.Fatalf("form messages mismatch (-want +got):\n%s", diff)
	}
}
