package prompt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhtml/pkg/formelement"
	"github.com/goliatone/go-formhtml/pkg/prompt"
)

// scriptedDriver replays answers and, like survey, asks again while the
// validator rejects an answer.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	asked    []string
	rejected []string
	infos    []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	for len(d.inputs) > 0 {
		answer := d.inputs[0]
		d.inputs = d.inputs[1:]
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				d.rejected = append(d.rejected, err.Error())
				continue
			}
		}
		return answer, nil
	}
	return "", errors.New("no input scripted")
}

func (d *scriptedDriver) Password(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.confirms) == 0 {
		return false, errors.New("no confirm scripted")
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func buildForm(t *testing.T) *formelement.Form {
	t.Helper()
	must := func(el formelement.Element, err error) formelement.Element {
		t.Helper()
		if err != nil {
			t.Fatalf("build element: %v", err)
		}
		return el
	}

	phone := must(formelement.NewInput("tel", "phone", formelement.WithAttribute("label", "Phone")))
	prototype, err := formelement.NewContainer(phone)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	form := formelement.NewForm()
	for _, el := range []formelement.Element{
		must(formelement.NewInput("email", "email",
			formelement.WithAttribute("label", "E-Mail"),
			formelement.WithAttribute("validators", map[string]any{"regex": map[string]any{"pattern": "@"}}),
		)),
		must(formelement.NewHidden("token", formelement.WithAttribute("value", "abc"))),
		must(formelement.NewInput("checkbox", "newsletter")),
		must(formelement.NewInput("submit", "send")),
		must(formelement.NewMultiInstance("contacts", prototype, formelement.WithAttribute("label", "Contact"))),
	} {
		if err := form.AddElement(el); err != nil {
			t.Fatalf("AddElement: %v", err)
		}
	}
	return form
}

func TestFill_PromptsVisibleElements(t *testing.T) {
	form := buildForm(t)
	driver := &scriptedDriver{
		inputs:   []string{"not-an-email", "a@example.com", "+49 30 1"},
		confirms: []bool{true, true, false},
	}

	if err := prompt.Fill(context.Background(), driver, form); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	wantAsked := []string{"E-Mail", "newsletter", "Add Contact #1?", "Contact #1 Phone", "Add Contact #2?"}
	if diff := cmp.Diff(wantAsked, driver.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if len(driver.rejected) != 1 {
		t.Fatalf("expected one rejected answer, got %v", driver.rejected)
	}
	if diff := cmp.Diff([]string{"Contact #1"}, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}

	want := map[string]any{
		"email":      "a@example.com",
		"token":      "abc",
		"newsletter": "on",
		"send":       nil,
		"contacts":   map[string]any{"0": map[string]any{"phone": "+49 30 1"}},
	}
	if diff := cmp.Diff(want, form.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if !form.IsValid() {
		t.Fatalf("filled form should be valid: %v", form.ElementMessages())
	}
}

func TestFill_PropagatesDriverErrors(t *testing.T) {
	err := prompt.Fill(context.Background(), &scriptedDriver{}, buildForm(t))
	if err == nil {
		t.Fatalf("expected error when the driver runs out of answers")
	}
	if err := prompt.Fill(context.Background(), nil, buildForm(t)); err == nil {
		t.Fatalf("expected error for nil driver")
	}
}
