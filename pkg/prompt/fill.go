package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formhtml/pkg/formelement"
)

// Fill prompts for every visible element of form and stores the answers.
// Hidden and ignored elements are skipped. Each answer is validated through
// the element and its messages are handed back to the driver as the prompt
// error, so drivers can ask again.
func Fill(ctx context.Context, driver Driver, form *formelement.Form) error {
	if driver == nil || form == nil {
		return errors.New("prompt: driver and form are required")
	}
	return fillContainer(ctx, driver, form.Container, "")
}

func fillContainer(ctx context.Context, driver Driver, c *formelement.Container, prefix string) error {
	for _, el := range c.Elements() {
		if el.IsIgnored() {
			continue
		}
		var err error
		switch t := el.(type) {
		case *formelement.HiddenElement:
			continue
		case *formelement.MultiInstanceElement:
			err = fillMulti(ctx, driver, t, prefix)
		case *formelement.InputElement:
			err = fillInput(ctx, driver, t, prefix)
		default:
			err = fillText(ctx, driver, el, prefix)
		}
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", el.Name(), err)
		}
	}
	return nil
}

func fillInput(ctx context.Context, driver Driver, el *formelement.InputElement, prefix string) error {
	switch el.Type() {
	case "submit", "reset", "button", "image":
		return nil
	case "checkbox":
		checked, err := driver.Confirm(ctx, ConfirmConfig{
			Message: message(el, prefix),
			Default: el.HasValue(),
			Help:    el.Description(),
		})
		if err != nil {
			return err
		}
		if checked {
			return el.SetValue("on")
		}
		return el.SetValue(nil)
	case "password":
		answer, err := driver.Password(ctx, inputConfig(el, prefix))
		if err != nil {
			return err
		}
		return el.SetValue(answer)
	default:
		return fillText(ctx, driver, el, prefix)
	}
}

func fillText(ctx context.Context, driver Driver, el formelement.Element, prefix string) error {
	answer, err := driver.Input(ctx, inputConfig(el, prefix))
	if err != nil {
		return err
	}
	return el.SetValue(answer)
}

func fillMulti(ctx context.Context, driver Driver, el *formelement.MultiInstanceElement, prefix string) error {
	label := message(el, prefix)
	next := 0
	for _, index := range el.Indexes() {
		inst, err := el.Instance(index)
		if err != nil {
			return err
		}
		if err := fillInstance(ctx, driver, inst, label, index); err != nil {
			return err
		}
		next = index + 1
	}

	for index := next; ; index++ {
		more, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add %s #%d?", label, index+1),
			Help:    el.Description(),
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		inst, err := el.Instance(index)
		if err != nil {
			return err
		}
		if err := fillInstance(ctx, driver, inst, label, index); err != nil {
			return err
		}
	}
}

func fillInstance(ctx context.Context, driver Driver, inst *formelement.Container, label string, index int) error {
	heading := fmt.Sprintf("%s #%d", label, index+1)
	if err := driver.Info(ctx, heading); err != nil {
		return err
	}
	return fillContainer(ctx, driver, inst, heading)
}

func inputConfig(el formelement.Element, prefix string) InputConfig {
	cfg := InputConfig{
		Message: message(el, prefix),
		Help:    el.Description(),
		Validator: func(answer string) error {
			return check(el, answer)
		},
	}
	if current, ok := el.Value().(string); ok {
		cfg.Default = current
	}
	return cfg
}

// check stores answer and reports the messages added by validating it.
func check(el formelement.Element, answer string) error {
	before := len(el.Messages())
	if err := el.SetValue(answer); err != nil {
		return err
	}
	if el.IsValid() {
		return nil
	}
	return errors.New(strings.Join(el.Messages()[before:], "; "))
}

func message(el formelement.Element, prefix string) string {
	label := strings.TrimSpace(el.Label())
	if label == "" {
		label = el.Name()
	}
	if prefix == "" {
		return label
	}
	return prefix + " " + label
}
