package validator

import (
	"fmt"
	stdhtml "html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer policy names accepted by the safehtml "policy" option.
const (
	PolicyStrict = "strict"
	PolicyUGC    = "ugc"
)

var (
	policyOnce   sync.Once
	strictPolicy *bluemonday.Policy
	ugcPolicy    *bluemonday.Policy
)

func initPolicies() {
	policyOnce.Do(func() {
		// strict strips all markup
		strictPolicy = bluemonday.StrictPolicy()

		// ugc allows inline formatting in free text fields
		ugcPolicy = bluemonday.NewPolicy()
		ugcPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
	})
}

// SafeHTML accepts values that a sanitizer policy leaves untouched, comparing
// text after entity decoding so that escaped and raw ampersands are equal.
type SafeHTML struct {
	messageLog
	Policy *bluemonday.Policy
	name   string
}

// NewSafeHTML is the Factory for KindSafeHTML. Options: policy ("strict" or
// "ugc", default strict).
func NewSafeHTML(options Options) (Validator, error) {
	name, _, err := options.Text("policy")
	if err != nil {
		return nil, err
	}
	initPolicies()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyStrict:
		return &SafeHTML{Policy: strictPolicy, name: PolicyStrict}, nil
	case PolicyUGC:
		return &SafeHTML{Policy: ugcPolicy, name: PolicyUGC}, nil
	default:
		return nil, fmt.Errorf("%w: unknown safehtml policy %q", ErrInvalidOptions, name)
	}
}

// IsValid implements Validator.
func (v *SafeHTML) IsValid(value any) bool {
	v.reset()
	s, ok := stringOf(value)
	if !ok {
		return v.fail("Invalid type given, string expected")
	}
	cleaned := v.Policy.Sanitize(s)
	if stdhtml.UnescapeString(cleaned) != stdhtml.UnescapeString(s) {
		return v.fail("Value contains markup not allowed by the %s policy", v.name)
	}
	return true
}
