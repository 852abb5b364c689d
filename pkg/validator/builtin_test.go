package validator_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhtml/pkg/validator"
)

func mustCreate(t *testing.T, kind string, options validator.Options) validator.Validator {
	t.Helper()
	v, err := validator.NewRegistry().Create(kind, options)
	if err != nil {
		t.Fatalf("Create %s: %v", kind, err)
	}
	return v
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		options validator.Options
		value   any
		valid   bool
	}{
		{name: "required string", kind: validator.KindRequired, value: "x", valid: true},
		{name: "required blank", kind: validator.KindRequired, value: "   ", valid: false},
		{name: "required nil", kind: validator.KindRequired, value: nil, valid: false},
		{name: "required empty list", kind: validator.KindRequired, value: []string{}, valid: false},
		{name: "required zero", kind: validator.KindRequired, value: 0, valid: true},

		{name: "length within", kind: validator.KindStringLength, options: validator.Options{"min": 2, "max": 3}, value: "abc", valid: true},
		{name: "length short", kind: validator.KindStringLength, options: validator.Options{"min": 2}, value: "a", valid: false},
		{name: "length counts runes", kind: validator.KindStringLength, options: validator.Options{"max": 2}, value: "äö", valid: true},
		{name: "length long", kind: validator.KindStringLength, options: validator.Options{"max": 2}, value: "abc", valid: false},
		{name: "length list", kind: validator.KindStringLength, options: validator.Options{"max": 2}, value: []string{"a"}, valid: false},

		{name: "regex match", kind: validator.KindRegex, options: validator.Options{"pattern": `^\d+$`}, value: "123", valid: true},
		{name: "regex mismatch", kind: validator.KindRegex, options: validator.Options{"pattern": `^\d+$`}, value: "12a", valid: false},
		{name: "regex number", kind: validator.KindRegex, options: validator.Options{"pattern": `^\d+$`}, value: 42, valid: true},

		{name: "inarray hit", kind: validator.KindInArray, options: validator.Options{"haystack": []any{"a", "b"}}, value: "b", valid: true},
		{name: "inarray miss", kind: validator.KindInArray, options: validator.Options{"haystack": []string{"a", "b"}}, value: "B", valid: false},
		{name: "inarray ignorecase", kind: validator.KindInArray, options: validator.Options{"haystack": []string{"a", "b"}, "ignorecase": true}, value: "B", valid: true},
		{name: "inarray list", kind: validator.KindInArray, options: validator.Options{"haystack": []string{"a", "b"}}, value: []string{"a", "b"}, valid: true},
		{name: "inarray list miss", kind: validator.KindInArray, options: validator.Options{"haystack": []string{"a", "b"}}, value: []any{"a", "c"}, valid: false},

		{name: "between inside", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: "10", valid: true},
		{name: "between below", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: 0.5, valid: false},
		{name: "between text", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: "ten", valid: false},
		{name: "between nan text", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: "NaN", valid: false},
		{name: "between nan float", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: math.NaN(), valid: false},
		{name: "between inf", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: "-Inf", valid: false},
		{name: "between int16", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: int16(5), valid: true},
		{name: "between uint8", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: uint8(5), valid: true},
		{name: "between int8 below", kind: validator.KindBetween, options: validator.Options{"min": 1, "max": 10}, value: int8(-3), valid: false},
		{name: "between uint16 options", kind: validator.KindBetween, options: validator.Options{"min": uint16(1), "max": int8(10)}, value: 7, valid: true},

		{name: "callback bool", kind: validator.KindCallback, options: validator.Options{"callback": func(v any) bool { return v == "ok" }}, value: "ok", valid: true},
		{name: "callback error", kind: validator.KindCallback, options: validator.Options{"callback": func(any) error { return errors.New("nope") }}, value: "ok", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustCreate(t, tt.kind, tt.options)
			if got := v.IsValid(tt.value); got != tt.valid {
				t.Fatalf("IsValid(%v) = %v, want %v (messages %v)", tt.value, got, tt.valid, v.Messages())
			}
			if tt.valid && len(v.Messages()) != 0 {
				t.Fatalf("valid value should not leave messages, got %v", v.Messages())
			}
			if !tt.valid && len(v.Messages()) == 0 {
				t.Fatalf("invalid value should leave a message")
			}
		})
	}
}

func TestBuiltins_InvalidOptions(t *testing.T) {
	tests := []struct {
		kind    string
		options validator.Options
	}{
		{kind: validator.KindStringLength, options: validator.Options{"min": 5, "max": 2}},
		{kind: validator.KindStringLength, options: validator.Options{"min": 1.5}},
		{kind: validator.KindRegex, options: nil},
		{kind: validator.KindRegex, options: validator.Options{"pattern": 12}},
		{kind: validator.KindInArray, options: nil},
		{kind: validator.KindInArray, options: validator.Options{"haystack": "a"}},
		{kind: validator.KindBetween, options: validator.Options{"min": 1}},
		{kind: validator.KindBetween, options: validator.Options{"min": 3, "max": 1}},
		{kind: validator.KindBetween, options: validator.Options{"min": "NaN", "max": 1}},
		{kind: validator.KindCallback, options: validator.Options{"callback": "strings.ToUpper"}},
		{kind: validator.KindSafeHTML, options: validator.Options{"policy": "loose"}},
		{kind: validator.KindSchema, options: nil},
		{kind: validator.KindSchema, options: validator.Options{"schema": "{not json"}},
	}
	for _, tt := range tests {
		_, err := validator.NewRegistry().Create(tt.kind, tt.options)
		if !errors.Is(err, validator.ErrInvalidOptions) {
			t.Fatalf("Create(%s, %v) error = %v, want ErrInvalidOptions", tt.kind, tt.options, err)
		}
	}
}

func TestBuiltins_MessagesResetBetweenCalls(t *testing.T) {
	v := mustCreate(t, validator.KindStringLength, validator.Options{"min": 3})
	if v.IsValid("a") {
		t.Fatalf("expected failure")
	}
	if diff := cmp.Diff([]string{"String should be 3 characters long or more"}, v.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if !v.IsValid("abcd") {
		t.Fatalf("expected success")
	}
	if len(v.Messages()) != 0 {
		t.Fatalf("messages should reset, got %v", v.Messages())
	}
}

func TestInArray_ReportsEveryMissingItem(t *testing.T) {
	v := mustCreate(t, validator.KindInArray, validator.Options{"haystack": []string{"a"}})
	v.IsValid([]string{"x", "a", "y"})
	want := []string{`"x" was not found in the haystack`, `"y" was not found in the haystack`}
	if diff := cmp.Diff(want, v.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestCallback_ErrorBecomesMessage(t *testing.T) {
	v := mustCreate(t, validator.KindCallback, validator.Options{
		"callback": func(value any) error {
			if s, _ := value.(string); strings.HasPrefix(s, "+") {
				return nil
			}
			return errors.New("phone numbers start with +")
		},
	})
	if v.IsValid("0049") {
		t.Fatalf("expected failure")
	}
	if diff := cmp.Diff([]string{"phone numbers start with +"}, v.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}
