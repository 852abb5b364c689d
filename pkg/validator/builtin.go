package validator

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Required fails for nil, blank strings and empty collections.
type Required struct {
	messageLog
}

// NewRequired is the Factory for KindRequired. It takes no options.
func NewRequired(Options) (Validator, error) {
	return &Required{}, nil
}

// IsValid implements Validator.
func (v *Required) IsValid(value any) bool {
	v.reset()
	if isEmpty(value) {
		return v.fail("Value is required and can't be empty")
	}
	return true
}

// StringLength bounds the rune count of the value. A zero Max means no upper
// bound.
type StringLength struct {
	messageLog
	Min int
	Max int
}

// NewStringLength is the Factory for KindStringLength. Options: min, max.
func NewStringLength(options Options) (Validator, error) {
	v := &StringLength{}
	var err error
	if v.Min, _, err = options.Int("min"); err != nil {
		return nil, err
	}
	if v.Max, _, err = options.Int("max"); err != nil {
		return nil, err
	}
	if v.Min < 0 || v.Max < 0 || (v.Max > 0 && v.Max < v.Min) {
		return nil, fmt.Errorf("%w: stringlength bounds min=%d max=%d", ErrInvalidOptions, v.Min, v.Max)
	}
	return v, nil
}

// IsValid implements Validator.
func (v *StringLength) IsValid(value any) bool {
	v.reset()
	s, ok := stringOf(value)
	if !ok {
		return v.fail("Invalid type given, string expected")
	}
	length := utf8.RuneCountInString(s)
	valid := true
	if length < v.Min {
		valid = v.fail("String should be %d characters long or more", v.Min)
	}
	if v.Max > 0 && length > v.Max {
		valid = v.fail("String should be %d characters long or less", v.Max)
	}
	return valid
}

// Regex requires the value to match a pattern.
type Regex struct {
	messageLog
	Pattern *regexp.Regexp
}

// NewRegex is the Factory for KindRegex. Options: pattern.
func NewRegex(options Options) (Validator, error) {
	pattern, ok, err := options.Text("pattern")
	if err != nil {
		return nil, err
	}
	if !ok || pattern == "" {
		return nil, fmt.Errorf("%w: regex requires a pattern", ErrInvalidOptions)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: regex pattern: %w", ErrInvalidOptions, err)
	}
	return &Regex{Pattern: re}, nil
}

// IsValid implements Validator.
func (v *Regex) IsValid(value any) bool {
	v.reset()
	s, ok := stringOf(value)
	if !ok {
		return v.fail("Invalid type given, string expected")
	}
	if !v.Pattern.MatchString(s) {
		return v.fail("%q does not match against pattern %q", s, v.Pattern.String())
	}
	return true
}

// InArray requires the value, or every item of a list value, to be part of
// Haystack.
type InArray struct {
	messageLog
	Haystack   []string
	IgnoreCase bool
}

// NewInArray is the Factory for KindInArray. Options: haystack, ignorecase.
func NewInArray(options Options) (Validator, error) {
	haystack, ok, err := options.Strings("haystack")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: inarray requires a haystack", ErrInvalidOptions)
	}
	ignoreCase, _, err := options.Bool("ignorecase")
	if err != nil {
		return nil, err
	}
	return &InArray{Haystack: haystack, IgnoreCase: ignoreCase}, nil
}

// IsValid implements Validator.
func (v *InArray) IsValid(value any) bool {
	v.reset()
	var needles []string
	switch t := value.(type) {
	case []string:
		needles = t
	case []any:
		for _, item := range t {
			s, ok := stringOf(item)
			if !ok {
				return v.fail("Invalid type given, string expected")
			}
			needles = append(needles, s)
		}
	default:
		s, ok := stringOf(value)
		if !ok {
			return v.fail("Invalid type given, string expected")
		}
		needles = []string{s}
	}

	valid := true
	for _, needle := range needles {
		if !v.contains(needle) {
			valid = v.fail("%q was not found in the haystack", needle)
		}
	}
	return valid
}

func (v *InArray) contains(needle string) bool {
	if !v.IgnoreCase {
		return slices.Contains(v.Haystack, needle)
	}
	return slices.ContainsFunc(v.Haystack, func(candidate string) bool {
		return strings.EqualFold(candidate, needle)
	})
}

// Between requires a numeric value within [Min, Max].
type Between struct {
	messageLog
	Min float64
	Max float64
}

// NewBetween is the Factory for KindBetween. Options: min, max (both required).
func NewBetween(options Options) (Validator, error) {
	minValue, hasMin, err := options.Float("min")
	if err != nil {
		return nil, err
	}
	maxValue, hasMax, err := options.Float("max")
	if err != nil {
		return nil, err
	}
	if !hasMin || !hasMax || maxValue < minValue {
		return nil, fmt.Errorf("%w: between requires min <= max", ErrInvalidOptions)
	}
	return &Between{Min: minValue, Max: maxValue}, nil
}

// IsValid implements Validator.
func (v *Between) IsValid(value any) bool {
	v.reset()
	n, ok := toFloat(value)
	if !ok {
		return v.fail("%v is not a number", value)
	}
	if n < v.Min || n > v.Max {
		return v.fail("%v is not between %v and %v", value, v.Min, v.Max)
	}
	return true
}

var errInvalidValue = errors.New("Value is invalid")

// Callback delegates validity to Fn. A returned error is the failure message.
type Callback struct {
	messageLog
	Fn func(value any) error
}

// NewCallback is the Factory for KindCallback. Options: callback, either a
// func(any) error or a func(any) bool.
func NewCallback(options Options) (Validator, error) {
	switch fn := options["callback"].(type) {
	case func(any) error:
		return &Callback{Fn: fn}, nil
	case func(any) bool:
		return &Callback{Fn: func(value any) error {
			if fn(value) {
				return nil
			}
			return errInvalidValue
		}}, nil
	default:
		return nil, fmt.Errorf("%w: callback must be func(any) error or func(any) bool, got %T", ErrInvalidOptions, options["callback"])
	}
}

// IsValid implements Validator.
func (v *Callback) IsValid(value any) bool {
	v.reset()
	if err := v.Fn(value); err != nil {
		return v.fail("%s", err.Error())
	}
	return true
}
