package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text returns the option key as a string.
func (o Options) Text(key string) (string, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidOptions, key, raw)
	}
	return s, true, nil
}

// Int returns the option key as an int. Integral floats and numeric strings
// are accepted since decoded YAML and JSON documents produce them.
func (o Options) Int(key string) (int, bool, error) {
	f, ok, err := o.Float(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	if f != math.Trunc(f) {
		return 0, true, fmt.Errorf("%w: %q must be an integer, got %v", ErrInvalidOptions, key, f)
	}
	return int(f), true, nil
}

// Float returns the option key as a float64.
func (o Options) Float(key string) (float64, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	f, ok := toFloat(raw)
	if !ok {
		return 0, true, fmt.Errorf("%w: %q must be a number, got %T", ErrInvalidOptions, key, raw)
	}
	return f, true, nil
}

// Bool returns the option key as a bool.
func (o Options) Bool(key string) (bool, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return false, false, nil
	}
	switch t := raw.(type) {
	case bool:
		return t, true, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, true, fmt.Errorf("%w: %q must be a boolean, got %q", ErrInvalidOptions, key, t)
		}
		return b, true, nil
	default:
		return false, true, fmt.Errorf("%w: %q must be a boolean, got %T", ErrInvalidOptions, key, raw)
	}
}

// Strings returns the option key as a string slice.
func (o Options) Strings(key string) ([]string, bool, error) {
	raw, ok := o[key]
	if !ok || raw == nil {
		return nil, false, nil
	}
	switch t := raw.(type) {
	case []string:
		return append([]string(nil), t...), true, nil
	case []any:
		out := make([]string, 0, len(t))
		for idx, item := range t {
			s, ok := stringOf(item)
			if !ok {
				return nil, true, fmt.Errorf("%w: %q item %d has unsupported type %T", ErrInvalidOptions, key, idx, item)
			}
			out = append(out, s)
		}
		return out, true, nil
	default:
		return nil, true, fmt.Errorf("%w: %q must be a list, got %T", ErrInvalidOptions, key, raw)
	}
}

// toFloat converts numeric kinds and numeric strings. NaN and infinities are
// not numbers here.
func toFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case float32:
		f = float64(t)
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// stringOf returns the textual form of scalar form values.
func stringOf(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case fmt.Stringer:
		return t.String(), true
	}
	if f, ok := toFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// isEmpty reports whether v carries no user input.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
