package html

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the closed set of attribute values: absent, a boolean, a single
// string or an ordered list of strings. The zero Value is absent.
type Value struct {
	kind Kind
	flag bool
	str  string
	list []string
}

// Absent returns the empty value. Attributes holding it are not rendered.
func Absent() Value {
	return Value{}
}

// Bool returns a boolean value. true renders as a valueless attribute, false
// omits the attribute.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// String returns a scalar value. The empty string collapses to Absent.
func String(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: KindString, str: s}
}

// List returns a list value holding a copy of items. An empty list is kept as
// a list but renders like Absent.
func List(items ...string) Value {
	return Value{kind: KindList, list: slices.Clone(items)}
}

// ValueOf converts a Go value into a Value. Supported inputs are nil, Value,
// bool, string, []string, []any of strings and numbers, and the integer and
// float kinds.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Absent(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case []string:
		return List(t...), nil
	case []any:
		items := make([]string, 0, len(t))
		for idx, item := range t {
			s, ok := scalarString(item)
			if !ok {
				return Value{}, fmt.Errorf("%w: list item %d has unsupported type %T", ErrInvalidInput, idx, item)
			}
			items = append(items, s)
		}
		return List(items...), nil
	}
	if s, ok := scalarString(v); ok {
		return String(s), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported attribute value type %T", ErrInvalidInput, v)
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int:
		return strconv.Itoa(t), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether v renders no attribute at all: absent, false or an
// empty list.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindBool:
		return !v.flag
	case KindList:
		return len(v.list) == 0
	default:
		return false
	}
}

// IsTrue reports whether v is the boolean true.
func (v Value) IsTrue() bool {
	return v.kind == KindBool && v.flag
}

// Strings returns the scalar or list items. Absent and boolean values have no
// string items.
func (v Value) Strings() []string {
	switch v.kind {
	case KindString:
		return []string{v.str}
	case KindList:
		return slices.Clone(v.list)
	default:
		return nil
	}
}

// String returns the textual form used for rendering: list items are joined
// with a single space, booleans and absent values are empty.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindList:
		return strings.Join(v.list, " ")
	default:
		return ""
	}
}

// Any returns the plain Go form of v: nil, bool, string or []string.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindString:
		return v.str
	case KindList:
		return slices.Clone(v.list)
	default:
		return nil
	}
}

// Equal reports whether both values hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.flag == other.flag
	case KindString:
		return v.str == other.str
	case KindList:
		return slices.Equal(v.list, other.list)
	default:
		return true
	}
}

func (v Value) clone() Value {
	v.list = slices.Clone(v.list)
	return v
}

// merge appends add to v. Absent and boolean values are replaced, as are
// values receiving a boolean.
func (v Value) merge(add Value) Value {
	switch {
	case add.kind == KindAbsent:
		return v
	case v.kind == KindAbsent, v.kind == KindBool, add.kind == KindBool:
		return add
	}
	items := v.Strings()
	items = append(items, add.list...)
	if add.kind == KindString {
		items = append(items, add.str)
	}
	return Value{kind: KindList, list: items}
}

// remove drops the given items. A list keeps the remaining items in order, a
// scalar is cleared when it matches one of them.
func (v Value) remove(items []string) Value {
	switch v.kind {
	case KindList:
		kept := make([]string, 0, len(v.list))
		for _, item := range v.list {
			if !slices.Contains(items, item) {
				kept = append(kept, item)
			}
		}
		return Value{kind: KindList, list: kept}
	case KindString:
		if slices.Contains(items, v.str) {
			return Absent()
		}
	}
	return v
}
