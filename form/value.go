package form

import (
	"errors"
	"fmt"
)

// ErrUnsupportedValue is matched by errors returned from [ValueOf] and
// [FromMap] when a value has a shape the encoder cannot represent.
var ErrUnsupportedValue = errors.New("unsupported form value")

// UnsupportedValueError reports a value that is not a string, a list of
// strings or a list of Fields.
type UnsupportedValueError struct {
	Key   string
	Value any
}

func (e *UnsupportedValueError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("unsupported form value of type %T", e.Value)
	}
	return fmt.Sprintf("unsupported form value of type %T for key %q", e.Value, e.Key)
}

func (e *UnsupportedValueError) Is(target error) bool {
	return target == ErrUnsupportedValue
}

// Kind identifies which variant a [Value] holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindStrings
	KindMaps
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStrings:
		return "strings"
	case KindMaps:
		return "maps"
	default:
		return "invalid"
	}
}

// Value is a single form parameter. The zero Value is invalid and is skipped
// by [Encode]; use [String], [Strings] or [Maps] to build one.
type Value struct {
	kind    Kind
	str     string
	strs    []string
	entries []Fields
}

// String returns a scalar value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Strings returns a list value encoded as name[0], name[1], ...
func Strings(s ...string) Value {
	return Value{kind: KindStrings, strs: append([]string(nil), s...)}
}

// Maps returns a list of nested Fields encoded as name[0][key], ...
func Maps(m ...Fields) Value {
	return Value{kind: KindMaps, entries: append([]Fields(nil), m...)}
}

// ValueOf converts a Go value into a Value. Accepted shapes are string,
// []string, []Fields and Value. Anything else, including a single Fields and
// numbers, yields an error matching [ErrUnsupportedValue]; callers format
// such values themselves.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		if t.kind == KindInvalid {
			return Value{}, &UnsupportedValueError{Value: v}
		}
		return t, nil
	case string:
		return String(t), nil
	case []string:
		return Strings(t...), nil
	case []Fields:
		return Maps(t...), nil
	default:
		return Value{}, &UnsupportedValueError{Value: v}
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Str returns the scalar string. It is empty for other kinds.
func (v Value) Str() string {
	return v.str
}

// List returns a copy of the string list held by a KindStrings value.
func (v Value) List() []string {
	return append([]string(nil), v.strs...)
}

// Entries returns a copy of the nested Fields held by a KindMaps value.
func (v Value) Entries() []Fields {
	return append([]Fields(nil), v.entries...)
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindStrings:
		return fmt.Sprintf("%q", v.strs)
	case KindMaps:
		return fmt.Sprintf("%v", v.entries)
	default:
		return "<invalid>"
	}
}
