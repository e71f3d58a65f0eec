package form

import (
	"fmt"
	"slices"
	"strings"
)

// Fields is an ordered mapping from key to [Value].
//
// Fields is immutable: Set, Merge and Delete return a new Fields and leave
// the receiver untouched, so a Fields can be shared between goroutines and
// passed to API calls without being altered by them. The zero Fields is
// empty and ready to use.
type Fields struct {
	keys   []string
	values map[string]Value
}

// New returns an empty Fields.
func New() Fields {
	return Fields{}
}

// FromMap builds Fields from a plain map. Go maps are unordered, so keys are
// inserted in sorted order to keep the encoding deterministic.
func FromMap(m map[string]any) (Fields, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	f := Fields{keys: keys, values: make(map[string]Value, len(m))}
	for _, k := range keys {
		v, err := ValueOf(m[k])
		if err != nil {
			return Fields{}, &UnsupportedValueError{Key: k, Value: m[k]}
		}
		f.values[k] = v
	}

	return f, nil
}

func (f Fields) clone(extra int) Fields {
	c := Fields{
		keys:   make([]string, len(f.keys), len(f.keys)+extra),
		values: make(map[string]Value, len(f.keys)+extra),
	}
	copy(c.keys, f.keys)
	for k, v := range f.values {
		c.values[k] = v
	}
	return c
}

// Set returns a copy of f with key bound to v. An existing key keeps its
// position; a new key is appended.
func (f Fields) Set(key string, v Value) Fields {
	c := f.clone(1)
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
	return c
}

// Merge returns a copy of f with every entry of other set on it, in other's
// order.
func (f Fields) Merge(other Fields) Fields {
	c := f.clone(len(other.keys))
	for _, k := range other.keys {
		if _, ok := c.values[k]; !ok {
			c.keys = append(c.keys, k)
		}
		c.values[k] = other.values[k]
	}
	return c
}

// Delete returns a copy of f without key.
func (f Fields) Delete(key string) Fields {
	if _, ok := f.values[key]; !ok {
		return f
	}
	c := f.clone(0)
	delete(c.values, key)
	c.keys = slices.DeleteFunc(c.keys, func(k string) bool { return k == key })
	return c
}

func (f Fields) Get(key string) (Value, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f Fields) Len() int {
	return len(f.keys)
}

// Keys returns the keys in insertion order.
func (f Fields) Keys() []string {
	return slices.Clone(f.keys)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (f Fields) Range(fn func(key string, v Value) bool) {
	for _, k := range f.keys {
		if !fn(k, f.values[k]) {
			return
		}
	}
}

func (f Fields) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, f.values[k])
	}
	b.WriteByte('}')
	return b.String()
}
