package form

import (
	"net/url"
	"strconv"
	"strings"
)

// Pair is one flattened form parameter. Name carries the bracketed path of
// the value, for example data[0][number].
type Pair struct {
	Name  string
	Value string
}

// Pairs is an ordered sequence of flattened parameters.
type Pairs []Pair

// Encode flattens fields into pairs. Names are prefixed as prefix[key] when
// prefix is non-empty. Lists are indexed from zero and nested Fields are
// encoded recursively under name[i]. Output order follows the insertion
// order of fields at every level.
func Encode(fields Fields, prefix string) Pairs {
	return encodeInto(nil, fields, prefix)
}

func encodeInto(out Pairs, fields Fields, prefix string) Pairs {
	for _, key := range fields.keys {
		name := key
		if prefix != "" {
			name = prefix + "[" + key + "]"
		}

		v := fields.values[key]
		switch v.kind {
		case KindString:
			out = append(out, Pair{Name: name, Value: v.str})
		case KindStrings:
			for i, s := range v.strs {
				out = append(out, Pair{Name: indexed(name, i), Value: s})
			}
		case KindMaps:
			for i, nested := range v.entries {
				out = encodeInto(out, nested, indexed(name, i))
			}
		}
	}
	return out
}

func indexed(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Encode renders the pairs as application/x-www-form-urlencoded text,
// keeping their order.
func (p Pairs) Encode() string {
	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}

// Values converts the pairs to url.Values. Repeated names keep their
// relative order but the order between names is lost.
func (p Pairs) Values() url.Values {
	v := make(url.Values, len(p))
	for _, pair := range p {
		v.Add(pair.Name, pair.Value)
	}
	return v
}

// EncodeFields is shorthand for Encode(fields, "").Encode().
func EncodeFields(fields Fields) string {
	return Encode(fields, "").Encode()
}
