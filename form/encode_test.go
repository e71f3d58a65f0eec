package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode_Scalars(t *testing.T) {
	t.Parallel()

	fields := New().
		Set("name", String("Bob")).
		Set("number", String("123"))

	got := Encode(fields, "")
	want := Pairs{
		{Name: "name", Value: "Bob"},
		{Name: "number", Value: "123"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestEncode_ScalarsWithPrefix(t *testing.T) {
	t.Parallel()

	fields := New().
		Set("to", String("1")).
		Set("msg", String("hi"))

	got := Encode(fields, "data")
	want := Pairs{
		{Name: "data[to]", Value: "1"},
		{Name: "data[msg]", Value: "hi"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestEncode_StringList(t *testing.T) {
	t.Parallel()

	fields := New().
		Set("number", Strings("111", "222", "333")).
		Set("message", String("hello"))

	got := Encode(fields, "")
	want := Pairs{
		{Name: "number[0]", Value: "111"},
		{Name: "number[1]", Value: "222"},
		{Name: "number[2]", Value: "333"},
		{Name: "message", Value: "hello"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestEncode_NestedMaps(t *testing.T) {
	t.Parallel()

	fields := New().Set("data", Maps(
		New().Set("to", String("1")).Set("msg", String("hi")),
		New().Set("to", String("2")).Set("msg", String("yo")),
	))

	got := Encode(fields, "")
	want := Pairs{
		{Name: "data[0][to]", Value: "1"},
		{Name: "data[0][msg]", Value: "hi"},
		{Name: "data[1][to]", Value: "2"},
		{Name: "data[1][msg]", Value: "yo"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestEncode_DeepNesting(t *testing.T) {
	t.Parallel()

	inner := New().
		Set("tags", Strings("a", "b")).
		Set("meta", Maps(New().Set("k", String("v"))))
	fields := New().
		Set("first", String("x")).
		Set("data", Maps(inner)).
		Set("last", String("y"))

	got := Encode(fields, "")
	want := Pairs{
		{Name: "first", Value: "x"},
		{Name: "data[0][tags][0]", Value: "a"},
		{Name: "data[0][tags][1]", Value: "b"},
		{Name: "data[0][meta][0][k]", Value: "v"},
		{Name: "last", Value: "y"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestEncode_NestedEqualsRecursiveConcatenation(t *testing.T) {
	t.Parallel()

	a := New().Set("to", String("1")).Set("numbers", Strings("7", "8"))
	b := New().Set("to", String("2"))
	fields := New().Set("data", Maps(a, b))

	var want Pairs
	want = append(want, Encode(a, "data[0]")...)
	want = append(want, Encode(b, "data[1]")...)

	if diff := cmp.Diff(want, Encode(fields, "")); diff != "" {
		t.Errorf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields Fields
	}{
		{"zero fields", Fields{}},
		{"new fields", New()},
		{"empty string list", New().Set("number", Strings())},
		{"empty map list", New().Set("data", Maps())},
		{"invalid value", New().Set("bad", Value{})},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Encode(tt.fields, ""); len(got) != 0 {
				t.Errorf("expected no pairs, got %v", got)
			}
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	fields := New().
		Set("z", String("1")).
		Set("a", Strings("2", "3")).
		Set("m", Maps(New().Set("q", String("4"))))

	first := Encode(fields, "")
	second := Encode(fields, "")

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("encoding differs between runs (-first +second):\n%s", diff)
	}
}

func TestPairsEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields Fields
		want   string
	}{
		{
			name:   "many numbers",
			fields: New().Set("number", Strings("111", "222")),
			want:   "number%5B0%5D=111&number%5B1%5D=222",
		},
		{
			name:   "spaces and utf-8",
			fields: New().Set("message", String("héllo wörld & more")),
			want:   "message=h%C3%A9llo+w%C3%B6rld+%26+more",
		},
		{
			name:   "empty",
			fields: New(),
			want:   "",
		},
		{
			name:   "order kept",
			fields: New().Set("b", String("1")).Set("a", String("2")),
			want:   "b=1&a=2",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := EncodeFields(tt.fields); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPairsValues(t *testing.T) {
	t.Parallel()

	values := Encode(New().Set("number", Strings("1", "2")).Set("device", String("9")), "").Values()

	if values.Get("number[0]") != "1" || values.Get("number[1]") != "2" {
		t.Errorf("unexpected number values: %v", values)
	}

	if values.Get("device") != "9" {
		t.Errorf("expected device=9, got %s", values.Get("device"))
	}
}
