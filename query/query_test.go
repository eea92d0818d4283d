package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/hrd-format/go-hrd/ir"
	"github.com/signadot/hrd-format/go-hrd/parse"
)

func mustParse(t *testing.T, s string) *ir.Element {
	t.Helper()
	e, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return e
}

func TestToAny(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"scalars", `A = 1 B = 0x10 C = 2.5 D = abc E = "7" F = null`,
			map[string]any{"A": int64(1), "B": int64(16), "C": 2.5, "D": "abc", "E": "7", "F": nil}},
		{"array", `L [1, "x", [2]]`,
			map[string]any{"L": []any{int64(1), "x", []any{int64(2)}}}},
		{"virtual", `N { 3 }`,
			map[string]any{"N": int64(3)}},
		{"nested", `N { M { A = -4 } }`,
			map[string]any{"N": map[string]any{"M": map[string]any{"A": int64(-4)}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToAny(mustParse(t, tt.in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

const shapes = `
Limit = 3
Shapes [
	{ Name = "a" Sides = 3 },
	{ Name = "b" Sides = 4 },
	{ Name = "c" Sides = 6 },
]
Tags { Red = 1 Blue = 2 Green = [1] }
`

func TestSelect(t *testing.T) {
	doc := mustParse(t, shapes)
	tests := []struct {
		name string
		path string
		src  string
		want []string
	}{
		{"by value", "$.Shapes", `value.Sides > 3`, []string{`"b"`, `"c"`}},
		{"by getpath", "$.Shapes", `value.Sides == getpath("$.Limit")`, []string{`"a"`}},
		{"by index", "$.Shapes", `index == 1`, []string{`"b"`}},
		{"by name", "$.Tags", `name startsWith "B" || name == "Red"`, []string{"Red", "Blue"}},
		{"by kind", "$.Tags", `kind == "Array"`, []string{"Green"}},
		{"none", "$.Shapes", `false`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Select(doc, tt.path, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, e := range res {
				if e.IsNamed() {
					got = append(got, e.Name)
					continue
				}
				got = append(got, `"`+e.Get("Name").String()+`"`)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectErrors(t *testing.T) {
	doc := mustParse(t, shapes)
	if _, err := Select(doc, "$.Missing", "true"); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("missing path: got %v", err)
	}
	if _, err := Select(doc, "$.Shapes", `index + 1`); err == nil {
		t.Error("non boolean expression compiled")
	}
	if _, err := Select(doc, "$.Shapes", `value.Sides ==`); err == nil {
		t.Error("syntax error compiled")
	}
	if _, err := Select(doc, "$.Shapes", `getpath("$.Nope") == 1`); err == nil {
		t.Error("getpath of a missing path succeeded")
	}
}
