package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/hrd-format/go-hrd/ir"
	"github.com/signadot/hrd-format/go-hrd/token"
)

func attr(name, v string) *ir.Element   { return ir.NewAttribute(name, v, false) }
func str(name, v string) *ir.Element    { return ir.NewAttribute(name, v, true) }
func elts(e *ir.Element, cs ...*ir.Element) *ir.Element {
	e.Children = cs
	return e
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Element
	}{
		{"empty", "", ir.NewDocument()},
		{"comment only", "// nothing\n/* here */", ir.NewDocument()},
		{"attributes", `A = 1; B = "x" C = abc`,
			elts(ir.NewDocument(), attr("A", "1"), str("B", "x"), attr("C", "abc"))},
		{"null", `A = null; B = "null"`,
			elts(ir.NewDocument(), ir.NewNullAttribute("A"), str("B", "null"))},
		{"node", `N = { A = 1 B = { } }`,
			elts(ir.NewDocument(), elts(ir.NewNode("N"), attr("A", "1"), ir.NewNode("B")))},
		{"node without equals", `N { A = 1 }`,
			elts(ir.NewDocument(), elts(ir.NewNode("N"), attr("A", "1")))},
		{"array", `L = [ 1, -2, "x", null, ]`,
			elts(ir.NewDocument(), elts(ir.NewArray("L"), attr("", "1"), attr("", "-2"), str("", "x"), ir.NewNullAttribute("")))},
		{"array without equals", `L[]`,
			elts(ir.NewDocument(), ir.NewArray("L"))},
		{"nested", `L = [ { A = 1 }, [ 2 ], abc ]`,
			elts(ir.NewDocument(), elts(ir.NewArray("L"),
				elts(ir.NewNode(""), attr("A", "1")),
				elts(ir.NewArray(""), attr("", "2")),
				attr("", "abc")))},
		{"virtual", `N = { 7 }`,
			elts(ir.NewDocument(), elts(ir.NewNode("N"), attr("", "7")))},
		{"root value", `"hello"`,
			elts(ir.NewDocument(), str("", "hello"))},
		{"root bare name", `hello`,
			elts(ir.NewDocument(), attr("", "hello"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
		line int
		col  int
	}{
		{"duplicate", "A = 1\nA = 2", ir.ErrStructure, 2, 1},
		{"comma in node", "A = 1, B = 2", ir.ErrStructure, 1, 6},
		{"mismatched", "N = { A = 1 ]", ir.ErrStructure, 1, 13},
		{"stray closer", "}", ir.ErrStructure, 1, 1},
		{"unclosed node", "N = { A = 1", ir.ErrStructure, 1, 12},
		{"unclosed array", "L = [ 1, 2", ir.ErrStructure, 1, 11},
		{"missing comma", "L = [ 1 2 ]", ir.ErrStructure, 1, 9},
		{"named in array", "L = [ A = 1 ]", ir.ErrStructure, 1, 9},
		{"unnamed after named", "A = 1 2", ir.ErrStructure, 1, 7},
		{"missing value", "A =", ir.ErrStructure, 1, 4},
		{"stray equals", "= 1", ir.ErrStructure, 1, 1},
		{"unterminated string", "A = \"x", token.ErrUnterminated, 1, 5},
		{"unterminated comment", "/* x", token.ErrUnterminated, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if pe.Pos.Line() != tt.line || pe.Pos.Col() != tt.col {
				t.Errorf("got %d:%d, want %d:%d", pe.Pos.Line(), pe.Pos.Col(), tt.line, tt.col)
			}
		})
	}
}

func TestParseStructuralError(t *testing.T) {
	_, err := ParseString("A = 1\nA = 2")
	var se *ir.StructuralError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ir.StructuralError, got %T", err)
	}
	if se.Name != "A" {
		t.Errorf("got name %q", se.Name)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.hrd")
	if err := os.WriteFile(path, []byte("A = 1\nB = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), path+":2:6") {
		t.Errorf("expected file position in %q", err)
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.hrd")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader("A = 1"), ParseFilename("r"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Get("A") == nil {
		t.Error("missing A")
	}
}

func TestParsePositions(t *testing.T) {
	m := map[*ir.Element]*token.Pos{}
	doc, err := ParseString("A = 1\nB = { C = 2 }", ParsePositions(m))
	if err != nil {
		t.Fatal(err)
	}
	c, err := doc.GetPath("B.C")
	if err != nil {
		t.Fatal(err)
	}
	pos := m[c]
	if pos == nil || pos.Line() != 2 || pos.Col() != 7 {
		t.Errorf("got %v", pos)
	}
	if GetPositions(ParsePositions(m)) == nil {
		t.Error("GetPositions lost the map")
	}
}
