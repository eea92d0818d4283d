package codegen

import (
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/hrd-format/go-hrd/contract"
)

func generateShapes(t *testing.T, roots ...string) string {
	t.Helper()
	infos, ctors := extractSrc(t, shapesSrc)
	reg, _, err := BuildRegistry(infos, ctors)
	if err != nil {
		t.Fatal(err)
	}
	src, err := Generate("shapes", reg, roots...)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "shapes_hrd.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}
	return string(src)
}

func expectContains(t *testing.T, code string, snippets ...string) {
	t.Helper()
	for _, s := range snippets {
		if !strings.Contains(code, s) {
			t.Errorf("Expected %q, got:\n%s", s, code)
		}
	}
}

func TestGenerateAnonymousRoot(t *testing.T) {
	code := generateShapes(t, "Scene")
	expectContains(t, code,
		"// Code generated by hrd-codegen. DO NOT EDIT.",
		`"time"`,
		"func SerializeScene(w *stream.Writer, v *Scene) error {",
		"func DeserializeScene(r *stream.Reader) (*Scene, error) {",
		`if err := w.WriteString("Name", v.Name); err != nil {`,
		`if err := w.WriteTime("CreatedAt", v.Created); err != nil {`,
		`return fmt.Errorf("Scene.Origin: null value is not allowed")`,
		`if err := writePoint(w, "Origin", v.Origin); err != nil {`,
		"return readScene(r)",
		"v := NewScene(f0, f1)",
		"func writePoint(w *stream.Writer, name string, v *Point) error {",
		"func readPoint(r *stream.Reader) (*Point, error) {",
	)
	if strings.Contains(code, `"Tags"`) {
		t.Errorf("ignored property Tags was generated:\n%s", code)
	}
	if strings.Contains(code, "func SerializePoint") {
		t.Errorf("non root Point got a Serialize function:\n%s", code)
	}
}

func TestGenerateArray(t *testing.T) {
	code := generateShapes(t, "Point")
	expectContains(t, code,
		`return writePoint(w, "Point", v)`,
		`ok, err := r.ReadBeginElementName("Point")`,
		"if err := w.WriteBeginArray(name); err != nil {",
		`if err := w.WriteInt32("", v.X); err != nil {`,
		`if err := w.WriteInt32("", v.Y); err != nil {`,
		"return w.WriteEndArray()",
		"for ok := true; ok; ok, n = r.ReadNextSibling(), n+1 {",
		`return nil, fmt.Errorf("Point: %d of %d values", n, 2)`,
		"*v = MakePoint(f0, f1)",
	)
	if strings.Contains(code, `"time"`) {
		t.Errorf("unexpected time import:\n%s", code)
	}
}

func TestGenerateCollections(t *testing.T) {
	code := generateShapes(t, "Path", "Polygon")
	expectContains(t, code,
		// Path is a slice of pointers, written as a plain array.
		"func writePath(w *stream.Writer, name string, v *Path) error {",
		"for _, x0 := range *v {",
		"if x0 == nil {",
		`if err := w.WriteEmptyValue(""); err != nil {`,
		`if err := writePoint(w, "", x0); err != nil {`,
		"*v = items",
		// Polygon has a property, so its items go in a Collection array.
		"if err := w.WriteBeginElement(name); err != nil {",
		`if err := w.WriteString("Label", v.Label); err != nil {`,
		`if err := w.WriteBeginArray("Collection"); err != nil {`,
		"for _, x0 := range v.Points {",
		`if err := writePoint(w, "", &x0); err != nil {`,
		`case "Collection":`,
		"v.Points = items",
	)
}

func TestGenerateNested(t *testing.T) {
	reg := contract.NewRegistry()
	err := reg.Add(&contract.Type{
		Name: "Grid",
		Properties: []*contract.Property{
			{Name: "Cells", Type: contract.SliceOf(contract.SliceOf(contract.Ptr(contract.Prim(contract.Float64)))), Settable: true},
			{Name: "When", Type: contract.Ptr(contract.Time()), Settable: true},
		},
		Constructors: []*contract.Constructor{{}},
	})
	if err != nil {
		t.Fatal(err)
	}
	src, err := Generate("grid", reg, "Grid")
	if err != nil {
		t.Fatal(err)
	}
	code := string(src)
	if _, err := parser.ParseFile(token.NewFileSet(), "grid_hrd.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, code)
	}
	expectContains(t, code,
		"if v.Cells != nil {",
		`if err := w.WriteBeginArray("Cells"); err != nil {`,
		"for _, x1 := range v.Cells {",
		"for _, x2 := range x1 {",
		"if err := w.WriteFloat64(\"\", *x2); err != nil {",
		"s1 := [][]*float64{}",
		"s2 := []*float64{}",
		"var p3 float64",
		"e2 = &p3",
		"if v.When != nil {",
		"if err := w.WriteTime(\"When\", *v.When); err != nil {",
		"if has1 {",
		`"time"`,
	)
}

func TestGenerateContractError(t *testing.T) {
	reg := contract.NewRegistry()
	if err := reg.Add(&contract.Type{Name: "T"}); err != nil {
		t.Fatal(err)
	}
	_, err := Generate("p", reg, "T")
	if !errors.Is(err, contract.ErrContract) {
		t.Errorf("got %v, want a contract error", err)
	}
}

// codeLines returns the non blank lines of src with runs of white space
// collapsed.
func codeLines(src string) []string {
	var res []string
	for _, line := range strings.Split(src, "\n") {
		if f := strings.Fields(line); len(f) != 0 {
			res = append(res, strings.Join(f, " "))
		}
	}
	return res
}

func TestGenerateCalendarExample(t *testing.T) {
	dir := filepath.Join("example", "calendar")
	file, _, err := ParseFile(filepath.Join(dir, "calendar.go"))
	if err != nil {
		t.Fatal(err)
	}
	infos, ctors, err := ExtractTypes(file, "calendar.go")
	if err != nil {
		t.Fatal(err)
	}
	reg, roots, err := BuildRegistry(infos, ctors)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Calendar"}, roots); diff != "" {
		t.Fatalf("roots (-want +got):\n%s", diff)
	}
	src, err := Generate("calendar", reg, roots...)
	if err != nil {
		t.Fatal(err)
	}
	checkedIn, err := os.ReadFile(filepath.Join(dir, "calendar"+GeneratedSuffix))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(codeLines(string(checkedIn)), codeLines(string(src))); diff != "" {
		t.Errorf("calendar%s is stale (-checked in +generated):\n%s", GeneratedSuffix, diff)
	}
}
