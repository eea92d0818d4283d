package codegen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/hrd-format/go-hrd/contract"
)

const shapesSrc = `package shapes

import "time"

// Point is a position.
type Point struct {
	_ struct{} ` + "`hrd:\"serializeAs=array\"`" + `
	X int32
	Y int32 ` + "`hrd:\"order=1\"`" + `
}

//hrd:type root,anonymousRoot
type Scene struct {
	Name    string
	Created time.Time ` + "`hrd:\"name=CreatedAt\"`" + `
	Origin  *Point
	Tags    []string       ` + "`hrd:\"ignore\"`" + `
	Lookup  map[string]int ` + "`hrd:\"ignore\"`" + `
	ID      int64          ` + "`hrd:\"readonly\"`" + `
	hidden  int
}

//hrd:type
type Path []*Point

type Polygon struct {
	_      struct{} ` + "`hrd:\"\"`" + `
	Label  string   ` + "`hrd:\"include\"`" + `
	Points []Point  ` + "`hrd:\"items\"`" + `
}

type Plain struct {
	A int
}

//hrd:constructor
func NewScene(name string, id int64) *Scene {
	return &Scene{Name: name, ID: id}
}

// MakePoint returns a point.
//
//hrd:constructor x=X,y=Y
func MakePoint(x, y int32) Point {
	return Point{X: x, Y: y}
}
`

func extractSrc(t *testing.T, src string) ([]*TypeInfo, []*ConstructorInfo) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "shapes.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	types, ctors, err := ExtractTypes(file, "shapes.go")
	if err != nil {
		t.Fatalf("failed to extract types: %v", err)
	}
	return types, ctors
}

func TestExtractTypes(t *testing.T) {
	infos, ctors := extractSrc(t, shapesSrc)
	var names []string
	for _, info := range infos {
		names = append(names, info.Type.Name)
		if info.FilePath != "shapes.go" {
			t.Errorf("%s: file path %q", info.Type.Name, info.FilePath)
		}
	}
	if diff := cmp.Diff([]string{"Point", "Scene", "Path", "Polygon"}, names); diff != "" {
		t.Fatalf("types (-want +got):\n%s", diff)
	}

	zero := &contract.Constructor{}
	want := []*contract.Type{
		{
			Name:    "Point",
			Options: contract.Options{SerializeAs: contract.Array},
			Properties: []*contract.Property{
				{Name: "X", Field: "X", Type: contract.Prim(contract.Int32), Settable: true},
				{Name: "Y", Field: "Y", Type: contract.Prim(contract.Int32), Order: 1, Settable: true},
			},
			Constructors: []*contract.Constructor{zero},
		},
		{
			Name:    "Scene",
			Options: contract.Options{AnonymousRoot: true},
			Properties: []*contract.Property{
				{Name: "Name", Field: "Name", Type: contract.Prim(contract.String), Settable: true},
				{Name: "CreatedAt", Field: "Created", Type: contract.Time(), Settable: true},
				{Name: "Origin", Field: "Origin", Type: contract.Ptr(contract.Named("Point")), Settable: true},
				{Name: "Tags", Field: "Tags", Type: contract.SliceOf(contract.Prim(contract.String)), Ignore: contract.Flag(true), Settable: true},
				{Name: "ID", Field: "ID", Type: contract.Prim(contract.Int64)},
			},
			Constructors: []*contract.Constructor{zero},
		},
		{
			Name: "Path",
			Kind: contract.CollectionKind,
			Options: contract.Options{
				CollectionElement: contract.Ptr(contract.Named("Point")),
			},
			Constructors: []*contract.Constructor{zero},
		},
		{
			Name:    "Polygon",
			Kind:    contract.CollectionKind,
			Options: contract.Options{CollectionElement: contract.Named("Point")},
			Items:   "Points",
			Properties: []*contract.Property{
				{Name: "Label", Field: "Label", Type: contract.Prim(contract.String), Ignore: contract.Flag(false), Settable: true},
			},
			Constructors: []*contract.Constructor{zero},
		},
	}
	for i, info := range infos {
		if diff := cmp.Diff(want[i], info.Type); diff != "" {
			t.Errorf("%s (-want +got):\n%s", info.Type.Name, diff)
		}
	}
	if !infos[1].Root || infos[0].Root {
		t.Error("only Scene is a root")
	}

	wantCtors := []*ConstructorInfo{
		{TypeName: "Scene", Constructor: &contract.Constructor{
			Func:    "NewScene",
			Pointer: true,
			Params: []*contract.Param{
				{Name: "name", Type: contract.Prim(contract.String)},
				{Name: "id", Type: contract.Prim(contract.Int64)},
			},
		}},
		{TypeName: "Point", Constructor: &contract.Constructor{
			Func: "MakePoint",
			Params: []*contract.Param{
				{Name: "x", Property: "X", Type: contract.Prim(contract.Int32)},
				{Name: "y", Property: "Y", Type: contract.Prim(contract.Int32)},
			},
		}},
	}
	if diff := cmp.Diff(wantCtors, ctors); diff != "" {
		t.Errorf("constructors (-want +got):\n%s", diff)
	}
}

func TestBuildRegistry(t *testing.T) {
	infos, ctors := extractSrc(t, shapesSrc)
	reg, roots, err := BuildRegistry(infos, ctors)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Scene"}, roots); diff != "" {
		t.Errorf("roots (-want +got):\n%s", diff)
	}
	scene, ok := reg.Lookup("Scene")
	if !ok {
		t.Fatal("Scene not registered")
	}
	ctor := scene.Constructors[1]
	var bound []string
	for _, p := range ctor.Params {
		bound = append(bound, p.Property)
	}
	if diff := cmp.Diff([]string{"Name", "ID"}, bound); diff != "" {
		t.Errorf("bindings (-want +got):\n%s", diff)
	}

	plan, err := contract.Resolve(reg, "Scene", true)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Constructor.Func != "NewScene" {
		t.Errorf("constructor %q, want NewScene", plan.Constructor.Func)
	}
	if plan.Wrap != contract.WrapNone || plan.Nulls != contract.NullDisallow {
		t.Errorf("wrap %s nulls %s, want anonymous root", plan.Wrap, plan.Nulls)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{
			name: "unknown option",
			src:  "//hrd:type sparkly\ntype T struct{}",
			msg:  "unknown type option",
		},
		{
			name: "unsupported field type",
			src:  "//hrd:type\ntype T struct{ N int }",
			msg:  "unsupported type int",
		},
		{
			name: "embedded field",
			src:  "//hrd:type\ntype T struct{ U }",
			msg:  "embedded fields are not supported",
		},
		{
			name: "not a struct",
			src:  "//hrd:type\ntype T map[string]string",
			msg:  "only structs and slices",
		},
		{
			name: "bad order",
			src:  "//hrd:type\ntype T struct{ A int32 `hrd:\"order=x\"` }",
			msg:  "expected an integer",
		},
		{
			name: "constructor results",
			src:  "//hrd:constructor\nfunc NewT() (T, error) { return T{}, nil }",
			msg:  "exactly one value",
		},
		{
			name: "constructor method",
			src:  "//hrd:constructor\nfunc (T) New() T { return T{} }",
			msg:  "can't be methods",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file, err := parser.ParseFile(token.NewFileSet(), "t.go", "package p\n"+tc.src, parser.ParseComments)
			if err != nil {
				t.Fatalf("failed to parse: %v", err)
			}
			_, _, err = ExtractTypes(file, "t.go")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error %q does not mention %q", err, tc.msg)
			}
		})
	}
}

func TestBuildRegistryUnknownConstructorType(t *testing.T) {
	ctors := []*ConstructorInfo{{TypeName: "Nope", Constructor: &contract.Constructor{Func: "NewNope"}}}
	if _, _, err := BuildRegistry(nil, ctors); err == nil {
		t.Error("expected error")
	}
}

func TestTypeRefOf(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"int8", "int8"},
		{"byte", "uint8"},
		{"rune", "rune"},
		{"time.Time", "time.Time"},
		{"*Point", "*Point"},
		{"[][]*float64", "[][]*float64"},
	}
	for _, tc := range tests {
		expr, err := parser.ParseExpr(tc.expr)
		if err != nil {
			t.Fatal(err)
		}
		ref, err := TypeRefOf(expr)
		if err != nil {
			t.Errorf("%s: %v", tc.expr, err)
			continue
		}
		if got := ref.String(); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.expr, got, tc.want)
		}
	}
	for _, bad := range []string{"int", "[3]int32", "map[string]int32", "pkg.Other"} {
		expr, err := parser.ParseExpr(bad)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := TypeRefOf(expr); err == nil {
			t.Errorf("%s: expected error", bad)
		}
	}
}
