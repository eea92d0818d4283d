package example

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/signadot/hrd-format/go-hrd/encode"
	"github.com/signadot/hrd-format/go-hrd/parse"
	"github.com/signadot/hrd-format/go-hrd/stream"
)

func TestShapeRoundTrip(t *testing.T) {
	tests := []*Shape{
		{Name: "tri", Points: []Point{MakePoint(0, 0), MakePoint(3, 4), MakePoint(-2, 7)}, Weight: 1.5},
		{Name: "empty", Points: []Point{}},
		{Name: "with \"quotes\"\n", Weight: -0.25},
	}
	for _, want := range tests {
		w := stream.NewWriter()
		if err := SerializeShape(w, want); err != nil {
			t.Fatalf("%s: serialize: %v", want.Name, err)
		}
		doc, err := w.Document()
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := encode.Encode(doc, &buf); err != nil {
			t.Fatal(err)
		}
		parsed, err := parse.Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("%s: parse %q: %v", want.Name, buf.String(), err)
		}
		got, err := DeserializeShape(stream.NewReader(parsed))
		if err != nil {
			t.Fatalf("%s: deserialize: %v", want.Name, err)
		}
		if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Point{})); diff != "" {
			t.Errorf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestDeserializeShape(t *testing.T) {
	doc, err := parse.ParseString(`
Shape {
	// members may come in any order
	Weight = 2
	Extra = "ignored"
	Points [ [1, 2], [3, 4], ]
	Name = "sq"
}`)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DeserializeShape(stream.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := &Shape{Name: "sq", Points: []Point{MakePoint(1, 2), MakePoint(3, 4)}, Weight: 2}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Point{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDeserializeShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"empty", ``, "Shape: empty document"},
		{"wrong root", `Circle { }`, "expected Shape"},
		{"short point", `Shape { Points [ [1] ] }`, "Point: 1 of 2 values"},
		{"bad number", `Shape { Points [ [1, x] ] }`, "Point.Y"},
		{"bad weight", `Shape { Weight = heavy }`, "Shape.Weight"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := parse.ParseString(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			_, err = DeserializeShape(stream.NewReader(doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("error %q does not mention %q", err, tc.msg)
			}
		})
	}
}

func TestSerializeNil(t *testing.T) {
	if err := SerializeShape(stream.NewWriter(), nil); err == nil {
		t.Error("expected error")
	}
}
