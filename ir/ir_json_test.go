package ir

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	doc := NewDocument()
	arr := NewArray("B")
	_ = arr.AddElements(FromBare("10"), FromBare("20"), NewNullAttribute(""))
	err := doc.AddElements(
		NewAttribute("A", "1", false),
		arr,
		NewAttribute("C", "hello", true),
		NewNode("D"),
	)
	if err != nil {
		t.Fatal(err)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	res := &Element{}
	if err := json.Unmarshal(d, res); err != nil {
		t.Fatal(err)
	}
	if !Equal(doc, res) {
		t.Errorf("round trip mismatch:\n%s", d)
	}
}

func TestJSONUnmarshalInvalid(t *testing.T) {
	tests := []string{
		`{"kind":"Attribute","children":[{"kind":"Node"}]}`,
		`{"kind":"Array","children":[{"kind":"Node","name":"X"}]}`,
		`{"kind":"Node","value":"x"}`,
		`{"kind":"Node","children":[{"kind":"Node","name":"X"},{"kind":"Node","name":"X"}]}`,
	}
	for _, in := range tests {
		e := &Element{}
		err := json.Unmarshal([]byte(in), e)
		if !errors.Is(err, ErrStructure) {
			t.Errorf("%s: expected ErrStructure, got %v", in, err)
		}
	}
	if err := json.Unmarshal([]byte(`{"kind":"Bogus"}`), &Element{}); err == nil {
		t.Error("expected error for unknown kind")
	}
}
