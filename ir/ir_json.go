package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Kind     Kind       `json:"kind"`
	Name     string     `json:"name,omitempty"`
	Children []*Element `json:"children,omitempty"`
	Value    *string    `json:"value,omitempty"`
	Quoted   bool       `json:"quoted,omitempty"`
}

func (e *Element) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Kind:     e.Kind,
		Name:     e.Name,
		Children: e.Children,
	}
	if e.Kind == AttributeKind {
		base.Value = e.Value
		base.Quoted = e.Quoted
	}
	return json.Marshal(base)
}

// UnmarshalJSON decodes the JSON form and re-applies the structural
// rules by rebuilding the children through AddElement.
func (e *Element) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	e.Kind = tmp.Kind
	e.Name = tmp.Name
	e.Value = nil
	e.Quoted = false
	e.Children = nil
	switch e.Kind {
	case AttributeKind:
		if len(tmp.Children) != 0 {
			return &StructuralError{Op: "unmarshal", Name: e.Name, Msg: "attribute can't contain elements"}
		}
		e.Value = tmp.Value
		e.Quoted = tmp.Quoted
	case NodeKind, ArrayKind:
		if tmp.Value != nil {
			return &StructuralError{Op: "unmarshal", Name: e.Name, Msg: fmt.Sprintf("%s can't hold a value", e.Kind)}
		}
		for _, c := range tmp.Children {
			if err := e.AddElement(c); err != nil {
				return err
			}
		}
	}
	return nil
}
