package ir

import "fmt"

// AddElement appends c to e's children, enforcing the structural rules
// of e's kind.
func (e *Element) AddElement(c *Element) error {
	if err := e.checkAdd(c); err != nil {
		return err
	}
	e.Children = append(e.Children, c)
	return nil
}

// AddElements adds each element in order, stopping at the first error.
func (e *Element) AddElements(cs ...*Element) error {
	for i, c := range cs {
		if err := e.AddElement(c); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (e *Element) checkAdd(c *Element) error {
	const op = "add"
	if c == nil {
		return NewStructuralError(op, "element is nil")
	}
	if c == e || c.contains(e) {
		return &StructuralError{Op: op, Name: c.Name, Msg: "element can't contain itself"}
	}
	if e.Kind.IsLeaf() {
		return &StructuralError{Op: op, Name: e.Name, Msg: "attribute can't contain elements"}
	}
	switch e.Kind {
	case ArrayKind:
		if c.IsNamed() {
			return &StructuralError{Op: op, Name: c.Name, Msg: "array can't contain named elements"}
		}
	case NodeKind:
		if e.IsVirtual() {
			return &StructuralError{Op: op, Name: c.Name, Msg: "named element can't be added to a virtual node"}
		}
		if !c.IsNamed() && len(e.Children) != 0 {
			return NewStructuralError(op, "unnamed element can't be added when named siblings exist")
		}
	default:
		return NewStructuralError(op, "unknown kind %d", e.Kind)
	}
	if c.IsNamed() && e.Get(c.Name) != nil {
		return &StructuralError{Op: op, Name: c.Name, Msg: "element with the same name already exists"}
	}
	return nil
}

func (e *Element) contains(x *Element) bool {
	for _, c := range e.Children {
		if c == x || c.contains(x) {
			return true
		}
	}
	return false
}
