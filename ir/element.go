package ir

import (
	"iter"
	"slices"
)

// Element is a node of an HRD document tree. It is a tagged variant:
// Children is used by NodeKind and ArrayKind, Value and Quoted by
// AttributeKind.
//
// An empty Name means the element is unnamed (positional).
type Element struct {
	Kind     Kind
	Name     string
	Children []*Element

	Value  *string
	Quoted bool
}

// NewDocument returns an empty document root, an unnamed Node.
func NewDocument() *Element {
	return &Element{Kind: NodeKind}
}

func NewNode(name string) *Element {
	return &Element{Kind: NodeKind, Name: name}
}

func NewArray(name string) *Element {
	return &Element{Kind: ArrayKind, Name: name}
}

// NewAttribute returns a leaf holding v. Quoted selects the quoted string
// encoding over the bare token encoding.
func NewAttribute(name, v string, quoted bool) *Element {
	return &Element{Kind: AttributeKind, Name: name, Value: &v, Quoted: quoted}
}

// NewNullAttribute returns a leaf holding the null value.
func NewNullAttribute(name string) *Element {
	return &Element{Kind: AttributeKind, Name: name}
}

// FromString returns an unnamed quoted attribute.
func FromString(v string) *Element {
	return NewAttribute("", v, true)
}

// FromBare returns an unnamed bare attribute.
func FromBare(v string) *Element {
	return NewAttribute("", v, false)
}

func (e *Element) WithName(name string) *Element {
	e.Name = name
	return e
}

func (e *Element) IsNamed() bool {
	return e.Name != ""
}

// IsVirtual reports whether e is a Node holding exactly one unnamed
// child. A virtual node is a passthrough to that child.
func (e *Element) IsVirtual() bool {
	return e.Kind == NodeKind && len(e.Children) == 1 && !e.Children[0].IsNamed()
}

// HasValue reports whether e carries data: a non-null attribute value or
// at least one child.
func (e *Element) HasValue() bool {
	if e.Kind == AttributeKind {
		return e.Value != nil
	}
	return len(e.Children) != 0
}

// String returns the attribute value, or "" for null values and
// containers.
func (e *Element) String() string {
	if e.Kind != AttributeKind || e.Value == nil {
		return ""
	}
	return *e.Value
}

func (e *Element) Len() int {
	return len(e.Children)
}

// Get returns the first child named name, or nil.
func (e *Element) Get(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetKind returns the first child of kind k named name, or nil.
func (e *Element) GetKind(k Kind, name string) *Element {
	for _, c := range e.Children {
		if c.Kind == k && c.Name == name {
			return c
		}
	}
	return nil
}

// Elements returns the children of the given kinds in document order, or
// all children when no kind is given.
func (e *Element) Elements(kinds ...Kind) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for _, c := range e.Children {
			if !matchKind(c, kinds) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// UnnamedElements is Elements restricted to unnamed children.
func (e *Element) UnnamedElements(kinds ...Kind) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for c := range e.Elements(kinds...) {
			if c.IsNamed() {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

func matchKind(c *Element, kinds []Kind) bool {
	return len(kinds) == 0 || slices.Contains(kinds, c.Kind)
}

func (e *Element) Clone() *Element {
	res := &Element{
		Kind:   e.Kind,
		Name:   e.Name,
		Quoted: e.Quoted,
	}
	if e.Value != nil {
		v := *e.Value
		res.Value = &v
	}
	if e.Children != nil {
		res.Children = make([]*Element, len(e.Children))
		for i, c := range e.Children {
			res.Children[i] = c.Clone()
		}
	}
	return res
}

// Visit walks e depth first, calling f before (isPost false) and after
// (isPost true) the children. Children are skipped when the pre call
// returns false.
func (e *Element) Visit(f func(e *Element, isPost bool) (bool, error)) error {
	dive, err := f(e, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range e.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(e, true); err != nil {
		return err
	}
	return nil
}

// Resolve follows virtual nodes down to the element they stand for.
func (e *Element) Resolve() *Element {
	res := e
	for res.IsVirtual() {
		res = res.Children[0]
	}
	return res
}
