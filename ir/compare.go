package ir

// Normalize returns a copy of e with every virtual node replaced by its
// single child carrying the node's name. Writing a tree and reading it
// back yields the normalized form, since virtual nodes have no textual
// level of their own.
func Normalize(e *Element) *Element {
	if e == nil {
		return nil
	}
	if e.IsVirtual() {
		res := Normalize(e.Children[0])
		res.Name = e.Name
		return res
	}
	res := &Element{
		Kind:   e.Kind,
		Name:   e.Name,
		Quoted: e.Quoted,
	}
	if e.Value != nil {
		v := *e.Value
		res.Value = &v
	}
	if len(e.Children) != 0 {
		res.Children = make([]*Element, len(e.Children))
		for i, c := range e.Children {
			res.Children[i] = Normalize(c)
		}
	}
	return res
}

// Equal reports whether a and b have the same normalized shape: kinds,
// names, child order, leaf values and quoting modes.
func Equal(a, b *Element) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return equal(a.Resolve(), b.Resolve(), a.Name, b.Name)
}

func equal(a, b *Element, aName, bName string) bool {
	if aName != bName || a.Kind != b.Kind {
		return false
	}
	if a.Kind == AttributeKind {
		if (a.Value == nil) != (b.Value == nil) {
			return false
		}
		if a.Value == nil {
			return true
		}
		return a.Quoted == b.Quoted && *a.Value == *b.Value
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		ac, bc := a.Children[i], b.Children[i]
		if !equal(ac.Resolve(), bc.Resolve(), ac.Name, bc.Name) {
			return false
		}
	}
	return true
}
