package libdiff

import (
	"fmt"

	"github.com/signadot/hrd-format/go-hrd/ir"
)

// Diff returns the changes turning from into to, compared in normalized
// form. Node members are matched by name; array items are aligned by
// DiffArrayByIndex. It returns nil when the documents are equal.
func Diff(from, to *ir.Element) []Change {
	var res []Change
	diff(&res, "$", ir.Normalize(from), ir.Normalize(to))
	return res
}

func diff(res *[]Change, path string, from, to *ir.Element) {
	if from.Kind != to.Kind {
		*res = append(*res, MakeChange(path, from, to))
		return
	}
	switch from.Kind {
	case ir.AttributeKind:
		if !sameValue(from, to) {
			*res = append(*res, MakeChange(path, from, to))
		}
	case ir.NodeKind:
		diffNode(res, path, from, to)
	case ir.ArrayKind:
		DiffArrayByIndex(res, path, from, to)
	}
}

func diffNode(res *[]Change, path string, from, to *ir.Element) {
	if hasUnnamed(from) || hasUnnamed(to) {
		if !ir.Equal(from.Clone().WithName(""), to.Clone().WithName("")) {
			*res = append(*res, MakeChange(path, from, to))
		}
		return
	}
	for i, fc := range from.Children {
		tc := to.Get(fc.Name)
		if tc == nil {
			*res = append(*res, MakeChange(memberPath(path, fc.Name, i), fc, nil))
			continue
		}
		diff(res, memberPath(path, fc.Name, i), fc, tc)
	}
	for i, tc := range to.Children {
		if from.Get(tc.Name) == nil {
			*res = append(*res, MakeChange(memberPath(path, tc.Name, i), nil, tc))
		}
	}
}

func sameValue(a, b *ir.Element) bool {
	if (a.Value == nil) != (b.Value == nil) {
		return false
	}
	return a.Value == nil || (a.Quoted == b.Quoted && *a.Value == *b.Value)
}

func hasUnnamed(e *ir.Element) bool {
	for _, c := range e.Children {
		if !c.IsNamed() {
			return true
		}
	}
	return false
}

// memberPath extends path by a member name, falling back to the index
// for names a path can't express.
func memberPath(path, name string, i int) string {
	for _, r := range name {
		if r == '.' || r == '[' || r == ']' {
			return fmt.Sprintf("%s[%d]", path, i)
		}
	}
	return path + "." + name
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
