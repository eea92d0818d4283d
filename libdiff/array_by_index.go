package libdiff

import (
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/hrd-format/go-hrd/ir"
)

// DiffArrayByIndex appends the changes between two arrays to res.
//
// Each item is summarized by its kind and, for attributes, its value.
// The summaries are mapped to runes and the rune sequences diffed. Items
// with equal summaries that are containers are compared recursively; a
// delete directly followed by an insert becomes a replace.
func DiffArrayByIndex(res *[]Change, path string, from, to *ir.Element) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	lastDelete := -1
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				*res = append(*res, MakeChange(indexPath(path, fi), from.Children[fi], nil))
				lastDelete = len(*res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDelete = -1
			for range n {
				diff(res, indexPath(path, fi), from.Children[fi], to.Children[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if lastDelete >= 0 {
					c := &(*res)[lastDelete]
					*c = MakeChange(c.Path, c.From, to.Children[ti])
					lastDelete = -1
				} else {
					*res = append(*res, MakeChange(indexPath(path, ti), nil, to.Children[ti]))
				}
				ti++
			}
		}
	}
}

func mapValues(m map[string]rune, e *ir.Element) []rune {
	rs := make([]rune, len(e.Children))
	for i, c := range e.Children {
		sum := summaryStr(c)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(e *ir.Element) string {
	if e.Kind != ir.AttributeKind {
		return e.Kind.String()
	}
	if e.Value == nil {
		return "null"
	}
	return strconv.FormatBool(e.Quoted) + "-" + *e.Value
}
