package libdiff

import (
	"fmt"

	"github.com/signadot/hrd-format/go-hrd/encode"
	"github.com/signadot/hrd-format/go-hrd/ir"
)

// Change is one difference between two documents. Path locates the
// element in the "from" document, or in the "to" document for inserts.
type Change struct {
	Op   Op
	Path string
	From *ir.Element
	To   *ir.Element
}

// MakeChange returns the change turning from into to. A nil from is an
// insert, a nil to a delete.
func MakeChange(path string, from, to *ir.Element) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Path: path, To: to}
	case to == nil:
		return Change{Op: Delete, Path: path, From: from}
	default:
		return Change{Op: Replace, Path: path, From: from, To: to}
	}
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s %s", c.Op.Sign(), c.Path, summary(c.To))
	case Delete:
		return fmt.Sprintf("%s %s %s", c.Op.Sign(), c.Path, summary(c.From))
	}
	return fmt.Sprintf("%s %s %s -> %s", c.Op.Sign(), c.Path, summary(c.From), summary(c.To))
}

// summary renders e on one line without its name.
func summary(e *ir.Element) string {
	c := e.Clone().WithName("")
	if c.Kind == ir.AttributeKind {
		return encode.MustString(c)
	}
	return fmt.Sprintf("%s(%d)", c.Kind, len(c.Children))
}
