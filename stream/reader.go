package stream

import (
	"time"

	"github.com/signadot/hrd-format/go-hrd/codec"
	"github.com/signadot/hrd-format/go-hrd/debug"
	"github.com/signadot/hrd-format/go-hrd/ir"
)

// Frame is one level of a Reader's stack. The root frame has index -1
// and no parent.
type Frame struct {
	Index   int
	Element *ir.Element
	Parent  *ir.Element
}

// Reader is a cursor over a document.
type Reader struct {
	stack []Frame
	opts  streamOpts
}

// NewReader returns a cursor positioned at root.
func NewReader(root *ir.Element, opts ...StreamOption) *Reader {
	return &Reader{
		stack: []Frame{{Index: -1, Element: root}},
		opts:  buildOpts(opts),
	}
}

func (r *Reader) top() *Frame {
	return &r.stack[len(r.stack)-1]
}

// current is the element the top frame stands for.
func (r *Reader) current() *ir.Element {
	return r.top().Element.Resolve()
}

// Frame returns a copy of the current frame.
func (r *Reader) Frame() Frame {
	return *r.top()
}

// Depth returns the number of levels descended from the root.
func (r *Reader) Depth() int {
	return len(r.stack) - 1
}

// ReadBeginElement descends to the first child of the current node or
// array. It returns false, leaving the cursor unchanged, when there is
// none.
func (r *Reader) ReadBeginElement() bool {
	e := r.current()
	if e.Kind == ir.AttributeKind || len(e.Children) == 0 {
		return false
	}
	r.stack = append(r.stack, Frame{Index: 0, Element: e.Children[0], Parent: e})
	if debug.Stream() {
		debug.Logf("stream: begin %q depth %d", e.Children[0].Name, r.Depth())
	}
	return true
}

// ReadBeginElementName is ReadBeginElement, additionally requiring the
// first child to be named name. On a name mismatch the cursor is left
// unchanged.
func (r *Reader) ReadBeginElementName(name string) (bool, error) {
	if !r.ReadBeginElement() {
		return false, nil
	}
	if got := r.ElementName(); got != name {
		r.stack = r.stack[:len(r.stack)-1]
		return false, &ir.StructuralError{Op: "begin element", Name: got, Msg: "expected " + name}
	}
	return true, nil
}

// ReadEndElement returns to the parent level.
func (r *Reader) ReadEndElement() error {
	if len(r.stack) == 1 {
		return ir.NewStructuralError("end element", "stack underflow")
	}
	r.stack = r.stack[:len(r.stack)-1]
	if debug.Stream() {
		debug.Logf("stream: end depth %d", r.Depth())
	}
	return nil
}

// ReadNextSibling moves to the next child of the current parent. It
// returns false, leaving the cursor unchanged, when there is none.
func (r *Reader) ReadNextSibling() bool {
	f := r.top()
	if f.Parent == nil || f.Index+1 >= len(f.Parent.Children) {
		return false
	}
	f.Index++
	f.Element = f.Parent.Children[f.Index]
	return true
}

// HasValue reports whether the current element carries data.
func (r *Reader) HasValue() bool {
	return r.current().HasValue()
}

// IsNull reports whether the current element is a null attribute.
func (r *Reader) IsNull() bool {
	e := r.current()
	return e.Kind == ir.AttributeKind && e.Value == nil
}

func (r *Reader) ChildrenCount() int {
	return len(r.current().Children)
}

// ElementName returns the name of the current element, which for a
// virtual node is the node's name.
func (r *Reader) ElementName() string {
	return r.top().Element.Name
}

// Element returns the element the cursor is on.
func (r *Reader) Element() *ir.Element {
	return r.top().Element
}

func (r *Reader) ReadInt64() (int64, error)   { return codec.ReadInt[int64](r.Element()) }
func (r *Reader) ReadInt32() (int32, error)   { return codec.ReadInt[int32](r.Element()) }
func (r *Reader) ReadInt16() (int16, error)   { return codec.ReadInt[int16](r.Element()) }
func (r *Reader) ReadInt8() (int8, error)     { return codec.ReadInt[int8](r.Element()) }
func (r *Reader) ReadUint64() (uint64, error) { return codec.ReadUint[uint64](r.Element()) }
func (r *Reader) ReadUint32() (uint32, error) { return codec.ReadUint[uint32](r.Element()) }
func (r *Reader) ReadUint16() (uint16, error) { return codec.ReadUint[uint16](r.Element()) }
func (r *Reader) ReadUint8() (uint8, error)   { return codec.ReadUint[uint8](r.Element()) }

func (r *Reader) ReadFloat64() (float64, error) { return codec.ReadFloat[float64](r.Element()) }
func (r *Reader) ReadFloat32() (float32, error) { return codec.ReadFloat[float32](r.Element()) }

func (r *Reader) ReadBool() (bool, error)     { return codec.ReadBool(r.Element()) }
func (r *Reader) ReadChar() (rune, error)     { return codec.ReadChar(r.Element()) }
func (r *Reader) ReadString() (string, error) { return codec.ReadString(r.Element()) }

// ReadDateTime reads a time in the layout selected by ignoreTZ.
func (r *Reader) ReadDateTime(ignoreTZ bool) (time.Time, error) {
	return codec.ReadTime(r.Element(), ignoreTZ)
}

// ReadTime reads a time in the layout selected by the reader's options.
func (r *Reader) ReadTime() (time.Time, error) {
	return r.ReadDateTime(r.opts.ignoreTZ)
}
