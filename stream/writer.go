package stream

import (
	"fmt"
	"time"

	"github.com/signadot/hrd-format/go-hrd/codec"
	"github.com/signadot/hrd-format/go-hrd/debug"
	"github.com/signadot/hrd-format/go-hrd/ir"
)

// Writer builds a document from a sequence of write calls. Names are
// empty for array items.
type Writer struct {
	stack []*ir.Element
	opts  streamOpts
}

func NewWriter(opts ...StreamOption) *Writer {
	return &Writer{
		stack: []*ir.Element{ir.NewDocument()},
		opts:  buildOpts(opts),
	}
}

func (w *Writer) top() *ir.Element {
	return w.stack[len(w.stack)-1]
}

func (w *Writer) begin(e *ir.Element) error {
	if err := w.top().AddElement(e); err != nil {
		return err
	}
	w.stack = append(w.stack, e)
	if debug.Stream() {
		debug.Logf("stream: write begin %s %q depth %d", e.Kind, e.Name, len(w.stack)-1)
	}
	return nil
}

func (w *Writer) end(k ir.Kind) error {
	top := w.top()
	if len(w.stack) == 1 {
		return ir.NewStructuralError("end "+k.String(), "stack underflow")
	}
	if top.Kind != k {
		return &ir.StructuralError{Op: "end " + k.String(), Name: top.Name, Msg: fmt.Sprintf("open element is a %s", top.Kind)}
	}
	w.stack = w.stack[:len(w.stack)-1]
	return nil
}

// WriteBeginElement opens a node.
func (w *Writer) WriteBeginElement(name string) error {
	return w.begin(ir.NewNode(name))
}

func (w *Writer) WriteEndElement() error {
	return w.end(ir.NodeKind)
}

// WriteBeginArray opens an array.
func (w *Writer) WriteBeginArray(name string) error {
	return w.begin(ir.NewArray(name))
}

func (w *Writer) WriteEndArray() error {
	return w.end(ir.ArrayKind)
}

func (w *Writer) attr(name, v string, quoted bool) error {
	return w.top().AddElement(ir.NewAttribute(name, v, quoted))
}

// WriteEmptyValue writes a null attribute.
func (w *Writer) WriteEmptyValue(name string) error {
	return w.top().AddElement(ir.NewNullAttribute(name))
}

func (w *Writer) WriteInt64(name string, v int64) error {
	return w.attr(name, codec.FormatInt(v, w.opts.hex), false)
}

func (w *Writer) WriteInt32(name string, v int32) error {
	return w.attr(name, codec.FormatInt(v, w.opts.hex), false)
}

func (w *Writer) WriteInt16(name string, v int16) error {
	return w.attr(name, codec.FormatInt(v, w.opts.hex), false)
}

func (w *Writer) WriteInt8(name string, v int8) error {
	return w.attr(name, codec.FormatInt(v, w.opts.hex), false)
}

func (w *Writer) WriteUint64(name string, v uint64) error {
	return w.attr(name, codec.FormatUint(v, w.opts.hex), false)
}

func (w *Writer) WriteUint32(name string, v uint32) error {
	return w.attr(name, codec.FormatUint(v, w.opts.hex), false)
}

func (w *Writer) WriteUint16(name string, v uint16) error {
	return w.attr(name, codec.FormatUint(v, w.opts.hex), false)
}

func (w *Writer) WriteUint8(name string, v uint8) error {
	return w.attr(name, codec.FormatUint(v, w.opts.hex), false)
}

func (w *Writer) WriteFloat64(name string, v float64) error {
	return w.attr(name, codec.FormatFloat(v), false)
}

func (w *Writer) WriteFloat32(name string, v float32) error {
	return w.attr(name, codec.FormatFloat(v), false)
}

func (w *Writer) WriteBool(name string, v bool) error {
	return w.attr(name, codec.FormatBool(v), false)
}

func (w *Writer) WriteChar(name string, v rune) error {
	return w.attr(name, codec.FormatChar(v), true)
}

func (w *Writer) WriteString(name string, v string) error {
	return w.attr(name, v, true)
}

// WriteTime writes a time in the layout selected by the writer's options.
func (w *Writer) WriteTime(name string, v time.Time) error {
	return w.attr(name, codec.FormatTime(v, w.opts.ignoreTZ), false)
}

// Document returns the document written so far. It fails if elements
// are still open.
func (w *Writer) Document() (*ir.Element, error) {
	if n := len(w.stack) - 1; n != 0 {
		return nil, &ir.StructuralError{Op: "document", Name: w.top().Name, Msg: fmt.Sprintf("%d elements still open", n)}
	}
	return w.stack[0], nil
}

// WriteDateTime writes a time in the layout selected by ignoreTZ.
func (w *Writer) WriteDateTime(name string, v time.Time, ignoreTZ bool) error {
	return w.attr(name, codec.FormatTime(v, ignoreTZ), false)
}
