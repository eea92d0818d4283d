package encode

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/signadot/hrd-format/go-hrd/format"
	"github.com/signadot/hrd-format/go-hrd/ir"
	"github.com/signadot/hrd-format/go-hrd/token"
)

type EncState struct {
	indent     int
	indentChar rune

	format format.Format
	wire   bool

	Color func(ColorAttr, string) string

	w *IndentWriter
}

// Encode writes e to w. An unnamed element is written as a document: the
// members of a node without braces, any other value on its own. A named
// element is written as a single member.
func Encode(e *ir.Element, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:     1,
		indentChar: '\t',
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsJSON() {
		return encodeJSON(e, w, es)
	}
	es.w = NewIndentWriter(w, es.indentChar, es.indent)
	if e.IsNamed() {
		if err := es.member(e); err != nil {
			return err
		}
		return es.writeString("\n")
	}
	r := e.Resolve()
	if r.Kind != ir.NodeKind {
		if err := es.value(r); err != nil {
			return err
		}
		return es.writeString("\n")
	}
	if len(r.Children) == 0 {
		return nil
	}
	if err := es.members(r); err != nil {
		return err
	}
	return es.writeString("\n")
}

// EncodeFile writes e to the file at path, creating or truncating it.
// The file is closed on every path.
func EncodeFile(path string, e *ir.Element, opts ...EncodeOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	bw := bufio.NewWriter(f)
	if err := Encode(e, bw, opts...); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeJSON(e *ir.Element, w io.Writer, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.wire {
		d, err = json.Marshal(e)
	} else {
		d, err = json.MarshalIndent(e, "", strings.Repeat(string(es.indentChar), es.indent))
	}
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func (es *EncState) writeString(s string) error {
	_, err := es.w.WriteString(s)
	return err
}

func (es *EncState) writeColor(a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(a, s)
	}
	return es.writeString(s)
}

// nl ends the current line, or writes a separating space on the wire.
func (es *EncState) nl() error {
	if es.wire {
		return es.writeString(" ")
	}
	return es.writeString("\n")
}

func (es *EncState) members(node *ir.Element) error {
	for i, c := range node.Children {
		if i != 0 {
			if err := es.nl(); err != nil {
				return err
			}
		}
		if !c.IsNamed() {
			return &ir.StructuralError{Op: "encode", Msg: "unnamed element among named siblings"}
		}
		if err := es.member(c); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) member(e *ir.Element) error {
	if !token.ValidName(e.Name) {
		return &ir.StructuralError{Op: "encode", Name: e.Name, Msg: "name can't be written"}
	}
	if err := es.writeColor(NameColor, e.Name); err != nil {
		return err
	}
	if err := es.writeColor(SepColor, " = "); err != nil {
		return err
	}
	return es.value(e.Resolve())
}

func (es *EncState) value(e *ir.Element) error {
	switch e.Kind {
	case ir.AttributeKind:
		return es.attribute(e)
	case ir.NodeKind:
		return es.node(e)
	case ir.ArrayKind:
		return es.array(e)
	}
	return &ir.StructuralError{Op: "encode", Name: e.Name, Msg: fmt.Sprintf("unknown kind %d", e.Kind)}
}

func (es *EncState) attribute(e *ir.Element) error {
	switch {
	case e.Value == nil:
		return es.writeColor(NullColor, token.Null)
	case e.Quoted && !utf8.ValidString(*e.Value):
		return &ir.StructuralError{Op: "encode", Name: e.Name,
			Msg: fmt.Sprintf("quoted value %q is not valid utf8", *e.Value)}
	case e.Quoted:
		return es.writeColor(StringColor, token.Quote(*e.Value))
	case !token.ValidBare(*e.Value):
		return &ir.StructuralError{Op: "encode", Name: e.Name,
			Msg: fmt.Sprintf("bare value %q can't be read back", *e.Value)}
	}
	return es.writeColor(ValueColor, *e.Value)
}

func (es *EncState) node(e *ir.Element) error {
	if len(e.Children) == 0 {
		return es.writeColor(SepColor, "{ }")
	}
	if err := es.writeColor(SepColor, "{"); err != nil {
		return err
	}
	es.w.IncreaseIndent()
	if err := es.nl(); err != nil {
		return err
	}
	if err := es.members(e); err != nil {
		return err
	}
	es.w.DecreaseIndent()
	if err := es.nl(); err != nil {
		return err
	}
	return es.writeColor(SepColor, "}")
}

func (es *EncState) array(e *ir.Element) error {
	if len(e.Children) == 0 {
		return es.writeColor(SepColor, "[ ]")
	}
	for _, c := range e.Children {
		if c.IsNamed() {
			return &ir.StructuralError{Op: "encode", Name: c.Name, Msg: "array can't contain named elements"}
		}
	}
	if inlineArray(e) {
		return es.inlineArray(e)
	}
	if err := es.writeColor(SepColor, "["); err != nil {
		return err
	}
	es.w.IncreaseIndent()
	for i, c := range e.Children {
		if i != 0 {
			if err := es.writeColor(SepColor, ","); err != nil {
				return err
			}
		}
		if err := es.nl(); err != nil {
			return err
		}
		if err := es.value(c.Resolve()); err != nil {
			return err
		}
	}
	es.w.DecreaseIndent()
	if err := es.nl(); err != nil {
		return err
	}
	return es.writeColor(SepColor, "]")
}

func inlineArray(e *ir.Element) bool {
	for _, c := range e.Children {
		if c.Resolve().Kind != ir.AttributeKind {
			return false
		}
	}
	return true
}

func (es *EncState) inlineArray(e *ir.Element) error {
	if err := es.writeColor(SepColor, "[ "); err != nil {
		return err
	}
	for i, c := range e.Children {
		if i != 0 {
			if err := es.writeColor(SepColor, ", "); err != nil {
				return err
			}
		}
		if err := es.attribute(c.Resolve()); err != nil {
			return err
		}
	}
	return es.writeColor(SepColor, " ]")
}
