package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"

	"github.com/signadot/hrd-format/go-hrd/contract"
	"github.com/signadot/hrd-format/go-hrd/debug"
)

// Generate returns gofmt-ed Go source for package pkg with serializers
// for roots and every type reachable from them.
//
// Each root T gets
//
//	func SerializeT(w *stream.Writer, v *T) error
//	func DeserializeT(r *stream.Reader) (*T, error)
//
// and each reachable type private writeT and readT helpers that work on
// the element the value is stored in.
func Generate(pkg string, reg *contract.Registry, roots ...string) ([]byte, error) {
	rootPlans, nested, err := contract.ResolveAll(reg, roots...)
	if err != nil {
		return nil, err
	}
	g := &generator{}
	for _, p := range rootPlans {
		g.serialize(p)
		g.deserialize(p)
	}
	for _, p := range nested {
		g.writer(p)
		g.reader(p)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by hrd-codegen. DO NOT EDIT.\n\npackage %s\n\nimport (\n", pkg)
	if g.usesFmt {
		out.WriteString("\t\"fmt\"\n")
	}
	if g.usesTime {
		out.WriteString("\t\"time\"\n")
	}
	out.WriteString("\n\t\"github.com/signadot/hrd-format/go-hrd/stream\"\n)\n")
	out.Write(g.buf.Bytes())

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated invalid source: %w", err)
	}
	if debug.Codegen() {
		debug.Logf("codegen: package %s, %d roots, %d types, %d bytes", pkg, len(rootPlans), len(nested), len(src))
	}
	return src, nil
}

type generator struct {
	buf      bytes.Buffer
	usesFmt  bool
	usesTime bool
}

func (g *generator) p(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
	g.buf.WriteByte('\n')
}

func (g *generator) errorf(ret, msg string, args ...string) {
	g.usesFmt = true
	list := strconv.Quote(msg)
	for _, a := range args {
		list += ", " + a
	}
	g.p("return %sfmt.Errorf(%s)", ret, list)
}

func (g *generator) goType(ref *contract.TypeRef) string {
	for r := ref; r != nil; r = r.Elem {
		if r.Kind == contract.TimeRef {
			g.usesTime = true
		}
	}
	return ref.String()
}

func (g *generator) check(ret string) {
	g.p("if err != nil {")
	g.p("return %serr", ret)
	g.p("}")
}

func (g *generator) serialize(p *contract.Plan) {
	t := p.Type
	g.p("\n// Serialize%s writes v as the root of the document w builds.", t.Name)
	g.p("func Serialize%s(w *stream.Writer, v *%s) error {", t.Name, t.Name)
	g.p("if v == nil {")
	g.errorf("", t.Name+": nil value")
	g.p("}")
	switch {
	case t.Options.AnonymousRoot && p.Wrap == contract.WrapNone:
		g.writeBody(p)
		g.p("return nil")
	case t.Options.AnonymousRoot:
		g.p("return write%s(w, \"\", v)", t.Name)
	default:
		g.p("return write%s(w, %q, v)", t.Name, t.Name)
	}
	g.p("}")
}

func (g *generator) deserialize(p *contract.Plan) {
	t := p.Type
	g.p("\n// Deserialize%s reads a %s from the document r is positioned at.", t.Name, t.Name)
	g.p("func Deserialize%s(r *stream.Reader) (*%s, error) {", t.Name, t.Name)
	if t.Options.AnonymousRoot {
		g.p("return read%s(r)", t.Name)
		g.p("}")
		return
	}
	g.p("ok, err := r.ReadBeginElementName(%q)", t.Name)
	g.check("nil, ")
	g.p("if !ok {")
	g.errorf("nil, ", t.Name+": empty document")
	g.p("}")
	g.p("v, err := read%s(r)", t.Name)
	g.check("nil, ")
	g.p("if err := r.ReadEndElement(); err != nil {")
	g.p("return nil, err")
	g.p("}")
	g.p("return v, nil")
	g.p("}")
}

func (g *generator) writer(p *contract.Plan) {
	t := p.Type
	g.p("\nfunc write%s(w *stream.Writer, name string, v *%s) error {", t.Name, t.Name)
	begin, end := "WriteBeginElement", "WriteEndElement"
	if p.Wrap == contract.WrapArray {
		begin, end = "WriteBeginArray", "WriteEndArray"
	}
	g.p("if err := w.%s(name); err != nil {", begin)
	g.p("return err")
	g.p("}")
	g.writeBody(p)
	g.p("return w.%s()", end)
	g.p("}")
}

// writeBody writes the properties and items of v into the open
// container.
func (g *generator) writeBody(p *contract.Plan) {
	t := p.Type
	for _, pp := range p.Properties {
		name := strconv.Quote(pp.Name)
		if p.Positional {
			name = `""`
		}
		g.writeValue(pp.Type, "v."+pp.GoField(), name, p.Nulls, t.Name+"."+pp.Name, 0)
	}
	cp := p.Collection
	if cp == nil {
		return
	}
	items := "*v"
	if t.Items != "" {
		items = "v." + t.Items
	}
	if !cp.Inline {
		g.p("if err := w.WriteBeginArray(%q); err != nil {", cp.Array)
		g.p("return err")
		g.p("}")
	}
	g.p("for _, x0 := range %s {", items)
	g.writeValue(cp.Element, "x0", `""`, contract.NullEmpty, t.Name+"[]", 1)
	g.p("}")
	if !cp.Inline {
		g.p("if err := w.WriteEndArray(); err != nil {")
		g.p("return err")
		g.p("}")
	}
}

func (g *generator) writeValue(ref *contract.TypeRef, expr, name string, nulls contract.NullPolicy, ctx string, d int) {
	switch ref.Kind {
	case contract.PrimitiveRef:
		g.p("if err := w.Write%s(%s, %s); err != nil {", ref.Prim.Method(), name, expr)
	case contract.TimeRef:
		g.p("if err := w.WriteTime(%s, %s); err != nil {", name, expr)
	case contract.NamedRef:
		g.p("if err := write%s(w, %s, &%s); err != nil {", ref.Name, name, expr)
	case contract.PointerRef, contract.SliceRef:
		g.nullable(ref, expr, name, nulls, ctx, d)
		return
	}
	g.p("return err")
	g.p("}")
}

func (g *generator) nullable(ref *contract.TypeRef, expr, name string, nulls contract.NullPolicy, ctx string, d int) {
	switch nulls {
	case contract.NullOmit:
		g.p("if %s != nil {", expr)
	case contract.NullEmpty:
		g.p("if %s == nil {", expr)
		g.p("if err := w.WriteEmptyValue(%s); err != nil {", name)
		g.p("return err")
		g.p("}")
		g.p("} else {")
	case contract.NullDisallow:
		g.p("if %s == nil {", expr)
		g.errorf("", ctx+": null value is not allowed")
		g.p("}")
	}
	if ref.Kind == contract.PointerRef {
		if ref.Elem.Kind == contract.NamedRef {
			g.p("if err := write%s(w, %s, %s); err != nil {", ref.Elem.Name, name, expr)
			g.p("return err")
			g.p("}")
		} else {
			g.writeValue(ref.Elem, "*"+expr, name, nulls, ctx, d)
		}
	} else {
		x := fmt.Sprintf("x%d", d+1)
		g.p("if err := w.WriteBeginArray(%s); err != nil {", name)
		g.p("return err")
		g.p("}")
		g.p("for _, %s := range %s {", x, expr)
		g.writeValue(ref.Elem, x, `""`, contract.NullEmpty, ctx+"[]", d+1)
		g.p("}")
		g.p("if err := w.WriteEndArray(); err != nil {")
		g.p("return err")
		g.p("}")
	}
	if nulls != contract.NullDisallow {
		g.p("}")
	}
}

func (g *generator) reader(p *contract.Plan) {
	t := p.Type
	g.p("\nfunc read%s(r *stream.Reader) (*%s, error) {", t.Name, t.Name)

	positional := p.Wrap == contract.WrapArray
	if len(p.Properties) != 0 || p.Collection != nil {
		g.p("var (")
		for i, pp := range p.Properties {
			g.p("f%d %s", i, g.goType(pp.Type))
			if !positional && pp.Param < 0 {
				g.p("has%d bool", i)
			}
		}
		if p.Collection != nil {
			g.p("items = []%s{}", g.goType(p.Collection.Element))
		}
		g.p(")")
	}
	if positional {
		g.readPositional(p)
	} else {
		g.readNamed(p)
	}
	g.construct(p, positional)
	g.p("return v, nil")
	g.p("}")
}

func (g *generator) readNamed(p *contract.Plan) {
	t := p.Type
	if len(p.Properties) == 0 && p.Collection == nil {
		return
	}
	g.p("if r.ReadBeginElement() {")
	g.p("for ok := true; ok; ok = r.ReadNextSibling() {")
	g.p("switch r.ElementName() {")
	for i, pp := range p.Properties {
		g.p("case %q:", pp.Name)
		g.readValue(pp.Type, fmt.Sprintf("f%d", i), t.Name+"."+pp.Name, 0)
		if pp.Param < 0 {
			g.p("has%d = true", i)
		}
	}
	if cp := p.Collection; cp != nil {
		g.p("case %q:", cp.Array)
		g.p("if r.ReadBeginElement() {")
		g.p("for ok := true; ok; ok = r.ReadNextSibling() {")
		g.readItem(p)
		g.p("}")
		g.endElement()
		g.p("}")
	}
	g.p("}")
	g.p("}")
	g.endElement()
	g.p("}")
}

func (g *generator) readPositional(p *contract.Plan) {
	t := p.Type
	n := len(p.Properties)
	if n == 0 && p.Collection == nil {
		return
	}
	g.p("n := 0")
	g.p("if r.ReadBeginElement() {")
	g.p("for ok := true; ok; ok, n = r.ReadNextSibling(), n+1 {")
	g.p("switch n {")
	for i, pp := range p.Properties {
		g.p("case %d:", i)
		g.readValue(pp.Type, fmt.Sprintf("f%d", i), t.Name+"."+pp.Name, 0)
	}
	if p.Collection != nil {
		g.p("default:")
		g.readItem(p)
	}
	g.p("}")
	g.p("}")
	g.endElement()
	g.p("}")
	if n != 0 {
		g.p("if n < %d {", n)
		g.errorf("nil, ", t.Name+": %d of %d values", "n", strconv.Itoa(n))
		g.p("}")
	}
}

func (g *generator) readItem(p *contract.Plan) {
	elem := p.Collection.Element
	g.p("var e0 %s", g.goType(elem))
	g.readValue(elem, "e0", p.Type.Name+"[]", 1)
	g.p("items = append(items, e0)")
}

func (g *generator) endElement() {
	g.p("if err := r.ReadEndElement(); err != nil {")
	g.p("return nil, err")
	g.p("}")
}

// readValue reads the value at the cursor into target.
func (g *generator) readValue(ref *contract.TypeRef, target, ctx string, d int) {
	x := fmt.Sprintf("x%d", d)
	switch ref.Kind {
	case contract.PrimitiveRef:
		g.p("%s, err := r.Read%s()", x, ref.Prim.Method())
	case contract.TimeRef:
		g.p("%s, err := r.ReadTime()", x)
	case contract.NamedRef:
		g.p("%s, err := read%s(r)", x, ref.Name)
		x = "*" + x
	case contract.PointerRef:
		g.p("if !r.IsNull() {")
		if ref.Elem.Kind == contract.NamedRef {
			g.p("%s, err := read%s(r)", x, ref.Elem.Name)
			g.wrapErr(ctx)
			g.p("%s = %s", target, x)
		} else {
			ptr := fmt.Sprintf("p%d", d+1)
			g.p("var %s %s", ptr, g.goType(ref.Elem))
			g.readValue(ref.Elem, ptr, ctx, d+1)
			g.p("%s = &%s", target, ptr)
		}
		g.p("}")
		return
	case contract.SliceRef:
		s := fmt.Sprintf("s%d", d+1)
		e := fmt.Sprintf("e%d", d+1)
		g.p("if !r.IsNull() {")
		g.p("%s := %s{}", s, g.goType(ref))
		g.p("if r.ReadBeginElement() {")
		g.p("for ok := true; ok; ok = r.ReadNextSibling() {")
		g.p("var %s %s", e, g.goType(ref.Elem))
		g.readValue(ref.Elem, e, ctx+"[]", d+1)
		g.p("%s = append(%s, %s)", s, s, e)
		g.p("}")
		g.endElement()
		g.p("}")
		g.p("%s = %s", target, s)
		g.p("}")
		return
	}
	g.wrapErr(ctx)
	g.p("%s = %s", target, x)
}

func (g *generator) wrapErr(ctx string) {
	g.p("if err != nil {")
	g.errorf("nil, ", ctx+": %w", "err")
	g.p("}")
}

// construct builds v from the locals read.
func (g *generator) construct(p *contract.Plan, positional bool) {
	t := p.Type
	c := p.Constructor
	args := make([]string, len(c.Params))
	for i, pp := range p.Properties {
		if pp.Param >= 0 {
			args[pp.Param] = fmt.Sprintf("f%d", i)
		}
	}
	call := ""
	if c.Func != "" {
		call = c.Func + "("
		for i, a := range args {
			if i > 0 {
				call += ", "
			}
			call += a
		}
		call += ")"
	}
	switch {
	case call == "":
		g.p("v := new(%s)", t.Name)
	case c.Pointer:
		g.p("v := %s", call)
	default:
		g.p("v := new(%s)", t.Name)
		g.p("*v = %s", call)
	}
	for i, pp := range p.Properties {
		if pp.Param >= 0 {
			continue
		}
		if positional {
			g.p("v.%s = f%d", pp.GoField(), i)
			continue
		}
		g.p("if has%d {", i)
		g.p("v.%s = f%d", pp.GoField(), i)
		g.p("}")
	}
	if p.Collection != nil {
		if t.Items == "" {
			g.p("*v = items")
		} else {
			g.p("v.%s = items", t.Items)
		}
	}
}
