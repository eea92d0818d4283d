package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/hrd-format/go-hrd/debug"
	"github.com/signadot/hrd-format/go-hrd/ir"
)

// Env is what an expression sees for one child.
type Env struct {
	Name  string `expr:"name"`
	Kind  string `expr:"kind"`
	Index int    `expr:"index"`
	Value any    `expr:"value"`
}

// Filter is a compiled expression.
type Filter struct {
	src     string
	program *vm.Program
}

// Compile compiles src as a boolean expression over children of doc.
func Compile(src string, doc *ir.Element) (*Filter, error) {
	program, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Filter{src: src, program: program}, nil
}

func exprOpts(doc *ir.Element) []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ToAny(res), nil
		},
			new(func(string) any)),
	}
}

// Match evaluates f for the child c at index i.
func (f *Filter) Match(c *ir.Element, i int) (bool, error) {
	env := Env{
		Name:  c.Name,
		Kind:  c.Resolve().Kind.String(),
		Index: i,
		Value: ToAny(c),
	}
	res, err := vm.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("eval %q on %d: %w", f.src, i, err)
	}
	return res.(bool), nil
}

// Select returns the children of the element at path in doc for which
// the expression src is true.
func Select(doc *ir.Element, path, src string) ([]*ir.Element, error) {
	e, err := doc.GetPath(path)
	if err != nil {
		return nil, err
	}
	f, err := Compile(src, doc)
	if err != nil {
		return nil, err
	}
	var res []*ir.Element
	for i, c := range e.Resolve().Children {
		ok, err := f.Match(c, i)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, c)
		}
	}
	if debug.Query() {
		debug.Logf("query: %s %q selected %d", path, src, len(res))
	}
	return res, nil
}
