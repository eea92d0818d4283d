package contract

import (
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/hrd-format/go-hrd/debug"
)

// Wrap is how a value of a type is enclosed in its parent.
type Wrap int

const (
	// WrapNone writes the properties directly into the enclosing
	// container.
	WrapNone Wrap = iota
	WrapElement
	WrapArray
)

func (w Wrap) String() string {
	switch w {
	case WrapElement:
		return "element"
	case WrapArray:
		return "array"
	}
	return "none"
}

// NullPolicy is how null property values are written.
type NullPolicy int

const (
	// NullOmit leaves null properties out.
	NullOmit NullPolicy = iota
	// NullEmpty writes null properties as empty values.
	NullEmpty
	// NullDisallow makes null properties an error.
	NullDisallow
)

func (n NullPolicy) String() string {
	switch n {
	case NullEmpty:
		return "empty"
	case NullDisallow:
		return "disallow"
	}
	return "omit"
}

// Plan is a resolved contract for one type in one position.
type Plan struct {
	Type *Type
	Root bool
	Wrap Wrap
	// Positional is set when properties are written without names.
	Positional  bool
	Nulls       NullPolicy
	Constructor *Constructor
	Properties  []*PlannedProperty
	Collection  *CollectionPlan
}

// PlannedProperty is a participating property. Param is the index of the
// constructor parameter setting it, or -1.
type PlannedProperty struct {
	*Property
	Param int
}

// CollectionPlan says where collection elements go. With an empty Array
// name and Inline set, elements follow the properties in the same
// container.
type CollectionPlan struct {
	Element *TypeRef
	Array   string
	Inline  bool
}

// Resolve resolves the contract of the type called name. Root selects
// the document root position.
func Resolve(reg *Registry, name string, root bool) (*Plan, error) {
	t, ok := reg.Lookup(name)
	if !ok {
		return nil, errorf(name, "unknown type")
	}
	if err := checkRefs(reg, t); err != nil {
		return nil, err
	}
	ctor, err := chooseConstructor(t)
	if err != nil {
		return nil, err
	}
	props, err := planProperties(t, ctor)
	if err != nil {
		return nil, err
	}
	p := &Plan{
		Type:        t,
		Root:        root,
		Constructor: ctor,
		Properties:  props,
	}
	anon := root && t.Options.AnonymousRoot
	switch {
	case t.Options.SerializeAs == Array:
		p.Positional = true
		p.Nulls = NullEmpty
		p.Wrap = WrapArray
	case anon:
		p.Nulls = NullDisallow
		p.Wrap = WrapNone
	default:
		p.Nulls = NullOmit
		p.Wrap = WrapElement
	}
	if t.Kind == CollectionKind {
		if err := planCollection(t, p); err != nil {
			return nil, err
		}
	}
	if debug.Codegen() {
		debug.Logf("contract: %s root=%v wrap=%s positional=%v nulls=%s properties=%d",
			t.Name, root, p.Wrap, p.Positional, p.Nulls, len(p.Properties))
	}
	return p, nil
}

// ResolveAll resolves the root plans of roots and the nested plans of
// every type reachable from them.
func ResolveAll(reg *Registry, roots ...string) (rootPlans, nested []*Plan, err error) {
	for _, r := range roots {
		p, err := Resolve(reg, r, true)
		if err != nil {
			return nil, nil, err
		}
		rootPlans = append(rootPlans, p)
	}
	names, err := reg.Reachable(roots...)
	if err != nil {
		return nil, nil, err
	}
	for _, n := range names {
		p, err := Resolve(reg, n, false)
		if err != nil {
			return nil, nil, err
		}
		nested = append(nested, p)
	}
	return rootPlans, nested, nil
}

func checkRefs(reg *Registry, t *Type) error {
	var err error
	check := func(name string) {
		if _, ok := reg.Lookup(name); !ok && err == nil {
			err = errorf(t.Name, "unknown type %s", name)
		}
	}
	for _, p := range t.Properties {
		if p.Type == nil {
			return errorf(t.Name, "property %s has no type", p.Name)
		}
		p.Type.named(check)
	}
	if t.Kind == CollectionKind {
		if t.Options.CollectionElement == nil {
			return errorf(t.Name, "collection without an element type")
		}
		t.Options.CollectionElement.named(check)
	}
	return err
}

func chooseConstructor(t *Type) (*Constructor, error) {
	var (
		zero   *Constructor
		chosen *Constructor
	)
	for _, c := range t.Constructors {
		if len(c.Params) == 0 {
			if zero == nil {
				zero = c
			}
			continue
		}
		if slices.ContainsFunc(c.Params, func(p *Param) bool { return p.Property == "" }) {
			continue
		}
		if chosen != nil {
			return nil, errorf(t.Name, "ambiguous constructors %s and %s", chosen.Func, c.Func)
		}
		chosen = c
	}
	if chosen == nil {
		if zero == nil {
			return nil, errorf(t.Name, "no appropriate constructor")
		}
		return zero, nil
	}
	bound := map[string]bool{}
	for _, param := range chosen.Params {
		if bound[param.Property] {
			return nil, errorf(t.Name, "property %s bound twice by %s", param.Property, chosen.Func)
		}
		bound[param.Property] = true
		prop := t.Property(param.Property)
		if prop == nil {
			return nil, errorf(t.Name, "no property %s for parameter %s of %s", param.Property, param.Name, chosen.Func)
		}
		if !prop.Type.Equal(param.Type) {
			return nil, errorf(t.Name, "property %s has type %s, parameter %s of %s has type %s",
				prop.Name, prop.Type, param.Name, chosen.Func, param.Type)
		}
		if prop.Ignore != nil && *prop.Ignore {
			return nil, errorf(t.Name, "parameter %s of %s is bound to ignored property %s", param.Name, chosen.Func, prop.Name)
		}
	}
	return chosen, nil
}

func planProperties(t *Type, ctor *Constructor) ([]*PlannedProperty, error) {
	params := map[string]int{}
	for i, param := range ctor.Params {
		params[param.Property] = i
	}
	var bound, rest []*PlannedProperty
	for _, p := range t.Properties {
		if i, ok := params[p.Name]; ok {
			bound = append(bound, &PlannedProperty{Property: p, Param: i})
			continue
		}
		ignore := t.ignoreDefault()
		if p.Ignore != nil {
			ignore = *p.Ignore
		}
		if ignore || !p.Settable {
			continue
		}
		rest = append(rest, &PlannedProperty{Property: p, Param: -1})
	}
	slices.SortFunc(bound, func(a, b *PlannedProperty) int {
		return a.Param - b.Param
	})
	slices.SortStableFunc(rest, func(a, b *PlannedProperty) int {
		if a.Order != b.Order {
			return a.Order - b.Order
		}
		return strings.Compare(a.Name, b.Name)
	})
	if t.Options.KeepOrder {
		for i := 1; i < len(rest); i++ {
			if rest[i].Order == rest[i-1].Order {
				return nil, errorf(t.Name, "properties %s and %s have the same order %d",
					rest[i-1].Name, rest[i].Name, rest[i].Order)
			}
		}
	}
	return append(bound, rest...), nil
}

func planCollection(t *Type, p *Plan) error {
	cp := &CollectionPlan{Element: t.Options.CollectionElement}
	switch {
	case p.Wrap == WrapArray:
		cp.Inline = true
	case len(p.Properties) == 0:
		p.Wrap = WrapArray
		p.Nulls = NullEmpty
		cp.Inline = true
	default:
		names := map[string]bool{}
		for _, prop := range p.Properties {
			names[prop.Name] = true
		}
		cp.Array = "Collection"
		for i := 1; names[cp.Array]; i++ {
			cp.Array = "Collection" + strconv.Itoa(i)
		}
	}
	p.Collection = cp
	return nil
}
