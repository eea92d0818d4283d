package contract

import "slices"

// Registry holds the types known to a resolution.
type Registry struct {
	types map[string]*Type
	order []string
}

func NewRegistry() *Registry {
	return &Registry{types: map[string]*Type{}}
}

// Add registers types, failing on duplicate names.
func (r *Registry) Add(ts ...*Type) error {
	for _, t := range ts {
		if t.Name == "" {
			return errorf("", "type without a name")
		}
		if _, ok := r.types[t.Name]; ok {
			return errorf(t.Name, "registered twice")
		}
		r.types[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return nil
}

func (r *Registry) Lookup(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []*Type {
	res := make([]*Type, len(r.order))
	for i, n := range r.order {
		res[i] = r.types[n]
	}
	return res
}

// Reachable returns the names of the types reachable from roots through
// properties and collection elements, depth first, each once.
func (r *Registry) Reachable(roots ...string) ([]string, error) {
	var (
		res  []string
		seen = map[string]bool{}
		errs error
	)
	var visit func(name string)
	visit = func(name string) {
		if seen[name] || errs != nil {
			return
		}
		t, ok := r.types[name]
		if !ok {
			errs = errorf(name, "unknown type")
			return
		}
		seen[name] = true
		res = append(res, name)
		refs := []*TypeRef{}
		for _, p := range t.Properties {
			refs = append(refs, p.Type)
		}
		if t.Options.CollectionElement != nil {
			refs = append(refs, t.Options.CollectionElement)
		}
		for _, ref := range refs {
			ref.named(visit)
		}
	}
	for _, root := range roots {
		visit(root)
	}
	if errs != nil {
		return nil, errs
	}
	return slices.Clip(res), nil
}
