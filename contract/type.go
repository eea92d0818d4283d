package contract

import "fmt"

type Kind int

const (
	StructKind Kind = iota
	CollectionKind
)

func (k Kind) String() string {
	if k == CollectionKind {
		return "collection"
	}
	return "struct"
}

type SerializeAs int

const (
	Auto SerializeAs = iota
	Item
	Array
)

func (s SerializeAs) String() string {
	switch s {
	case Auto:
		return "auto"
	case Item:
		return "item"
	case Array:
		return "array"
	}
	return fmt.Sprintf("<serializeAs %d>", int(s))
}

func ParseSerializeAs(v string) (SerializeAs, error) {
	s, ok := map[string]SerializeAs{
		"":      Auto,
		"auto":  Auto,
		"item":  Item,
		"array": Array,
	}[v]
	if !ok {
		return 0, errorf("", "unknown serializeAs %q", v)
	}
	return s, nil
}

// Options are the type level serialization settings.
type Options struct {
	SerializeAs   SerializeAs
	KeepOrder     bool
	AnonymousRoot bool
	// IgnoreProperties is the default for properties without their own
	// Ignore setting. Unset means false for structs, true for
	// collections.
	IgnoreProperties *bool
	// CollectionElement is the element type of a collection.
	CollectionElement *TypeRef
}

// Type describes a serializable Go type.
type Type struct {
	Name    string
	Kind    Kind
	Options Options
	// Items is the field holding the elements of a collection struct.
	// It is empty when the collection type is itself a slice.
	Items        string
	Properties   []*Property
	Constructors []*Constructor
}

type Property struct {
	// Name is the element name used in documents.
	Name string
	// Field is the Go field, defaulting to Name.
	Field    string
	Type     *TypeRef
	Order    int
	Ignore   *bool
	Settable bool
}

func (p *Property) GoField() string {
	if p.Field != "" {
		return p.Field
	}
	return p.Name
}

// Constructor is a function building a value of the type. A constructor
// without parameters stands for the zero value.
type Constructor struct {
	Func string
	// Pointer is set when Func returns a pointer.
	Pointer bool
	Params  []*Param
}

// Param is a constructor parameter. Property names the property it sets,
// or is empty when the parameter is unbound.
type Param struct {
	Name     string
	Property string
	Type     *TypeRef
}

func (t *Type) Property(name string) *Property {
	for _, p := range t.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (t *Type) ignoreDefault() bool {
	if t.Options.IgnoreProperties != nil {
		return *t.Options.IgnoreProperties
	}
	return t.Kind == CollectionKind
}

// Flag returns a pointer to v, for optional settings.
func Flag(v bool) *bool {
	return &v
}
