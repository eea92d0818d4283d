package contract

import "fmt"

type RefKind int

const (
	PrimitiveRef RefKind = iota
	TimeRef
	NamedRef
	PointerRef
	SliceRef
)

type Primitive int

const (
	Int8 Primitive = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Bool
	Char
	String
)

var primNames = map[Primitive]string{
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Bool:    "bool",
	Char:    "rune",
	String:  "string",
}

func (p Primitive) String() string {
	if s, ok := primNames[p]; ok {
		return s
	}
	return fmt.Sprintf("<primitive %d>", int(p))
}

// Method returns the suffix of the stream Read and Write methods for p,
// as in ReadInt32 and WriteInt32.
func (p Primitive) Method() string {
	return map[Primitive]string{
		Int8:    "Int8",
		Int16:   "Int16",
		Int32:   "Int32",
		Int64:   "Int64",
		Uint8:   "Uint8",
		Uint16:  "Uint16",
		Uint32:  "Uint32",
		Uint64:  "Uint64",
		Float32: "Float32",
		Float64: "Float64",
		Bool:    "Bool",
		Char:    "Char",
		String:  "String",
	}[p]
}

// LookupPrimitive returns the primitive with Go type name name. Aliases
// byte and rune are accepted.
func LookupPrimitive(name string) (Primitive, bool) {
	switch name {
	case "byte":
		return Uint8, true
	}
	for p, n := range primNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// TypeRef is a reference to the type of a property or parameter.
type TypeRef struct {
	Kind RefKind
	Prim Primitive
	Name string
	Elem *TypeRef
}

func Prim(p Primitive) *TypeRef {
	return &TypeRef{Kind: PrimitiveRef, Prim: p}
}

func Time() *TypeRef {
	return &TypeRef{Kind: TimeRef}
}

func Named(name string) *TypeRef {
	return &TypeRef{Kind: NamedRef, Name: name}
}

func Ptr(elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: PointerRef, Elem: elem}
}

func SliceOf(elem *TypeRef) *TypeRef {
	return &TypeRef{Kind: SliceRef, Elem: elem}
}

// String returns the Go type expression for r.
func (r *TypeRef) String() string {
	switch r.Kind {
	case PrimitiveRef:
		return r.Prim.String()
	case TimeRef:
		return "time.Time"
	case NamedRef:
		return r.Name
	case PointerRef:
		return "*" + r.Elem.String()
	case SliceRef:
		return "[]" + r.Elem.String()
	}
	return fmt.Sprintf("<ref %d>", int(r.Kind))
}

// Nullable reports whether values of r can be null.
func (r *TypeRef) Nullable() bool {
	return r.Kind == PointerRef || r.Kind == SliceRef
}

func (r *TypeRef) Equal(o *TypeRef) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.String() == o.String()
}

// named calls f for every named type r refers to.
func (r *TypeRef) named(f func(string)) {
	switch r.Kind {
	case NamedRef:
		f(r.Name)
	case PointerRef, SliceRef:
		r.Elem.named(f)
	}
}
