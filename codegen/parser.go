package codegen

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/signadot/hrd-format/go-hrd/contract"
)

const (
	typeDirective        = "//hrd:type"
	constructorDirective = "//hrd:constructor"
)

// ParseFile parses a Go source file and returns its AST.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// ExtractTypes extracts the types and constructors marked for HRD
// serialization from an AST file.
func ExtractTypes(file *ast.File, filePath string) ([]*TypeInfo, []*ConstructorInfo, error) {
	var (
		types []*TypeInfo
		ctors []*ConstructorInfo
	)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				typeSpec := spec.(*ast.TypeSpec)
				doc := typeSpec.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}
				info, err := extractType(typeSpec, doc)
				if err != nil {
					return nil, nil, fmt.Errorf("type %q: %w", typeSpec.Name.Name, err)
				}
				if info == nil {
					continue
				}
				info.FilePath = filePath
				types = append(types, info)
			}
		case *ast.FuncDecl:
			ctor, err := extractConstructor(d)
			if err != nil {
				return nil, nil, fmt.Errorf("func %q: %w", d.Name.Name, err)
			}
			if ctor != nil {
				ctors = append(ctors, ctor)
			}
		}
	}
	return types, ctors, nil
}

// directive returns the content following prefix in the comment group.
func directive(doc *ast.CommentGroup, prefix string) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, prefix)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func extractType(spec *ast.TypeSpec, doc *ast.CommentGroup) (*TypeInfo, error) {
	opts, marked := directive(doc, typeDirective)
	st, isStruct := spec.Type.(*ast.StructType)
	if isStruct {
		if tag, ok := markerTag(st); ok {
			if marked {
				opts = opts + "," + tag
			} else {
				opts = tag
			}
			marked = true
		}
	}
	if !marked {
		return nil, nil
	}
	parsed, err := ParseStructTag(opts)
	if err != nil {
		return nil, err
	}
	info := &TypeInfo{Type: &contract.Type{Name: spec.Name.Name}}
	if err := applyTypeOptions(info, parsed); err != nil {
		return nil, err
	}
	t := info.Type
	switch x := spec.Type.(type) {
	case *ast.StructType:
		if err := extractFields(t, x); err != nil {
			return nil, err
		}
	case *ast.ArrayType:
		if x.Len != nil {
			return nil, fmt.Errorf("arrays are not supported, use a slice")
		}
		t.Kind = contract.CollectionKind
		if t.Options.CollectionElement == nil {
			elem, err := TypeRefOf(x.Elt)
			if err != nil {
				return nil, err
			}
			t.Options.CollectionElement = elem
		}
	default:
		return nil, fmt.Errorf("only structs and slices can be serialized")
	}
	if t.Kind == contract.CollectionKind && t.Options.CollectionElement == nil {
		return nil, fmt.Errorf("collection without an element type")
	}
	// every Go type has a zero value
	t.Constructors = append(t.Constructors, &contract.Constructor{})
	return info, nil
}

// markerTag returns the hrd tag of the blank marker field of st.
func markerTag(st *ast.StructType) (string, bool) {
	if st.Fields == nil {
		return "", false
	}
	for _, f := range st.Fields.List {
		if len(f.Names) != 1 || f.Names[0].Name != "_" || f.Tag == nil {
			continue
		}
		if tag, ok := getFieldTag(f.Tag.Value); ok {
			return tag, true
		}
	}
	return "", false
}

func applyTypeOptions(info *TypeInfo, parsed map[string]string) error {
	o := &info.Type.Options
	for k, v := range parsed {
		switch k {
		case "serializeAs":
			s, err := contract.ParseSerializeAs(v)
			if err != nil {
				return err
			}
			o.SerializeAs = s
		case "keepOrder":
			o.KeepOrder = true
		case "anonymousRoot":
			o.AnonymousRoot = true
		case "root":
			info.Root = true
		case "ignoreProperties":
			b := true
			if v != "" {
				var err error
				if b, err = strconv.ParseBool(v); err != nil {
					return &TagError{Tag: k + "=" + v, Msg: "expected a boolean"}
				}
			}
			o.IgnoreProperties = contract.Flag(b)
		case "element":
			expr, err := parser.ParseExpr(v)
			if err != nil {
				return &TagError{Tag: k + "=" + v, Msg: "expected a type"}
			}
			ref, err := TypeRefOf(expr)
			if err != nil {
				return err
			}
			o.CollectionElement = ref
		default:
			return &TagError{Tag: k, Msg: "unknown type option"}
		}
	}
	return nil
}

// extractFields extracts the properties of a struct type.
func extractFields(t *contract.Type, st *ast.StructType) error {
	if st.Fields == nil {
		return nil
	}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return fmt.Errorf("embedded fields are not supported")
		}
		var (
			parsed = map[string]string{}
			err    error
		)
		if field.Tag != nil {
			if tag, ok := getFieldTag(field.Tag.Value); ok {
				if parsed, err = ParseStructTag(tag); err != nil {
					return err
				}
			}
		}
		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}
			if _, ok := parsed["items"]; ok {
				if t.Items != "" {
					return fmt.Errorf("fields %s and %s both hold items", t.Items, name.Name)
				}
				t.Kind = contract.CollectionKind
				t.Items = name.Name
				if t.Options.CollectionElement == nil {
					arr, ok := field.Type.(*ast.ArrayType)
					if !ok || arr.Len != nil {
						return fmt.Errorf("items field %s is not a slice", name.Name)
					}
					elem, err := TypeRefOf(arr.Elt)
					if err != nil {
						return err
					}
					t.Options.CollectionElement = elem
				}
				continue
			}
			p, err := fieldProperty(name.Name, field.Type, parsed)
			if err != nil {
				return fmt.Errorf("field %s: %w", name.Name, err)
			}
			if p != nil {
				t.Properties = append(t.Properties, p)
			}
		}
	}
	return nil
}

func fieldProperty(name string, typ ast.Expr, parsed map[string]string) (*contract.Property, error) {
	p := &contract.Property{Name: name, Field: name, Settable: true}
	for k, v := range parsed {
		switch k {
		case "name":
			if v == "" {
				return nil, &TagError{Tag: k, Msg: "empty name"}
			}
			p.Name = v
		case "order":
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, &TagError{Tag: k + "=" + v, Msg: "expected an integer"}
			}
			p.Order = n
		case "ignore":
			p.Ignore = contract.Flag(true)
		case "include":
			p.Ignore = contract.Flag(false)
		case "readonly":
			p.Settable = false
		default:
			return nil, &TagError{Tag: k, Msg: "unknown field option"}
		}
	}
	ref, err := TypeRefOf(typ)
	if err != nil {
		if p.Ignore != nil && *p.Ignore {
			return nil, nil
		}
		return nil, err
	}
	p.Type = ref
	return p, nil
}

// TypeRefOf converts a Go type expression to a contract type reference.
func TypeRefOf(expr ast.Expr) (*contract.TypeRef, error) {
	switch x := expr.(type) {
	case *ast.Ident:
		if prim, ok := contract.LookupPrimitive(x.Name); ok {
			return contract.Prim(prim), nil
		}
		switch x.Name {
		case "int", "uint", "uintptr", "complex64", "complex128", "any", "error":
			return nil, fmt.Errorf("unsupported type %s", x.Name)
		}
		return contract.Named(x.Name), nil
	case *ast.SelectorExpr:
		if pkg, ok := x.X.(*ast.Ident); ok && pkg.Name == "time" && x.Sel.Name == "Time" {
			return contract.Time(), nil
		}
		return nil, fmt.Errorf("unsupported type %s", exprString(expr))
	case *ast.StarExpr:
		elem, err := TypeRefOf(x.X)
		if err != nil {
			return nil, err
		}
		return contract.Ptr(elem), nil
	case *ast.ArrayType:
		if x.Len != nil {
			return nil, fmt.Errorf("unsupported type %s, use a slice", exprString(expr))
		}
		elem, err := TypeRefOf(x.Elt)
		if err != nil {
			return nil, err
		}
		return contract.SliceOf(elem), nil
	}
	return nil, fmt.Errorf("unsupported type %s", exprString(expr))
}

// exprString renders a type expression for messages.
func exprString(expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, token.NewFileSet(), expr); err != nil {
		return fmt.Sprintf("%T", expr)
	}
	return b.String()
}

// extractConstructor returns the constructor described by a function
// marked //hrd:constructor. Parameters bind to the property given in the
// directive (param=Property) or else to the field with the same name,
// ignoring case.
func extractConstructor(fn *ast.FuncDecl) (*ConstructorInfo, error) {
	opts, ok := directive(fn.Doc, constructorDirective)
	if !ok {
		return nil, nil
	}
	if fn.Recv != nil {
		return nil, fmt.Errorf("constructors can't be methods")
	}
	if fn.Type.TypeParams != nil {
		return nil, fmt.Errorf("constructors can't be generic")
	}
	res := fn.Type.Results
	if res == nil || len(res.List) != 1 || len(res.List[0].Names) > 1 {
		return nil, fmt.Errorf("constructors return exactly one value")
	}
	ctor := &contract.Constructor{Func: fn.Name.Name}
	rt := res.List[0].Type
	if star, ok := rt.(*ast.StarExpr); ok {
		ctor.Pointer = true
		rt = star.X
	}
	id, ok := rt.(*ast.Ident)
	if !ok {
		return nil, fmt.Errorf("constructors return a type of the package")
	}
	bindings, err := ParseStructTag(opts)
	if err != nil {
		return nil, err
	}
	for _, field := range fn.Type.Params.List {
		ref, err := TypeRefOf(field.Type)
		if err != nil {
			return nil, err
		}
		for _, name := range field.Names {
			ctor.Params = append(ctor.Params, &contract.Param{
				Name:     name.Name,
				Property: bindings[name.Name],
				Type:     ref,
			})
		}
	}
	return &ConstructorInfo{TypeName: id.Name, Constructor: ctor}, nil
}

// BuildRegistry attaches constructors to their types and registers the
// types. It returns the names of the root types: those marked root, or
// all types when none is.
func BuildRegistry(infos []*TypeInfo, ctors []*ConstructorInfo) (*contract.Registry, []string, error) {
	byName := map[string]*TypeInfo{}
	for _, info := range infos {
		byName[info.Type.Name] = info
	}
	for _, c := range ctors {
		info, ok := byName[c.TypeName]
		if !ok {
			return nil, nil, fmt.Errorf("constructor %s returns %s, which is not an hrd type", c.Constructor.Func, c.TypeName)
		}
		bindParams(info.Type, c.Constructor)
		info.Type.Constructors = append(info.Type.Constructors, c.Constructor)
	}
	reg := contract.NewRegistry()
	var roots, all []string
	for _, info := range infos {
		if err := reg.Add(info.Type); err != nil {
			return nil, nil, err
		}
		all = append(all, info.Type.Name)
		if info.Root {
			roots = append(roots, info.Type.Name)
		}
	}
	if len(roots) == 0 {
		roots = all
	}
	return reg, roots, nil
}

func bindParams(t *contract.Type, c *contract.Constructor) {
	for _, param := range c.Params {
		if param.Property != "" {
			continue
		}
		for _, p := range t.Properties {
			if strings.EqualFold(p.GoField(), param.Name) {
				param.Property = p.Name
				break
			}
		}
	}
}
