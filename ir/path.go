package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed element path such as "$.Nodes[2].Text". Each segment
// selects a child by name or by position.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	x := p
	for x != nil {
		if x.Field != nil {
			buf.WriteString("." + *x.Field)
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		x = x.Next
	}
	return buf.String()
}

// ParsePath parses a path. The leading "$" is optional; an empty path
// selects the root.
func ParsePath(v string) (*Path, error) {
	s := strings.TrimPrefix(v, "$")
	var (
		head *Path
		tail *Path
	)
	push := func(p *Path) {
		if head == nil {
			head = p
		} else {
			tail.Next = p
		}
		tail = p
	}
	i := 0
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			j := i
			for j < len(s) && s[j] != '.' && s[j] != '[' {
				if s[j] == ']' {
					return nil, fmt.Errorf("%w: unexpected ']' in path %q", ErrStructure, v)
				}
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w: empty field in path %q", ErrStructure, v)
			}
			f := s[i:j]
			push(&Path{Field: &f})
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index in path %q", ErrStructure, v)
			}
			n, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in path %q", ErrStructure, s[i+1:i+j], v)
			}
			push(&Path{Index: &n})
			i += j + 1
		default:
			if i != 0 {
				return nil, fmt.Errorf("%w: unexpected %q in path %q", ErrStructure, s[i], v)
			}
			s = "." + s
		}
	}
	return head, nil
}

// GetPath returns the element at path p below e.
func (e *Element) GetPath(p string) (*Element, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return e.getPath(path)
}

func (e *Element) getPath(p *Path) (*Element, error) {
	res := e
	for x := p; x != nil; x = x.Next {
		cur := res.Resolve()
		switch {
		case x.Field != nil:
			res = cur.Get(*x.Field)
			if res == nil {
				return nil, fmt.Errorf("%w: no element %q at %s", ErrNotFound, *x.Field, pathPrefix(p, x))
			}
		case x.Index != nil:
			if cur.Kind == AttributeKind || *x.Index >= len(cur.Children) {
				return nil, fmt.Errorf("%w: no index %d at %s", ErrNotFound, *x.Index, pathPrefix(p, x))
			}
			res = cur.Children[*x.Index]
		}
	}
	return res, nil
}

func pathPrefix(p, stop *Path) string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil && x != stop; x = x.Next {
		if x.Field != nil {
			buf.WriteString("." + *x.Field)
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}
