package ir

import "fmt"

// Kind tags the variant an Element holds.
type Kind int

const (
	NodeKind Kind = iota
	ArrayKind
	AttributeKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NodeKind:      "Node",
		ArrayKind:     "Array",
		AttributeKind: "Attribute",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for _, kk := range Kinds() {
		if kk.String() == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		NodeKind,
		ArrayKind,
		AttributeKind,
	}
}

// IsLeaf reports whether elements of kind k hold a value instead of
// children.
func (k Kind) IsLeaf() bool {
	return k == AttributeKind
}
