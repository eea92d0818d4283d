package codegen

import (
	"reflect"
	"strconv"
	"strings"
)

// ParseStructTag parses the content of an hrd struct tag into a map.
// It handles key-value pairs (key=value) and boolean flags (key), with
// comma separators. Values may be quoted (key="value, with commas").
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return result, nil
	}

	var key, value strings.Builder
	inValue := false
	inQuote := false
	quoted := false

	flush := func() {
		k := strings.TrimSpace(key.String())
		v := value.String()
		if !quoted {
			v = strings.TrimSpace(v)
		}
		if k != "" {
			result[k] = v
		}
		key.Reset()
		value.Reset()
		inValue = false
		quoted = false
	}

	for _, r := range tag {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
				continue
			}
			value.WriteRune(r)
		case !inValue && r == '=':
			inValue = true
		case r == ',':
			flush()
		case inValue && r == '"' && strings.TrimSpace(value.String()) == "":
			value.Reset()
			inQuote = true
			quoted = true
		case inValue:
			value.WriteRune(r)
		default:
			key.WriteRune(r)
		}
	}
	if inQuote {
		return nil, &TagError{Tag: tag, Msg: "unterminated quote"}
	}
	flush()
	return result, nil
}

// TagError reports a malformed hrd tag or directive.
type TagError struct {
	Tag string
	Msg string
}

func (e *TagError) Error() string {
	return "hrd tag " + `"` + e.Tag + `": ` + e.Msg
}

// getFieldTag extracts the hrd tag from a struct tag literal as it
// appears in source.
func getFieldTag(lit string) (string, bool) {
	raw, err := strconv.Unquote(lit)
	if err != nil {
		return "", false
	}
	return reflect.StructTag(raw).Lookup("hrd")
}
