package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/hrd-format/go-hrd/ir"
)

func MustString(e *ir.Element) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(e, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
