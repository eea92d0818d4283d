package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/signadot/hrd-format/go-hrd/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := Logger()
	SetLogger(NewLogger(buf, log.DebugLevel))
	defer SetLogger(old)

	Logf("element %s", ir.NewAttribute("A", "1", false))
	out := buf.String()
	if !strings.Contains(out, `"name":"A"`) {
		t.Errorf("expected JSON form of the element, got %q", out)
	}
}

func TestLogfLevel(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := Logger()
	SetLogger(NewLogger(buf, log.InfoLevel))
	defer SetLogger(old)

	Logf("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("HRD_TEST_SWITCH", "true")
	if !boolEnv("HRD_TEST_SWITCH") {
		t.Error("expected true")
	}
	t.Setenv("HRD_TEST_SWITCH", "nope")
	if boolEnv("HRD_TEST_SWITCH") {
		t.Error("expected false for unparsable value")
	}
}

func TestSwitches(t *testing.T) {
	old := *d
	defer func() { *d = old }()
	*d = debug{Query: true}
	if !Query() || Parse() || Stream() || Codegen() {
		t.Errorf("got parse=%v stream=%v codegen=%v query=%v", Parse(), Stream(), Codegen(), Query())
	}
}
