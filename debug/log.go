package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/signadot/hrd-format/go-hrd/ir"
)

var (
	mu     sync.Mutex
	logger = NewLogger(os.Stderr, log.DebugLevel)
)

// NewLogger returns a logger writing to w at the given level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "hrd",
	})
}

// SetLogger replaces the logger used by Logf.
func SetLogger(l *log.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the logger used by Logf.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Logf logs a debug message. Element arguments are rendered in their
// JSON form.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Element:
			d, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Element] %v", x)
				continue
			}
			args[i] = string(d)
		case map[string]any, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(d)
		}
	}
	Logger().Debugf(msg, args...)
}
