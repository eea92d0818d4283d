// Package debug provides environment gated debug switches and a shared
// debug logger.
//
// Switches are read once from the environment:
//
//   - HRD_DEBUG_PARSE: log parser events
//   - HRD_DEBUG_STREAM: log cursor and stream writer transitions
//   - HRD_DEBUG_CODEGEN: log contract resolution and generation
//   - HRD_DEBUG_QUERY: log selections
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Stream  bool
	Codegen bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("HRD_DEBUG_PARSE")
	d.Stream = boolEnv("HRD_DEBUG_STREAM")
	d.Codegen = boolEnv("HRD_DEBUG_CODEGEN")
	d.Query = boolEnv("HRD_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func Stream() bool {
	return d.Stream
}

func Codegen() bool {
	return d.Codegen
}

func Query() bool {
	return d.Query
}
