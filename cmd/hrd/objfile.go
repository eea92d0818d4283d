package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/ir"
	"github.com/signadot/hrd-format/go-hrd/parse"
)

// getDoc reads the document at path, or standard input for "-", in the
// input format.
func getDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Element, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if cfg.inFormat(path).IsJSON() {
		doc := &ir.Element{}
		if err := json.Unmarshal(d, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// docArgs returns the files named by args, standard input when there are
// none.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
