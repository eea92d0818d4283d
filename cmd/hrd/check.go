package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/debug"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	for _, file := range docArgs(args) {
		doc, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			failed++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			}
			continue
		}
		debug.Logger().Debug("ok", "file", file, "members", doc.Len())
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
