package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/encode"
	"github.com/signadot/hrd-format/go-hrd/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range docArgs(args) {
		doc, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if cfg.Normalize {
			doc = ir.Normalize(doc)
		}
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
