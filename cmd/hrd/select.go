package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/encode"
	"github.com/signadot/hrd-format/go-hrd/query"
)

func selectCmd(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: select requires -e <expr>", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: select requires one argument, an element path", cli.ErrUsage)
	}
	path := args[0]
	opts := cfg.encOpts(cc.Out)
	for _, file := range docArgs(args[1:]) {
		doc, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := query.Select(doc, path, cfg.Expr)
		if err != nil {
			return fmt.Errorf("error selecting from %s: %w", file, err)
		}
		if cfg.Count {
			fmt.Fprintln(cc.Out, len(res))
			continue
		}
		for _, e := range res {
			if err := encode.Encode(e, cc.Out, opts...); err != nil {
				return err
			}
		}
	}
	return nil
}
