package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an element path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range docArgs(args[1:]) {
		doc, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		e, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if err := encode.Encode(e, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
