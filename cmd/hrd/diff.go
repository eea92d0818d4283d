package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/encode"
	"github.com/signadot/hrd-format/go-hrd/ir"
	"github.com/signadot/hrd-format/go-hrd/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var differs bool
	if cfg.Lines {
		if cfg.Reverse {
			a, b = b, a
		}
		differs, err = diffLines(cc.Out, a, b)
	} else {
		differs, err = diffChanges(cc.Out, a, b, cfg.Reverse)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffChanges(w io.Writer, a, b *ir.Element, reverse bool) (bool, error) {
	changes := libdiff.Diff(a, b)
	if reverse {
		changes = libdiff.Reverse(changes)
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return false, err
		}
	}
	return len(changes) != 0, nil
}

func diffLines(w io.Writer, a, b *ir.Element) (bool, error) {
	var ab, bb bytes.Buffer
	if err := encode.Encode(ir.Normalize(a), &ab); err != nil {
		return false, err
	}
	if err := encode.Encode(ir.Normalize(b), &bb); err != nil {
		return false, err
	}
	d := libdiff.DiffLines(ab.String(), bb.String())
	if d == "" {
		return false, nil
	}
	_, err := io.WriteString(w, d)
	return true, err
}
