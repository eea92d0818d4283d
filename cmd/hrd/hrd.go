package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/debug"
)

func hrdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && (cfg.InFormat != nil || cfg.OutFormat != nil) {
		return fmt.Errorf("%w: -j can't be combined with -I or -O", cli.ErrUsage)
	}
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	debug.SetLogger(debug.NewLogger(cc.Err, level))

	path, explicit := cfg.Config, cfg.Config != ""
	if !explicit {
		path = defaultSettingsPath()
	}
	cfg.Settings, err = loadSettings(path, explicit)
	if err != nil {
		return err
	}
	debug.Logger().Debug("settings", "path", path, "indent_char", cfg.Settings.IndentChar, "indent", cfg.Settings.Indent)

	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
