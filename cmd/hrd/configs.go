package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/encode"
	"github.com/signadot/hrd-format/go-hrd/format"
	"github.com/signadot/hrd-format/go-hrd/parse"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output on a single line'"`
	J       bool   `cli:"name=j aliases=json desc='do i/o in json'"`
	Indent  int    `cli:"name=indent desc='indent characters per level'"`
	Spaces  bool   `cli:"name=spaces desc='indent with spaces'"`
	Verbose bool   `cli:"name=v desc='log debug messages'"`
	Config  string `cli:"name=config desc='settings file (default $HOME/.hrd.toml)'"`

	InFormat, OutFormat *format.Format

	Settings *Settings

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// isSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// inFormat returns the format to read path in: the one given on the
// command line, else the one its extension indicates.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if cfg.J {
		return format.JSONFormat
	}
	if f, ok := format.ForPath(path); ok {
		return f
	}
	return format.HRDFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.J {
		return format.JSONFormat
	}
	if f := cfg.Settings.output(); f != nil {
		return *f
	}
	return format.HRDFormat
}

func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFilename(name)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	s := cfg.Settings
	switch {
	case cfg.Spaces:
		res = append(res, encode.IndentChar(' '))
	case s.IndentChar != "":
		res = append(res, encode.IndentChar(s.indentChar()))
	}
	switch {
	case cfg.Indent > 0:
		res = append(res, encode.Indent(cfg.Indent))
	case s.Indent > 0:
		res = append(res, encode.Indent(s.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.isSet("color") {
		return res
	}
	if s.Color != nil {
		if *s.Color {
			res = append(res, encode.EncodeColors(encode.NewColors()))
		}
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Normalize bool `cli:"name=n desc='collapse virtual nodes'"`
	View      *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only set the exit code'"`
	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Expr  string `cli:"name=e desc='expression selecting children'"`
	Count bool   `cli:"name=c desc='print the number of selected children'"`

	Select *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Lines   bool `cli:"name=l desc='diff the encoded documents line by line'"`

	Diff *cli.Command
}
