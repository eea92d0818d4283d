package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/signadot/hrd-format/go-hrd/format"
)

// Settings are writer defaults read from a TOML file. Command line
// options take precedence.
type Settings struct {
	// IndentChar is "tab" or "space".
	IndentChar string `toml:"indent_char"`
	Indent     int    `toml:"indent"`
	Color      *bool  `toml:"color"`
	Format     string `toml:"format"`

	outFormat *format.Format
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hrd.toml")
}

// loadSettings reads the settings at path. A missing file yields empty
// settings unless the path was given explicitly.
func loadSettings(path string, explicit bool) (*Settings, error) {
	s := &Settings{}
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("settings %s: unknown keys %s", path, strings.Join(names, ", "))
	}
	switch s.IndentChar {
	case "", "tab", "space":
	default:
		return nil, fmt.Errorf("settings %s: indent_char must be tab or space, got %q", path, s.IndentChar)
	}
	if s.Indent < 0 {
		return nil, fmt.Errorf("settings %s: negative indent %d", path, s.Indent)
	}
	if s.Format != "" {
		f, err := format.ParseFormat(s.Format)
		if err != nil {
			return nil, fmt.Errorf("settings %s: %w", path, err)
		}
		s.outFormat = &f
	}
	return s, nil
}

func (s *Settings) indentChar() rune {
	if s.IndentChar == "space" {
		return ' '
	}
	return '\t'
}

func (s *Settings) output() *format.Format {
	return s.outFormat
}
