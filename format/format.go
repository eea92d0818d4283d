// Package format names the encodings documents are read and written in:
// HRD text and the JSON form of the tree.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	HRDFormat Format = iota
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// info describes a format. The first name is canonical.
type info struct {
	names  []string
	suffix string
}

var infos = map[Format]info{
	HRDFormat:  {names: []string{"hrd", "h"}, suffix: ".hrd"},
	JSONFormat: {names: []string{"json", "j"}, suffix: ".json"},
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{HRDFormat, JSONFormat}
}

// ParseFormat accepts the name of a format or its one letter short form.
func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		for _, n := range infos[f].names {
			if n == v {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath returns the format a file name's extension indicates.
func ForPath(path string) (Format, bool) {
	ext := filepath.Ext(path)
	for _, f := range AllFormats() {
		if ext != "" && infos[f].suffix == ext {
			return f, true
		}
	}
	return 0, false
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	i, ok := infos[f]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(i.names[0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsHRD() bool  { return f == HRDFormat }

// Suffix returns the file extension of f, including the dot.
func (f Format) Suffix() string {
	return infos[f].suffix
}
