package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/hrd-format/go-hrd/format"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hrd.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings(t *testing.T) {
	path := writeSettings(t, "indent_char = \"space\"\nindent = 2\ncolor = false\nformat = \"json\"\n")
	s, err := loadSettings(path, true)
	if err != nil {
		t.Fatal(err)
	}
	if s.indentChar() != ' ' || s.Indent != 2 {
		t.Errorf("indent: got %q x %d", s.indentChar(), s.Indent)
	}
	if s.Color == nil || *s.Color {
		t.Errorf("color: got %v", s.Color)
	}
	if f := s.output(); f == nil || *f != format.JSONFormat {
		t.Errorf("format: got %v", f)
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.toml")
	s, err := loadSettings(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if s.indentChar() != '\t' || s.output() != nil {
		t.Errorf("got %+v", s)
	}
	if _, err := loadSettings(path, true); err == nil {
		t.Error("explicit missing settings file loaded")
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "width = 3\n"},
		{"indent char", "indent_char = \"x\"\n"},
		{"negative indent", "indent = -1\n"},
		{"format", "format = \"yaml\"\n"},
		{"syntax", "indent = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadSettings(writeSettings(t, tt.body), true); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
