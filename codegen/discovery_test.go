package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, src := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

const (
	markedDirective = "package %s\n\n//hrd:type\ntype T struct{ A int32 }\n"
	markedField     = "package %s\n\ntype T struct {\n\t_ struct{} `hrd:\"keepOrder\"`\n}\n"
	unmarked        = "package %s\n\ntype U struct{ B string }\n"
)

func pkgSrc(format, pkg string) string {
	return fmt.Sprintf(format, pkg)
}

func TestDiscoverPackages(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.go":                pkgSrc(markedDirective, "a"),
		"a2.go":               pkgSrc(unmarked, "a"),
		"a" + GeneratedSuffix: pkgSrc(markedDirective, "a"),
		"sub/b.go":            pkgSrc(markedField, "b"),
		"plain/c.go":          pkgSrc(unmarked, "c"),
		"testdata/d/d.go":     pkgSrc(markedDirective, "d"),
		".hidden/e.go":        pkgSrc(markedDirective, "e"),
		"_skip/f.go":          pkgSrc(markedDirective, "f"),
	})
	tests := []struct {
		name      string
		recursive bool
		want      map[string][]string
	}{
		{"flat", false, map[string][]string{"a": {"a.go"}}},
		{"recursive", true, map[string][]string{"a": {"a.go"}, "b": {"sub/b.go"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkgs, err := DiscoverPackages(dir, tt.recursive)
			if err != nil {
				t.Fatal(err)
			}
			got := map[string][]string{}
			for _, pkg := range pkgs {
				for _, f := range pkg.Files {
					rel, err := filepath.Rel(dir, f)
					if err != nil {
						t.Fatal(err)
					}
					got[pkg.Name] = append(got[pkg.Name], filepath.ToSlash(rel))
				}
				sort.Strings(got[pkg.Name])
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiscoverPackagesMissingDir(t *testing.T) {
	if _, err := DiscoverPackages(filepath.Join(t.TempDir(), "none"), false); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
