package codegen

import (
	"bytes"
	"fmt"
	"go/build"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// markers are the byte patterns a file must contain to declare hrd
// types or constructors.
var markers = [][]byte{
	[]byte("//hrd:"),
	[]byte("`hrd:\""),
}

// DiscoverPackages finds the Go packages under dir that declare hrd
// types. Only dir itself is scanned unless recursive is set. Each
// package lists the files carrying hrd markers; generated files and
// packages without marked files are left out.
func DiscoverPackages(dir string, recursive bool) ([]*PackageInfo, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}
	var res []*PackageInfo
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (!recursive || skipDir(d.Name())) {
			return filepath.SkipDir
		}
		pkg, err := build.ImportDir(path, 0)
		if err != nil {
			return nil
		}
		info, err := markedPackage(pkg)
		if err != nil {
			return err
		}
		if info != nil {
			res = append(res, info)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %q: %w", dir, err)
	}
	return res, nil
}

func skipDir(base string) bool {
	return strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") ||
		base == "vendor" || base == "testdata"
}

func markedPackage(pkg *build.Package) (*PackageInfo, error) {
	var files []string
	for _, f := range pkg.GoFiles {
		if strings.HasSuffix(f, GeneratedSuffix) {
			continue
		}
		path := filepath.Join(pkg.Dir, f)
		ok, err := hasMarkers(path)
		if err != nil {
			return nil, err
		}
		if ok {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return nil, nil
	}
	return &PackageInfo{
		Path:  pkg.ImportPath,
		Dir:   pkg.Dir,
		Name:  pkg.Name,
		Files: files,
	}, nil
}

func hasMarkers(path string) (bool, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	for _, m := range markers {
		if bytes.Contains(d, m) {
			return true, nil
		}
	}
	return false, nil
}
