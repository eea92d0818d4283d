package codegen

import (
	"errors"
	"fmt"
	"go/types"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"
)

// PackageLoader loads, type checks and caches Go packages.
type PackageLoader struct {
	cache map[string]*packages.Package
	mu    sync.RWMutex
}

// NewPackageLoader creates a new PackageLoader.
func NewPackageLoader() *PackageLoader {
	return &PackageLoader{
		cache: make(map[string]*packages.Package),
	}
}

// LoadDir loads the package in dir.
func (l *PackageLoader) LoadDir(dir string) (*packages.Package, error) {
	l.mu.RLock()
	if pkg, ok := l.cache[dir]; ok {
		l.mu.RUnlock()
		return pkg, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Check again in case it was loaded while we were waiting for the lock
	if pkg, ok := l.cache[dir]; ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package in %q", dir)
	}
	pkg := pkgs[0]
	l.cache[dir] = pkg
	return pkg, nil
}

// Check returns the errors found while loading pkg, joined.
func (l *PackageLoader) Check(pkg *packages.Package) error {
	var errs []error
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Extract extracts the contracts of a loaded package and checks that
// every type they refer to is a struct or slice type of the package.
func (l *PackageLoader) Extract(pkg *packages.Package) ([]*TypeInfo, []*ConstructorInfo, error) {
	var (
		infos []*TypeInfo
		ctors []*ConstructorInfo
	)
	for i, file := range pkg.Syntax {
		path := ""
		if i < len(pkg.CompiledGoFiles) {
			path = pkg.CompiledGoFiles[i]
		}
		if strings.HasSuffix(path, GeneratedSuffix) {
			continue
		}
		ts, cs, err := ExtractTypes(file, path)
		if err != nil {
			return nil, nil, err
		}
		infos = append(infos, ts...)
		ctors = append(ctors, cs...)
	}
	for _, info := range infos {
		if err := l.checkType(pkg, info.Type.Name); err != nil {
			return nil, nil, err
		}
	}
	return infos, ctors, nil
}

func (l *PackageLoader) checkType(pkg *packages.Package, name string) error {
	if pkg.Types == nil {
		return fmt.Errorf("package %q has no type information", pkg.PkgPath)
	}
	obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return fmt.Errorf("type %q not found in package %q", name, pkg.PkgPath)
	}
	if obj.IsAlias() {
		return fmt.Errorf("type %q is an alias", name)
	}
	switch obj.Type().Underlying().(type) {
	case *types.Struct, *types.Slice:
		return nil
	}
	return fmt.Errorf("type %q is neither a struct nor a slice", name)
}
