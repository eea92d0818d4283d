package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/scott-cotton/cli"

	"github.com/signadot/hrd-format/go-hrd/codegen"
	"github.com/signadot/hrd-format/go-hrd/debug"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Command, "hrd-codegen").
		WithSynopsis("hrd-codegen [opts]").
		WithDescription("Generate HRD Serialize/Deserialize functions from types with hrd directives and tags.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_hrd.go)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Check      bool   `cli:"name=check desc='type check packages before generating'"`
	Verbose    bool   `cli:"name=v desc='log progress'"`

	Command *cli.Command
}

func (cfg *Config) codegen(pkg *codegen.PackageInfo) *codegen.Config {
	res := &codegen.Config{
		OutputFile: cfg.OutputFile,
		Dir:        pkg.Dir,
		Check:      cfg.Check,
	}
	if res.OutputFile == "" {
		res.OutputFile = filepath.Join(pkg.Dir, pkg.Name+codegen.GeneratedSuffix)
	}
	return res
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := debug.NewLogger(cc.Err, level)
	debug.SetLogger(logger)
	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	pkgs, err := codegen.DiscoverPackages(dir, cfg.Recursive)
	if err != nil {
		return fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no packages with hrd types found in %q", dir)
	}
	if cfg.OutputFile != "" && len(pkgs) > 1 {
		return fmt.Errorf("%w: -o names one file but %d packages were found", cli.ErrUsage, len(pkgs))
	}
	loader := codegen.NewPackageLoader()
	for _, pkg := range pkgs {
		logger.Debug("processing package", "name", pkg.Name, "dir", pkg.Dir)
		if err := processPackage(cfg.codegen(pkg), loader, logger, pkg); err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.Path, err)
		}
	}
	return nil
}

func processPackage(cfg *codegen.Config, loader *codegen.PackageLoader, logger *log.Logger, pkg *codegen.PackageInfo) error {
	var (
		infos []*codegen.TypeInfo
		ctors []*codegen.ConstructorInfo
	)
	if cfg.Check {
		lp, err := loader.LoadDir(cfg.Dir)
		if err != nil {
			return err
		}
		if err := loader.Check(lp); err != nil {
			return err
		}
		infos, ctors, err = loader.Extract(lp)
		if err != nil {
			return err
		}
	} else {
		for _, path := range pkg.Files {
			file, _, err := codegen.ParseFile(path)
			if err != nil {
				return fmt.Errorf("failed to parse file %q: %w", path, err)
			}
			ts, cs, err := codegen.ExtractTypes(file, path)
			if err != nil {
				return fmt.Errorf("failed to extract types from %q: %w", path, err)
			}
			infos = append(infos, ts...)
			ctors = append(ctors, cs...)
		}
	}
	if len(infos) == 0 {
		return nil
	}
	reg, roots, err := codegen.BuildRegistry(infos, ctors)
	if err != nil {
		return err
	}
	src, err := codegen.Generate(pkg.Name, reg, roots...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", cfg.OutputFile, err)
	}
	logger.Info("generated", "file", cfg.OutputFile, "types", len(infos), "roots", roots)
	return nil
}
