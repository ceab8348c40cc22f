// Package main provides the hapgen CLI.
//
// hapgen reads a catalog file written by hapcatalog and generates typed
// bindings for Go, TypeScript or both. Each output directory is replaced as
// a whole.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hap-catalog-generator/internal/catalogfile"
	"hap-catalog-generator/internal/common"
	"hap-catalog-generator/internal/config"
	"hap-catalog-generator/internal/gen"
	"hap-catalog-generator/internal/gen/golang"
	"hap-catalog-generator/internal/gen/typescript"
	"hap-catalog-generator/internal/logging"
)

var errNoCatalog = errors.New("a catalog file is required (argument or generate.catalog in --config)")

type options struct {
	output     string
	target     string
	pkg        string
	configPath string
	logLevel   string
	workers    int
	debugDir   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hapgen [<catalog.yaml>]",
		Short: "Generate typed HomeKit bindings from a catalog file",
		Long: `hapgen projects a catalog file into Go and TypeScript sources.

The output directory is deleted and rewritten on every run. With --target all
the trees are written to <output>/go and <output>/typescript. The catalog
may instead come from generate.catalog in --config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "generated", "output directory (replaced)")
	flags.StringVarP(&opts.target, "target", "t", config.TargetAll, "target language: go, typescript or all")
	flags.StringVarP(&opts.pkg, "package", "p", "", "Go package name (default derived from the output directory)")
	flags.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	flags.IntVar(&opts.workers, "workers", 0, "parallel file renderers (0 = GOMAXPROCS)")
	flags.StringVar(&opts.debugDir, "debug-dir", "", "write Go sources that fail formatting here")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}

		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Generate.Catalog = args[0]
	}

	if cfg.Generate.Catalog == "" {
		return errNoCatalog
	}

	cmd.SilenceUsage = true

	applyFlags(cmd, &cfg, opts)

	targets, err := cfg.Generate.Targets()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c, dropped, err := catalogfile.LoadFile(cfg.Generate.Catalog)
	if err != nil {
		return err
	}

	if dropped > 0 {
		logger.Warn("dropped incomplete catalog records", zap.Int("count", dropped))
	}

	for _, target := range targets {
		dir := cfg.Generate.Output
		if len(targets) > 1 {
			dir = filepath.Join(dir, target)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s will be replaced\n", dir)

		backend := backendFor(target)
		genOpts := gen.Options{
			PackageName: cfg.Generate.Package,
			Logger:      logger,
			Workers:     cfg.Generate.Workers,
			DebugDir:    opts.debugDir,
		}

		if target == config.TargetGo && genOpts.PackageName == "" {
			genOpts.PackageName = common.PackageName(dir, golang.DefaultPackage)
		}

		tree, err := gen.Run(backend, c, dir, genOpts)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: wrote %d files to %s (%d warnings)\n",
			backend.Language(), len(tree.Files), dir, len(tree.Diagnostics.Warnings))
	}

	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	flags := cmd.Flags()
	fromFile := opts.configPath != ""

	if flags.Changed("output") || !fromFile {
		cfg.Generate.Output = opts.output
	}

	if flags.Changed("target") || !fromFile {
		cfg.Generate.Target = opts.target
	}

	if flags.Changed("package") {
		cfg.Generate.Package = opts.pkg
	}

	if flags.Changed("workers") {
		cfg.Generate.Workers = opts.workers
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

func backendFor(target string) gen.Backend {
	if target == config.TargetGo {
		return golang.New()
	}

	return typescript.New()
}
