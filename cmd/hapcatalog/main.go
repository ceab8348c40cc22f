// Package main provides the hapcatalog CLI.
//
// hapcatalog builds the HomeKit catalog file:
//   - Extracts service and characteristic declarations from framework headers
//   - Cross-checks identifiers against an exported symbol stub, when given
//   - Fills service relationships from protocol metadata or a built-in table
//   - Writes the sorted catalog for hapgen
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hap-catalog-generator/internal/catalogfile"
	"hap-catalog-generator/internal/config"
	"hap-catalog-generator/internal/logging"
	"hap-catalog-generator/internal/pipeline"
)

var errNoHeaders = errors.New("service and characteristic headers are required (arguments or [sources] in --config)")

type options struct {
	output     string
	symbols    string
	metadata   string
	configPath string
	logLevel   string
	dump       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hapcatalog [<services.h> <characteristics.h>]",
		Short: "Extract the HomeKit service and characteristic catalog",
		Long: `hapcatalog scans the HomeKit service and characteristic type headers,
reconciles service relationships and writes the catalog file consumed by hapgen.

The headers may instead come from the [sources] section of --config.

Relationships come from the protocol metadata document when --metadata is given
and readable. Otherwise a built-in table of well-known services is used.`,
		Args: headerArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "catalog.yaml", "catalog file to write")
	flags.StringVar(&opts.symbols, "symbols", "", "exported symbol stub (.tbd) to validate identifiers against")
	flags.StringVar(&opts.metadata, "metadata", "", "protocol metadata document with service relationships")
	flags.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")
	flags.BoolVar(&opts.dump, "dump", false, "dump the reconciled catalog to stdout")

	return cmd
}

// headerArgs accepts both headers or none.
func headerArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
	}

	return nil
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

	if len(args) == 2 {
		cfg.Sources.Services, cfg.Sources.Characteristics = args[0], args[1]
	}

	if cfg.Sources.Services == "" || cfg.Sources.Characteristics == "" {
		return errNoHeaders
	}

	cmd.SilenceUsage = true

	flags := cmd.Flags()
	if flags.Changed("output") || opts.configPath == "" {
		cfg.Catalog.Output = opts.output
	}

	if flags.Changed("symbols") {
		cfg.Sources.Symbols = opts.symbols
	}

	if flags.Changed("metadata") {
		cfg.Sources.Metadata = opts.metadata
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c, report, err := pipeline.NewExtractor(logger).Run(pipeline.Sources{
		ServicesHeader:        cfg.Sources.Services,
		CharacteristicsHeader: cfg.Sources.Characteristics,
		SymbolStub:            cfg.Sources.Symbols,
		Metadata:              cfg.Sources.Metadata,
	})
	if err != nil {
		return err
	}

	if report.Diagnostics.HasErrors() {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: optional inputs skipped: %v\n", report.Diagnostics.Error())
	}

	if opts.dump {
		spew.Fdump(cmd.OutOrStdout(), c)
	}

	if err := catalogfile.WriteFile(cfg.Catalog.Output, c); err != nil {
		return err
	}

	logger.Debug("catalog written", zap.String("path", cfg.Catalog.Output))

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d services, %d characteristics (relationships: %s, %d warnings)\n",
		cfg.Catalog.Output, len(c.Services), len(c.Characteristics),
		report.Reconcile.Strategy, len(report.Diagnostics.Warnings))

	return nil
}
