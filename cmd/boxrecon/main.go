// Package main provides the CLI entry point for boxrecon.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/internal/config"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/internal/logging"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/output"
)

// Exit codes.
const (
	exitError       = 1
	exitNoValidData = 2
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case boxrecon.IsNoValidData(err):
		fmt.Fprintln(stderr, "warning: no technicians with valid data were found")
		return exitNoValidData
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "boxrecon [valoracion.xlsx]",
		Short: "Reconcile complete boxes and picking units per technician",
		Long: `boxrecon reads a valuation workbook and a units-per-box reference, and
reports per technician the good and defective units, complete boxes and
leftover units for picking.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cmd.Flags())
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			return run(cfg, args[0], stdout)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP(config.KeyReference, "r", "", "Reference workbook with units per box (first sheet is used)")
	flags.String(config.KeyReferenceMode, string(boxrecon.ReferenceSeparate), "Reference source: separate or embedded")
	flags.String(config.KeySheet, boxrecon.DefaultSheetName, "Valuation sheet name")
	flags.Int(config.KeyHeaderRow, boxrecon.DefaultHeaderRow, "0-based header row of the valuation and reference sheets")
	flags.String(config.KeyCodeHeader, boxrecon.DefaultCodeHeader, "Reference code column header")
	flags.String(config.KeyUnitsHeader, boxrecon.DefaultUnitsHeader, "Reference units-per-box column header")
	flags.StringP(config.KeyFormat, "f", "", "Output format: table, json, yaml (default: table on a terminal, json otherwise)")
	flags.Bool(config.KeyPretty, false, "Pretty-print JSON output")
	flags.StringP(config.KeyOutput, "o", "", "Output file path (default: stdout)")
	flags.String(config.KeyXLSX, "", "Also write an XLSX report with charts to this path")
	flags.String(config.KeyConfig, "", "Config file (default: .boxrecon.yaml)")
	flags.String(config.KeyLogLevel, "info", "Log level: debug, info, warn, error, off")
	flags.String(config.KeyLogFormat, "auto", "Log format: auto, json, console")
	flags.String(config.KeyLogOutput, "stderr", "Log destination: stderr, stdout, discard, or a file path")

	return rootCmd
}

func run(cfg *config.Config, inputPath string, stdout io.Writer) error {
	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	logger, closer := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
		Fields: map[string]string{"run_id": uuid.NewString()},
	})
	defer closer.Close()

	if cfg.ConfigFile != "" {
		logger.Debug().Str("file", cfg.ConfigFile).Msg("config loaded")
	}

	opts := cfg.Options()
	opts.Logger = &logger

	report, err := boxrecon.Reconcile(inputPath, opts)
	if err != nil {
		logEvent(&logger, err).Err(err).Msg("reconciliation failed")
		return err
	}

	out := stdout
	if cfg.OutputPath != "" {
		file, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer file.Close()
		out = file
	}

	format := cfg.Format
	if cfg.OutputPath != "" && format == "" {
		format = output.FormatJSON
	}
	if err := output.Write(out, report, output.DetectFormat(format), cfg.Pretty); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if cfg.XLSXPath != "" {
		if err := output.WriteXLSX(report, cfg.XLSXPath); err != nil {
			return fmt.Errorf("failed to write xlsx report: %w", err)
		}
		logger.Info().Str("path", cfg.XLSXPath).Msg("xlsx report written")
	}
	return nil
}

func logEvent(logger *zerolog.Logger, err error) *zerolog.Event {
	if boxrecon.IsNoValidData(err) {
		return logger.Warn()
	}
	return logger.Error()
}
