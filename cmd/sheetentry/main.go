// Package main provides the CLI entry point for sheetentry-go.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/models"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/setup"
	"github.com/ukaji3/sheetentry-go/pkg/sheetentry/tui"
)

var (
	configPath     string
	workbookPath   string
	nonInteractive bool
	previewColumns int
	verbose        bool
	logFile        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetentry",
		Short: "Enter data into Excel sheets through generated forms",
		Long: `sheetentry-go builds one entry form per worksheet from its header row
and appends the submitted rows to the workbook. A missing workbook is
created through a short console wizard.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              run,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&workbookPath, "file", "f", "", "Workbook path (default: sample.xlsx)")
	flags.StringVar(&configPath, "config", "", "TOML config file")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; load every sheet of an existing workbook")
	flags.IntVar(&previewColumns, "preview-columns", 0, "Columns shown in the preview when none are chosen (default: 4)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file while the terminal UI runs")

	rootCmd.AddCommand(sheetsCmd(), recordsCmd(), appendCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	return nil
}

// options merges the config file with the flags that were set.
func options(cmd *cobra.Command) (sheetentry.Options, error) {
	opts, err := sheetentry.LoadOptions(configPath)
	if err != nil {
		return opts, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		opts.WorkbookPath = workbookPath
	}
	if flags.Changed("non-interactive") {
		interactive := !nonInteractive
		opts.Interactive = &interactive
	}
	if flags.Changed("preview-columns") {
		opts.PreviewColumns = previewColumns
	}
	if flags.Changed("log-file") {
		opts.LogFile = logFile
	}
	return opts, nil
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	session, err := sheetentry.Start(opts, setup.NewConsole(os.Stdin, os.Stdout))
	if errors.Is(err, models.ErrNoSchema) {
		return fmt.Errorf("no sheets configured, nothing to edit")
	}
	if err != nil {
		return err
	}

	// the terminal UI owns the screen until it exits
	out, closeLog, err := uiLogOutput(opts.LogFile)
	if err != nil {
		return err
	}
	log.SetOutput(out)
	defer func() {
		log.SetOutput(os.Stderr)
		closeLog()
	}()

	return tui.Run(session.Schema.BookPath, session.Controllers())
}

func uiLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
