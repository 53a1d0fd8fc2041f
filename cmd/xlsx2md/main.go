// Package main provides the CLI entry point for xlsx2md.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md"
)

var (
	noMetadata bool
	verbose    bool
	sheetsDir  string
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlsx2md <input.xlsx> <output.md>",
		Short: "Convert Excel workbooks to Markdown",
		Long: `xlsx2md converts every worksheet of an .xlsx file into a Markdown
table and appends the workbook's document properties.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				fmt.Fprintln(cmd.OutOrStdout(), "Usage: xlsx2md <input.xlsx> <output.md>")
				return fmt.Errorf("expected 2 arguments, got %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(args[0], args[1], stderr)
			if err != nil {
				color.New(color.FgRed).Fprintf(stdout, "Error during conversion: %v\n", err)
				return err
			}
			color.New(color.FgGreen).Fprintf(stdout, "Conversion complete: %s\n", args[1])
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVar(&noMetadata, "no-metadata", false, "Omit the document metadata section")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-sheet progress to stderr")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet Markdown files")

	return rootCmd
}

func run(inputPath, outputPath string, stderr io.Writer) error {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	includeMetadata := !noMetadata
	opts := xlsx2md.Options{
		IncludeMetadata: &includeMetadata,
		Logger:          logger,
	}

	if err := xlsx2md.ConvertFile(inputPath, outputPath, opts); err != nil {
		return err
	}

	if sheetsDir != "" {
		paths, err := xlsx2md.WriteSheetFiles(inputPath, sheetsDir, opts)
		if err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
		logger.WithField("files", len(paths)).Debug("wrote sheet files")
	}

	return nil
}
