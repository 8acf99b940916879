package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bretcon-dev/bretcon/internal/config"
	"github.com/bretcon-dev/bretcon/internal/exporter"
	"github.com/bretcon-dev/bretcon/internal/model"
	"github.com/bretcon-dev/bretcon/internal/pipeline"
	"github.com/bretcon-dev/bretcon/internal/reader"
)

func newConvertCommand() *cobra.Command {
	var output string
	var configPath string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Normalize a single invoice file and write the upload CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			out := output
			if out == "" {
				out = cfg.Output.Filename
			}
			return runConvert(args[0], out, newLogger(cfg.Log.Level), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path (default "+exporter.DefaultFilename+")")
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "path to bretcon.yaml")

	return cmd
}

func runConvert(in, out string, logger *log.Logger, stdout io.Writer) error {
	table, err := reader.DefaultRegistry().DecodeFile(in)
	if err != nil {
		return err
	}

	// Friendly pre-checks; the pipeline re-validates.
	if table.RowCount() == 0 {
		return fmt.Errorf("%s is empty (no data rows)", filepath.Base(in))
	}
	if table.ColumnCount() < 2 {
		return fmt.Errorf("%s must have at least 2 columns so column A can be removed", filepath.Base(in))
	}

	report, err := pipeline.New(logger).Run(table)
	if err != nil {
		return err
	}

	if err := exporter.WriteFile(out, table); err != nil {
		return err
	}

	printReport(stdout, report)
	fmt.Fprintf(stdout, "Wrote %s (%d rows)\n", out, table.RowCount())
	return nil
}

func printReport(w io.Writer, r *model.Report) {
	if len(r.DateColumns) == 0 {
		fmt.Fprintln(w, "No date columns detected; date formatting skipped.")
	} else {
		fmt.Fprintf(w, "Date columns formatted to DD/MM/YYYY: %s\n", strings.Join(r.DateColumns, ", "))
	}
	if r.MonetaryFallback {
		fmt.Fprintf(w, "No monetary header matched; last column %q converted to 2 decimals.\n", r.MonetaryColumns[0])
	} else {
		fmt.Fprintf(w, "Monetary columns converted to 2 decimals: %s\n", strings.Join(r.MonetaryColumns, ", "))
	}
}
