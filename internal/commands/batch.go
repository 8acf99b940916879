package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bretcon-dev/bretcon/internal/config"
	"github.com/bretcon-dev/bretcon/internal/exporter"
	"github.com/bretcon-dev/bretcon/internal/pipeline"
	"github.com/bretcon-dev/bretcon/internal/reader"
	"github.com/bretcon-dev/bretcon/internal/runlog"
)

func newBatchCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "batch [directory]",
		Short: "Normalize every file in <directory>/import/ and log the runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			path := configPath
			if path == config.DefaultFile {
				path = filepath.Join(absDir, config.DefaultFile)
			}
			cfg, err := config.LoadOrDefault(path)
			if err != nil {
				return err
			}

			return runBatch(absDir, cfg, newLogger(cfg.Log.Level), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "path to bretcon.yaml")

	return cmd
}

func runBatch(dir string, cfg *config.Config, logger *log.Logger, stdout io.Writer) error {
	reg := reader.DefaultRegistry()
	files, err := reader.Scan(dir, reg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(stdout, "No files to process in import/.")
		return nil
	}

	proc := pipeline.New(logger)

	var entries []runlog.Entry
	processed, skipped := 0, 0
	for _, fi := range files {
		table, err := reg.DecodeFile(fi.Path)
		if err != nil {
			logger.Warn("skipping file", "file", fi.Name, "err", err)
			skipped++
			continue
		}

		report, err := proc.Run(table)
		if err != nil {
			logger.Warn("skipping file", "file", fi.Name, "err", err)
			skipped++
			continue
		}

		outName := outputName(fi.Name, cfg.Output.Filename)
		outPath := filepath.Join(dir, cfg.Batch.OutDir, outName)
		if err := exporter.WriteFile(outPath, table); err != nil {
			return err
		}
		if err := reader.MarkProcessed(dir, fi.Name); err != nil {
			return err
		}

		entries = append(entries, runlog.Entry{
			Timestamp:       time.Now().UTC(),
			Input:           fi.Name,
			Output:          outName,
			Rows:            table.RowCount(),
			DateColumns:     report.DateColumns,
			MonetaryColumns: report.MonetaryColumns,
		})
		logger.Info("converted", "file", fi.Name, "rows", table.RowCount(), "output", outName)
		processed++
	}

	if len(entries) > 0 {
		if err := runlog.Append(dir, entries); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "Processed %d file(s), skipped %d.\n", processed, skipped)
	return nil
}

// outputName prefixes the canonical output filename with the input's stem,
// so batch outputs do not collide: invoices.xlsx -> invoices_bretcon_upload.csv.
func outputName(input, base string) string {
	stem := strings.TrimSuffix(input, filepath.Ext(input))
	return stem + "_" + base
}
