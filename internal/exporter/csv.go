// Package exporter serializes a transformed Table to CSV suitable for
// upload: UTF-8, header row included, no index column, monetary cells with
// exactly 2 decimal places, empty cells as empty strings.
package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// DefaultFilename is the canonical output name.
const DefaultFilename = "bretcon_upload.csv"

// Write serializes t as CSV, header row first.
func Write(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, t.ColumnCount())
	for i, cells := range t.Rows {
		for j, c := range cells {
			row[j] = c.String()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	// Flush before checking Error so flush-time write failures surface.
	cw.Flush()
	return cw.Error()
}

// Bytes returns t serialized as CSV bytes, ready for download.
func Bytes(t *model.Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes t as CSV to path, creating parent directories.
func WriteFile(path string, t *model.Table) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, t); err != nil {
		return err
	}
	return f.Close()
}
