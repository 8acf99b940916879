// Package runlog keeps a CSV audit trail of conversion runs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run log.
type Entry struct {
	Timestamp       time.Time
	Input           string
	Output          string
	Rows            int
	DateColumns     []string // columns reformatted to DD/MM/YYYY
	MonetaryColumns []string // columns converted to 2-decimal amounts
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,input,output,rows,date_columns,monetary_columns"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/run-log.csv"
	colTimestamp = 0
	colInput     = 1
	colOutput    = 2
	colRows      = 3
	colDateCols  = 4
	colMoneyCols = 5
)

// MarshalEntry converts an Entry to a CSV row. Column lists are
// semicolon-separated.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colInput] = e.Input
	row[colOutput] = e.Output
	row[colRows] = strconv.Itoa(e.Rows)
	row[colDateCols] = strings.Join(e.DateColumns, ";")
	row[colMoneyCols] = strings.Join(e.MonetaryColumns, ";")
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	rows, err := strconv.Atoi(record[colRows])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing rows %q: %w", record[colRows], err)
	}

	return Entry{
		Timestamp:       ts,
		Input:           record[colInput],
		Output:          record[colOutput],
		Rows:            rows,
		DateColumns:     splitColumns(record[colDateCols]),
		MonetaryColumns: splitColumns(record[colMoneyCols]),
	}, nil
}

func splitColumns(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ";")
}

// Append writes entries to <root>/logs/run-log.csv, creating the file and
// header if needed.
func Append(root string, entries []Entry) error {
	dir := filepath.Join(root, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	// Flush before checking Error so flush-time write failures surface.
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/logs/run-log.csv. Returns an empty
// slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	path := filepath.Join(root, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
