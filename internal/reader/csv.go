package reader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// CSVDecoder decodes comma-separated text with a header row.
type CSVDecoder struct{}

// Extensions returns the file extensions this decoder handles.
func (d *CSVDecoder) Extensions() []string { return []string{".csv"} }

// Decode reads all records. Ragged rows are tolerated; short rows are
// padded to header width.
func (d *CSVDecoder) Decode(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return buildTable(records), nil
}
