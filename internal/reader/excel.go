package reader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// ExcelDecoder decodes the first sheet of an Excel workbook. Other sheets
// are ignored.
type ExcelDecoder struct{}

// Extensions returns the file extensions this decoder handles.
func (d *ExcelDecoder) Extensions() []string { return []string{".xlsx", ".xlsm"} }

// Decode reads the first sheet's rows. excelize trims trailing empty cells
// per row, so short rows are padded to header width.
func (d *ExcelDecoder) Decode(r io.Reader) (*model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return buildTable(rows), nil
}
