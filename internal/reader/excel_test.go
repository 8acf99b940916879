package reader

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bretcon-dev/bretcon/internal/model"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestExcelDecoder_FirstSheet(t *testing.T) {
	buf := writeWorkbook(t, [][]interface{}{
		{"Customer", "InvoiceDate", "Balance"},
		{"Acme", "15/09/2025", "1,000.00"},
		{"Beta", "2025-09-16", "(50.25)"},
	})

	d := &ExcelDecoder{}
	tbl, err := d.Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Customer", "InvoiceDate", "Balance"}, tbl.Headers)
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, "15/09/2025", tbl.Rows[0][1].Text)
	assert.Equal(t, "(50.25)", tbl.Rows[1][2].Text)
}

func TestExcelDecoder_PadsShortRows(t *testing.T) {
	// excelize trims trailing empty cells from GetRows output.
	buf := writeWorkbook(t, [][]interface{}{
		{"Customer", "InvoiceDate", "Balance"},
		{"Acme", "15/09/2025"},
	})

	d := &ExcelDecoder{}
	tbl, err := d.Decode(buf)
	require.NoError(t, err)

	require.Equal(t, 1, tbl.RowCount())
	require.Len(t, tbl.Rows[0], 3)
	assert.Equal(t, model.KindEmpty, tbl.Rows[0][2].Kind)
}

func TestExcelDecoder_OnlySecondSheetIgnored(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Customer", "Balance"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"Acme", "10"}))

	_, err := f.NewSheet("Extra")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Extra", "A1", &[]interface{}{"Other", "Data"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	d := &ExcelDecoder{}
	tbl, err := d.Decode(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Customer", "Balance"}, tbl.Headers)
	require.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, "Acme", tbl.Rows[0][0].Text)
}

func TestExcelDecoder_NotAWorkbook(t *testing.T) {
	d := &ExcelDecoder{}
	_, err := d.Decode(bytes.NewReader([]byte("plain text")))
	assert.Error(t, err)
}
