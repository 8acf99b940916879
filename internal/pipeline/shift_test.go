package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bretcon-dev/bretcon/internal/model"
)

func makeTable(headers []string, rows ...[]string) *model.Table {
	t := &model.Table{Headers: headers}
	for _, r := range rows {
		cells := make([]model.Cell, len(r))
		for i, v := range r {
			if v == "" {
				cells[i] = model.EmptyCell()
			} else {
				cells[i] = model.TextCell(v)
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func TestShiftLeft_DropsFirstColumn(t *testing.T) {
	tbl := makeTable(
		[]string{"Customer", "InvoiceDate", "Balance"},
		[]string{"Acme", "15/09/2025", "1,000.00"},
		[]string{"Beta", "2025-09-16", "(50.25)"},
	)

	err := ShiftLeft(tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"InvoiceDate", "Balance"}, tbl.Headers)
	require.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, "15/09/2025", tbl.Rows[0][0].Text)
	assert.Equal(t, "1,000.00", tbl.Rows[0][1].Text)
	assert.Equal(t, "2025-09-16", tbl.Rows[1][0].Text)
}

func TestShiftLeft_PreservesOrderAndValues(t *testing.T) {
	tbl := makeTable(
		[]string{"A", "B", "C", "D"},
		[]string{"1", "2", "3", "4"},
	)

	err := ShiftLeft(tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "C", "D"}, tbl.Headers)
	assert.Equal(t, "2", tbl.Rows[0][0].Text)
	assert.Equal(t, "3", tbl.Rows[0][1].Text)
	assert.Equal(t, "4", tbl.Rows[0][2].Text)
}

func TestShiftLeft_TooFewColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
	}{
		{"zero columns", nil},
		{"one column", []string{"Balance"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := makeTable(tt.headers)
			err := ShiftLeft(tbl)
			require.Error(t, err)

			var icErr InsufficientColumnsError
			require.ErrorAs(t, err, &icErr)
			assert.Equal(t, len(tt.headers), icErr.Columns)
		})
	}
}
