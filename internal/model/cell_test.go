package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCell_String(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"empty", EmptyCell(), ""},
		{"text", TextCell("INV-1001"), "INV-1001"},
		{"number pads to 2 decimals", NumberCell(decimal.RequireFromString("1234.5")), "1234.50"},
		{"negative number", NumberCell(decimal.RequireFromString("-50.25")), "-50.25"},
		{"date", DateCell(time.Date(2025, time.September, 16, 0, 0, 0, 0, time.UTC)), "16/09/2025"},
		{"date zero-pads", DateCell(time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC)), "03/04/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.String())
		})
	}
}

func TestTable_Counts(t *testing.T) {
	tbl := &Table{
		Headers: []string{"A", "B"},
		Rows: [][]Cell{
			{TextCell("1"), TextCell("2")},
		},
	}
	assert.Equal(t, 2, tbl.ColumnCount())
	assert.Equal(t, 1, tbl.RowCount())
}
