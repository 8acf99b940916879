package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CellKind discriminates the variants of a Cell.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindNumber
	KindDate
)

// Cell is a tagged variant holding one table value. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number decimal.Decimal
	Date   time.Time
}

// EmptyCell returns the null marker cell.
func EmptyCell() Cell {
	return Cell{Kind: KindEmpty}
}

// TextCell returns a cell holding raw text.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// NumberCell returns a cell holding a monetary amount.
func NumberCell(d decimal.Decimal) Cell {
	return Cell{Kind: KindNumber, Number: d}
}

// DateCell returns a cell holding a calendar date (no time component).
func DateCell(t time.Time) Cell {
	return Cell{Kind: KindDate, Date: t}
}

// DateLayout is the canonical output format for date cells.
const DateLayout = "02/01/2006"

// String renders the cell the way it appears in exported CSV: empty cells
// as "", numbers with exactly 2 decimal places, dates as DD/MM/YYYY.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return c.Number.StringFixed(2)
	case KindDate:
		return c.Date.Format(DateLayout)
	default:
		return ""
	}
}
