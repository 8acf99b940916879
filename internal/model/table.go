package model

// Table is an in-memory tabular dataset: a header row plus data rows.
// Every row has exactly len(Headers) cells. A Table is owned by a single
// pipeline run and mutated in place; nothing is shared across runs.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
