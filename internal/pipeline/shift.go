package pipeline

import "github.com/bretcon-dev/bretcon/internal/model"

// ShiftLeft removes the first column (customer name in the canonical upload)
// and moves every remaining column one position left. Row count and relative
// column order are unchanged. Header text is not inspected.
func ShiftLeft(t *model.Table) error {
	if t.ColumnCount() < 2 {
		return InsufficientColumnsError{Columns: t.ColumnCount()}
	}

	t.Headers = t.Headers[1:]
	for i, row := range t.Rows {
		t.Rows[i] = row[1:]
	}
	return nil
}
