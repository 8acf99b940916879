package pipeline

import "fmt"

// EmptyInputError reports a source table with no data rows. It blocks the
// whole run; nothing is partially processed.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return "input has no data rows"
}

// InsufficientColumnsError reports a source table with fewer than 2 columns,
// so the leading column cannot be removed. Raised before any stage runs.
type InsufficientColumnsError struct {
	Columns int
}

func (e InsufficientColumnsError) Error() string {
	return fmt.Sprintf("input has %d column(s), need at least 2 so the first can be removed", e.Columns)
}
