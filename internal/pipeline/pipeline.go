// Package pipeline normalizes an uploaded invoice table: it drops the
// leading customer-name column, classifies the remaining columns by header
// text, rewrites date cells to DD/MM/YYYY, and rewrites monetary cells to
// 2-decimal amounts. Structural problems fail the run; per-cell parse
// failures degrade to empty cells.
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// Processor runs the transformation pipeline on one table at a time. It
// holds no per-run state and is safe to reuse across runs.
type Processor struct {
	logger *log.Logger
}

// New creates a Processor. A nil logger discards warnings.
func New(logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Processor{logger: logger}
}

// Run validates and transforms t in place, returning a report of the
// columns that were touched. t must be owned by the caller; it is mutated.
func (p *Processor) Run(t *model.Table) (*model.Report, error) {
	if t.RowCount() == 0 {
		return nil, EmptyInputError{}
	}
	if err := ShiftLeft(t); err != nil {
		return nil, err
	}

	cls := Detect(t.Headers)

	report := &model.Report{MonetaryFallback: cls.Fallback}
	for _, i := range cls.Date {
		report.DateColumns = append(report.DateColumns, t.Headers[i])
	}
	for _, i := range cls.Monetary {
		report.MonetaryColumns = append(report.MonetaryColumns, t.Headers[i])
	}
	for _, i := range cls.DualRole() {
		report.DualRole = append(report.DualRole, t.Headers[i])
		p.logger.Warn("column header matches both date and monetary keywords; applying both transforms",
			"column", t.Headers[i])
	}

	// Date pass first, then monetary, each in column order.
	for _, col := range cls.Date {
		for _, row := range t.Rows {
			if d, ok := ParseDate(row[col]); ok {
				row[col] = model.DateCell(d)
			} else {
				row[col] = model.EmptyCell()
			}
		}
	}
	for _, col := range cls.Monetary {
		for _, row := range t.Rows {
			if amt, ok := ParseAmount(row[col]); ok {
				row[col] = model.NumberCell(amt)
			} else {
				row[col] = model.EmptyCell()
			}
		}
	}

	return report, nil
}
