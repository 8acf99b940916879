package model

// ColumnRole classifies a column by its header text.
type ColumnRole string

const (
	RoleDate         ColumnRole = "date"
	RoleMonetary     ColumnRole = "monetary"
	RoleUnclassified ColumnRole = "unclassified"
)

// Report lists the columns a pipeline run touched, for display to the user.
type Report struct {
	DateColumns      []string
	MonetaryColumns  []string
	MonetaryFallback bool     // no header matched a monetary keyword; last column used
	DualRole         []string // columns matched by both keyword sets
}
