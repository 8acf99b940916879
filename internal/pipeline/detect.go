package pipeline

import (
	"strings"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// monetaryKeywords mark a column as monetary when its lower-cased header
// contains any of them.
var monetaryKeywords = []string{
	"balance", "amount", "value", "amt", "debit", "credit", "total", "open",
}

// dateFallbackPhrases are tried when no header contains "date", matched
// against the lower-cased header with spaces removed.
var dateFallbackPhrases = []string{
	"documentdate", "docdate", "invoice date", "invoice_date", "document date",
}

// Classification holds the detected column roles as positional indices into
// the post-shift header slice.
type Classification struct {
	Date     []int
	Monetary []int
	Fallback bool // Monetary came from the last-column fallback
}

// Detect classifies columns by header text. Date columns are those whose
// header contains "date" (case-insensitive), with a phrase-list fallback when
// none match; zero date columns is allowed. Monetary columns are those whose
// header contains a monetary keyword; when none match the last column is
// used, so at least one monetary column is always produced.
func Detect(headers []string) Classification {
	var c Classification

	for i, h := range headers {
		if strings.Contains(strings.ToLower(h), "date") {
			c.Date = append(c.Date, i)
		}
	}
	if len(c.Date) == 0 {
		for i, h := range headers {
			low := strings.ReplaceAll(strings.ToLower(h), " ", "")
			for _, phrase := range dateFallbackPhrases {
				if strings.Contains(low, phrase) {
					c.Date = append(c.Date, i)
					break
				}
			}
		}
	}

	for i, h := range headers {
		low := strings.ToLower(h)
		for _, kw := range monetaryKeywords {
			if strings.Contains(low, kw) {
				c.Monetary = append(c.Monetary, i)
				break
			}
		}
	}
	if len(c.Monetary) == 0 && len(headers) > 0 {
		c.Monetary = []int{len(headers) - 1}
		c.Fallback = true
	}

	return c
}

// Role returns the single role for a column index. Columns matched by both
// keyword sets report as Date; use DualRole to see the overlap.
func (c Classification) Role(i int) model.ColumnRole {
	for _, d := range c.Date {
		if d == i {
			return model.RoleDate
		}
	}
	for _, m := range c.Monetary {
		if m == i {
			return model.RoleMonetary
		}
	}
	return model.RoleUnclassified
}

// DualRole returns the indices classified as both Date and Monetary.
func (c Classification) DualRole() []int {
	var dual []int
	for _, d := range c.Date {
		for _, m := range c.Monetary {
			if d == m {
				dual = append(dual, d)
			}
		}
	}
	return dual
}
