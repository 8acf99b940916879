package pipeline

import (
	"strconv"
	"strings"
	"time"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// strictDateLayouts are tried in order; first success wins. The non-padded
// forms accept one or two digit day/month, so "3/4/2025" parses as day-first
// against the first entry while "15/09/2025" still matches it.
var strictDateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-1-2",
	"1/2/2006",
	"2006/1/2",
	"2.1.2006",
}

// looseDateLayouts extend the permissive pass with month-name and
// timestamped forms commonly produced by spreadsheet exports.
var looseDateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"2006-1-2 15:04:05",
	"2/1/2006 15:04:05",
}

// ParseDate converts a raw cell into a calendar date. Empty and
// whitespace-only cells yield no date. Strict layouts are tried first, then
// a permissive parse that prefers day-before-month ordering when the value
// is ambiguous. A false return means the cell degrades to empty output; it
// is never an error.
func ParseDate(c model.Cell) (time.Time, bool) {
	if c.Kind == model.KindDate {
		return c.Date, true
	}
	if c.Kind == model.KindEmpty {
		return time.Time{}, false
	}

	s := strings.TrimSpace(cellText(c))
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range strictDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return parseLooseDate(s)
}

func parseLooseDate(s string) (time.Time, bool) {
	for _, layout := range looseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	sep := func(r rune) bool {
		return r == '/' || r == '-' || r == '.' || r == ' '
	}
	parts := strings.FieldsFunc(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}

	// Year-first when the leading component is 4 digits.
	if len(parts[0]) == 4 {
		return makeDate(nums[0], nums[1], nums[2])
	}

	year := nums[2]
	if year < 100 {
		if year < 70 {
			year += 2000
		} else {
			year += 1900
		}
	}

	// Day-first, then month-first when day-first is impossible.
	if t, ok := makeDate(year, nums[1], nums[0]); ok {
		return t, true
	}
	return makeDate(year, nums[0], nums[1])
}

// makeDate validates the components; time.Date alone would silently
// normalize Feb 30 into March.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
