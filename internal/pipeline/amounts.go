package pipeline

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bretcon-dev/bretcon/internal/model"
)

// ParseAmount converts a raw cell into a monetary amount rounded to 2
// decimal places, half-to-even. Commas and spaces are stripped, and
// accounting notation "(123.45)" is read as -123.45. Empty and
// whitespace-only cells yield no amount, never zero. A false return means
// the cell degrades to empty output; it is never an error.
func ParseAmount(c model.Cell) (decimal.Decimal, bool) {
	if c.Kind == model.KindNumber {
		return c.Number.RoundBank(2), true
	}
	if c.Kind == model.KindEmpty {
		return decimal.Decimal{}, false
	}

	s := strings.TrimSpace(cellText(c))
	if s == "" {
		return decimal.Decimal{}, false
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		s = "-" + s[1:len(s)-1]
	}

	if d, err := decimal.NewFromString(s); err == nil {
		return d.RoundBank(2), true
	}
	// ParseFloat accepts NaN and Inf text, which decimal.NewFromFloat
	// panics on; non-finite values degrade to empty like any other
	// unparseable cell.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return decimal.NewFromFloat(f).RoundBank(2), true
	}
	return decimal.Decimal{}, false
}

// cellText renders a cell's payload for re-parsing by the value
// normalizers. A date cell that lands in a monetary column (a dual-role
// header) stringifies to DD/MM/YYYY, which then fails numeric parsing the
// same way it would have as text.
func cellText(c model.Cell) string {
	switch c.Kind {
	case model.KindText:
		return c.Text
	case model.KindNumber:
		return c.Number.String()
	case model.KindDate:
		return c.Date.Format(model.DateLayout)
	default:
		return ""
	}
}
