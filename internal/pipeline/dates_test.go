package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bretcon-dev/bretcon/internal/model"
)

func TestParseDate_StrictLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want string // DD/MM/YYYY
	}{
		{"15/09/2025", "15/09/2025"},
		{"15-09-2025", "15/09/2025"},
		{"2025-09-16", "16/09/2025"},
		{"09/23/2025", "23/09/2025"}, // month-first only when day-first is impossible
		{"2025/09/16", "16/09/2025"},
		{"16.9.2025", "16/09/2025"},
		{"3/4/2025", "03/04/2025"}, // ambiguous: day-first wins
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := ParseDate(model.TextCell(tt.in))
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Format(model.DateLayout))
		})
	}
}

func TestParseDate_Permissive(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3/4/25", "03/04/2025"},    // two-digit year
		{"16 Sep 2025", "16/09/2025"},
		{"Sep 16, 2025", "16/09/2025"},
		{"16-Sep-2025", "16/09/2025"},
		{"2025-09-16 14:30:00", "16/09/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, ok := ParseDate(model.TextCell(tt.in))
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Format(model.DateLayout))
		})
	}
}

func TestParseDate_Unparseable(t *testing.T) {
	tests := []string{
		"not-a-date",
		"31/02/2025", // no month has 31 days here in either order
		"9999",
		"//",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, ok := ParseDate(model.TextCell(in))
			assert.False(t, ok)
		})
	}
}

func TestParseDate_EmptyAndWhitespace(t *testing.T) {
	_, ok := ParseDate(model.EmptyCell())
	assert.False(t, ok)

	_, ok = ParseDate(model.TextCell("   "))
	assert.False(t, ok)
}

func TestParseDate_DateCellPassesThrough(t *testing.T) {
	want := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	d, ok := ParseDate(model.DateCell(want))
	require.True(t, ok)
	assert.Equal(t, want, d)
}

func TestParseDate_RoundTrip(t *testing.T) {
	d, ok := ParseDate(model.TextCell("3/4/2025"))
	require.True(t, ok)

	// Formatting and re-parsing with the strict DD/MM/YYYY layout yields
	// the identical date.
	again, err := time.Parse(model.DateLayout, d.Format(model.DateLayout))
	require.NoError(t, err)
	assert.True(t, d.Equal(again))
}
