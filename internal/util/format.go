package util

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"tablesort/internal/sorter"
)

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatCell flattens a cell for single-line display and marks empty cells.
func FormatCell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "—"
	}
	return s
}

// LooksNumeric reports whether every non-empty value has a numeric prefix.
// A column of only empty values is not numeric.
func LooksNumeric(values []string) bool {
	seen := false
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if math.IsNaN(sorter.ParseNumber(v)) {
			return false
		}
		seen = true
	}
	return seen
}

// Plural returns "1 row" or "1,234 rows".
func Plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}
