package sorter

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Comparator selects how row keys are compared.
type Comparator string

const (
	// CompareThreeWay is a proper three-way comparison; ties keep their order.
	CompareThreeWay Comparator = "three-way"
	// CompareLegacy never reports equality: ascending is a > b ? 1 : -1,
	// descending is a < b ? 1 : -1. Tied and NaN keys land in arbitrary places.
	CompareLegacy Comparator = "legacy"
)

// AllComparators lists the accepted comparator names.
var AllComparators = []string{string(CompareThreeWay), string(CompareLegacy)}

// ParseComparator validates a comparator name. Empty means CompareThreeWay.
func ParseComparator(s string) (Comparator, error) {
	switch Comparator(strings.ToLower(strings.TrimSpace(s))) {
	case "", CompareThreeWay:
		return CompareThreeWay, nil
	case CompareLegacy:
		return CompareLegacy, nil
	}
	return "", fmt.Errorf("unknown comparator %q", s)
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ParseNumber reads the longest numeric prefix of s after leading whitespace,
// so "12px" is 12 and " -3.5e2 kg" is -350. Text without one is NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimLeftFunc(s, isStrWhiteSpace)
	m := leadingNumber.FindString(s)
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

// isStrWhiteSpace matches what parseFloat skips: Unicode spaces plus the BOM.
func isStrWhiteSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

type sortKey struct {
	num  float64
	text string
}

func makeKey(text string, numeric bool) sortKey {
	if numeric {
		return sortKey{num: ParseNumber(text)}
	}
	return sortKey{text: strings.ToLower(text)}
}

func compareFunc(c Comparator, numeric bool, dir Direction) func(a, b sortKey) int {
	if c == CompareLegacy {
		greater := func(a, b sortKey) bool { return a.text > b.text }
		if numeric {
			greater = func(a, b sortKey) bool { return a.num > b.num }
		}
		if dir == Descending {
			return func(a, b sortKey) int {
				if greater(b, a) {
					return 1
				}
				return -1
			}
		}
		return func(a, b sortKey) int {
			if greater(a, b) {
				return 1
			}
			return -1
		}
	}

	three := func(a, b sortKey) int { return strings.Compare(a.text, b.text) }
	if numeric {
		three = func(a, b sortKey) int { return cmp.Compare(a.num, b.num) }
	}
	if dir == Descending {
		return func(a, b sortKey) int { return three(b, a) }
	}
	return three
}
