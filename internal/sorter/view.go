package sorter

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTable     = errors.New("invalid table")
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrInvalidOrder     = errors.New("invalid row order")
)

// TableView is the capability a table host exposes to the sorter.
// Row indexes count data rows only; the header is never visible here.
type TableView interface {
	// Len returns the number of data rows.
	Len() int
	// CellText returns the displayed text of a cell, false if the row has no such column.
	CellText(row, col int) (string, bool)
	// Reorder moves the data rows so that order[i] is the old index of the row now at i.
	Reorder(order []int) error
}

// Resolver looks up tables by identifier.
type Resolver interface {
	Table(id string) (TableView, bool)
}

// ValidateOrder reports whether order is a permutation of 0..n-1.
func ValidateOrder(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: got %d indexes for %d rows", ErrInvalidOrder, len(order), n)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n || seen[idx] {
			return fmt.Errorf("%w: bad index %d", ErrInvalidOrder, idx)
		}
		seen[idx] = true
	}
	return nil
}
