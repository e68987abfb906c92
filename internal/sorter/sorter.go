// Package sorter reorders the data rows of a table by one column, toggling
// between ascending and descending on each call for the same table and column.
package sorter

import (
	"fmt"
	"log/slog"
	"slices"
)

// Sorter applies column sorts and records their direction in a Registry.
// It is not safe for concurrent use.
type Sorter struct {
	registry   *Registry
	comparator Comparator
	logger     *slog.Logger
}

// Option configures a Sorter.
type Option func(*Sorter)

// WithComparator selects the key comparison.
func WithComparator(c Comparator) Option {
	return func(s *Sorter) {
		s.comparator = c
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sorter) {
		s.logger = l
	}
}

// New creates a Sorter recording state in reg. A nil reg gets a fresh Registry.
func New(reg *Registry, opts ...Option) *Sorter {
	if reg == nil {
		reg = NewRegistry()
	}
	s := &Sorter{
		registry:   reg,
		comparator: CompareThreeWay,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry returns the state the sorter records into.
func (s *Sorter) Registry() *Registry {
	return s.registry
}

// SortTable resolves tableID and sorts it by columnIndex.
// It returns the direction applied.
func (s *Sorter) SortTable(tables Resolver, columnIndex int, tableID string, isNumeric bool) (Direction, error) {
	view, ok := tables.Table(tableID)
	if !ok || view == nil {
		return Unsorted, fmt.Errorf("%w: %q not found", ErrInvalidTable, tableID)
	}
	return s.Sort(view, tableID, columnIndex, isNumeric)
}

// Sort sorts view by columnIndex, recording state under tableID.
// The registry only changes once the rows have been reordered.
func (s *Sorter) Sort(view TableView, tableID string, columnIndex int, isNumeric bool) (Direction, error) {
	if columnIndex < 0 {
		return Unsorted, fmt.Errorf("%w: %d", ErrColumnOutOfRange, columnIndex)
	}

	n := view.Len()
	keys := make([]sortKey, n)
	for row := range n {
		text, ok := view.CellText(row, columnIndex)
		if !ok {
			return Unsorted, fmt.Errorf("%w: row %d has no column %d", ErrColumnOutOfRange, row, columnIndex)
		}
		keys[row] = makeKey(text, isNumeric)
	}

	dir := s.registry.Direction(tableID, columnIndex).next()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	compare := compareFunc(s.comparator, isNumeric, dir)
	byKey := func(a, b int) int { return compare(keys[a], keys[b]) }
	if s.comparator == CompareLegacy {
		slices.SortFunc(order, byKey)
	} else {
		slices.SortStableFunc(order, byKey)
	}

	if err := view.Reorder(order); err != nil {
		return Unsorted, fmt.Errorf("failed to reorder %q: %w", tableID, err)
	}
	s.registry.Toggle(tableID, columnIndex)

	s.logger.Debug("sorted table",
		slog.String("table", tableID),
		slog.Int("column", columnIndex),
		slog.Bool("numeric", isNumeric),
		slog.String("direction", dir.String()),
		slog.Int("rows", n),
	)
	return dir, nil
}
