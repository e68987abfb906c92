package ui

import "tablesort/internal/sorter"

type tableController interface {
	ID() string
	NextColumn()
	PrevColumn()
	JumpToColumn(number int) bool
	ActiveColumn() (col int, numeric bool)
	SortApplied(col int, dir sorter.Direction)
	ToggleNumeric() bool
	HideActiveColumn() bool
	ShowAllColumns()
	FilterBySelectedValue() bool
	ClearFilter() bool
	TableMeta() string
}
