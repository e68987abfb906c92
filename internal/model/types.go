package model

import (
	"fmt"

	"tablesort/internal/sorter"
)

// Row is one data row. ID survives reordering and identifies the row.
type Row struct {
	ID    int
	Cells []string
}

// Table is an in-memory table: a header plus data rows.
type Table struct {
	ID     string
	Title  string
	Header []string
	Rows   []Row
}

// NewTable builds a table from header labels and raw cell records.
// Rows get IDs in input order.
func NewTable(id string, header []string, records [][]string) *Table {
	t := &Table{
		ID:     id,
		Title:  id,
		Header: append([]string(nil), header...),
		Rows:   make([]Row, len(records)),
	}
	for i, rec := range records {
		t.Rows[i] = Row{ID: i, Cells: append([]string(nil), rec...)}
	}
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// CellText returns the text of a cell.
func (t *Table) CellText(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	cells := t.Rows[row].Cells
	if col < 0 || col >= len(cells) {
		return "", false
	}
	return cells[col], true
}

// Reorder moves rows into the given order.
func (t *Table) Reorder(order []int) error {
	if err := sorter.ValidateOrder(order, len(t.Rows)); err != nil {
		return err
	}
	rows := make([]Row, len(order))
	for i, idx := range order {
		rows[i] = t.Rows[idx]
	}
	t.Rows = rows
	return nil
}

// Column returns every data cell of a column, "" where a row is short.
func (t *Table) Column(col int) []string {
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		if col >= 0 && col < len(r.Cells) {
			out[i] = r.Cells[col]
		}
	}
	return out
}

// Width returns the widest of the header and the data rows.
func (t *Table) Width() int {
	w := len(t.Header)
	for _, r := range t.Rows {
		w = max(w, len(r.Cells))
	}
	return w
}

// Catalog is an ordered set of tables addressable by ID.
type Catalog struct {
	tables []*Table
	byID   map[string]*Table
}

// NewCatalog indexes tables by ID. Duplicate IDs are an error.
func NewCatalog(tables ...*Table) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate table id %q", t.ID)
		}
		c.byID[t.ID] = t
		c.tables = append(c.tables, t)
	}
	return c, nil
}

// Table implements sorter.Resolver.
func (c *Catalog) Table(id string) (sorter.TableView, bool) {
	t, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return t, true
}

// Get returns the concrete table for id.
func (c *Catalog) Get(id string) (*Table, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// Tables returns the tables in load order.
func (c *Catalog) Tables() []*Table {
	return c.tables
}

// Len returns the number of tables.
func (c *Catalog) Len() int {
	return len(c.tables)
}
