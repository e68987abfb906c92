package htmltable

import (
	"golang.org/x/net/html"

	"tablesort/internal/sorter"
)

// Table is a view over one table element. Rows are captured when the table is
// looked up; the first <tr> is the header.
type Table struct {
	id     string
	node   *html.Node
	header *html.Node
	rows   []*html.Node
	cells  [][]*html.Node
}

func newTable(id string, node *html.Node) *Table {
	t := &Table{id: id, node: node}
	trs := findNodes(node, isElement("tr"))
	if len(trs) == 0 {
		return t
	}
	t.header = trs[0]
	t.rows = trs[1:]
	t.cells = make([][]*html.Node, len(t.rows))
	for i, tr := range t.rows {
		t.cells[i] = findNodes(tr, isElement("td"))
	}
	return t
}

// ID returns the element id.
func (t *Table) ID() string {
	return t.id
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// CellText returns the rendered text of a data cell.
func (t *Table) CellText(row, col int) (string, bool) {
	if row < 0 || row >= len(t.cells) {
		return "", false
	}
	cells := t.cells[row]
	if col < 0 || col >= len(cells) {
		return "", false
	}
	return collectText(cells[col]), true
}

// Reorder moves the data rows into the given order. Every old row position
// keeps its place in the tree, so row i of the new order lands where row i was
// and each <tbody> keeps its row count. Nodes are moved, never copied, and the
// header is left where it is.
func (t *Table) Reorder(order []int) error {
	if err := sorter.ValidateOrder(order, len(t.rows)); err != nil {
		return err
	}
	rows := make([]*html.Node, len(order))
	cells := make([][]*html.Node, len(order))
	for i, idx := range order {
		rows[i] = t.rows[idx]
		cells[i] = t.cells[idx]
	}

	slots := make([]*html.Node, len(t.rows))
	for i, tr := range t.rows {
		slot := &html.Node{Type: html.CommentNode}
		tr.Parent.InsertBefore(slot, tr)
		tr.Parent.RemoveChild(tr)
		slots[i] = slot
	}
	for i, tr := range rows {
		slot := slots[i]
		slot.Parent.InsertBefore(tr, slot)
		slot.Parent.RemoveChild(slot)
	}

	t.rows = rows
	t.cells = cells
	return nil
}

// Header returns the header labels: <th> cells, or <td> when there are none.
func (t *Table) Header() []string {
	if t.header == nil {
		return nil
	}
	cells := findNodes(t.header, isElement("th"))
	if len(cells) == 0 {
		cells = findNodes(t.header, isElement("td"))
	}
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = collectText(c)
	}
	return labels
}

// Records returns the text of every data cell, row by row.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.cells))
	for i, cells := range t.cells {
		rec := make([]string, len(cells))
		for j, c := range cells {
			rec[j] = collectText(c)
		}
		records[i] = rec
	}
	return records
}

// Caption returns the text of the table's <caption>, if any.
func (t *Table) Caption() string {
	caps := findNodes(t.node, isElement("caption"))
	if len(caps) == 0 {
		return ""
	}
	return collectText(caps[0])
}
