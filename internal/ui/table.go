package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tablesort/internal/config"
	"tablesort/internal/model"
	"tablesort/internal/sorter"
	"tablesort/internal/util"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 32
)

type tableColumn struct {
	label   string
	width   int
	hidden  bool
	numeric bool
}

// TableModel is the screen for one table.
type TableModel struct {
	table  *model.Table
	rows   []model.Row // rows that pass the filter, in table order
	cursor int
	offset int
	page   int

	columns      []tableColumn
	activeColumn int
	sortColumn   int
	sortDir      sorter.Direction
	filterColumn int
	filterValue  string
}

// NewTableModel creates a table screen. Column kinds come from cfg, falling
// back to auto-detection when enabled.
func NewTableModel(t *model.Table, cfg *config.Config) *TableModel {
	if cfg == nil {
		cfg = config.Default()
	}
	m := &TableModel{
		table:        t,
		page:         10,
		sortColumn:   -1,
		filterColumn: -1,
	}

	for i := range t.Width() {
		label := fmt.Sprintf("col %d", i+1)
		if i < len(t.Header) && strings.TrimSpace(t.Header[i]) != "" {
			label = util.FormatCell(t.Header[i])
		}

		values := t.Column(i)
		width := len([]rune(label)) + 2
		for _, v := range values {
			width = max(width, len([]rune(util.FormatCell(v)))+2)
		}
		width = min(max(width, minColumnWidth), maxColumnWidth)

		numeric, ok := cfg.IsNumeric(t.ID, i)
		if !ok && cfg.Auto() {
			numeric = util.LooksNumeric(values)
		}

		m.columns = append(m.columns, tableColumn{label: label, width: width, numeric: numeric})
	}

	m.rebuild()
	return m
}

// ID returns the table identifier.
func (m *TableModel) ID() string {
	return m.table.ID
}

// Title returns the tab label.
func (m *TableModel) Title() string {
	if m.table.Title != "" {
		return m.table.Title
	}
	return m.table.ID
}

// SetPageSize sets how many rows fit on screen.
func (m *TableModel) SetPageSize(n int) {
	m.page = max(n, 1)
	m.clampCursor()
}

func (m *TableModel) rebuild() {
	selected := -1
	if m.cursor < len(m.rows) {
		selected = m.rows[m.cursor].ID
	}

	rows := make([]model.Row, 0, len(m.table.Rows))
	target := strings.TrimSpace(m.filterValue)
	for _, r := range m.table.Rows {
		if m.filterColumn >= 0 {
			cell := ""
			if m.filterColumn < len(r.Cells) {
				cell = r.Cells[m.filterColumn]
			}
			if !strings.EqualFold(strings.TrimSpace(cell), target) {
				continue
			}
		}
		rows = append(rows, r)
	}
	m.rows = rows

	for i, r := range m.rows {
		if r.ID == selected {
			m.cursor = i
			break
		}
	}
	m.clampCursor()
}

func (m *TableModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.page {
		m.offset = m.cursor - m.page + 1
	}
}

func cellAt(r model.Row, col int) string {
	cells := r.Cells
	if col < 0 || col >= len(cells) {
		return ""
	}
	return cells[col]
}

func (m *TableModel) NextColumn() {
	if len(m.columns) == 0 {
		return
	}
	start := m.activeColumn
	for {
		m.activeColumn = (m.activeColumn + 1) % len(m.columns)
		if !m.columns[m.activeColumn].hidden || m.activeColumn == start {
			return
		}
	}
}

func (m *TableModel) PrevColumn() {
	if len(m.columns) == 0 {
		return
	}
	start := m.activeColumn
	for {
		m.activeColumn--
		if m.activeColumn < 0 {
			m.activeColumn = len(m.columns) - 1
		}
		if !m.columns[m.activeColumn].hidden || m.activeColumn == start {
			return
		}
	}
}

func (m *TableModel) JumpToColumn(number int) bool {
	if number < 1 || number > len(m.columns) {
		return false
	}
	idx := number - 1
	if m.columns[idx].hidden {
		return false
	}
	m.activeColumn = idx
	return true
}

// ActiveColumn returns the active column and whether it compares numerically.
func (m *TableModel) ActiveColumn() (int, bool) {
	if len(m.columns) == 0 {
		return 0, false
	}
	return m.activeColumn, m.columns[m.activeColumn].numeric
}

// SortApplied records a finished sort and refreshes the visible rows.
func (m *TableModel) SortApplied(col int, dir sorter.Direction) {
	m.sortColumn = col
	m.sortDir = dir
	m.rebuild()
}

// ToggleNumeric flips the active column between numeric and text comparison
// and returns the new kind.
func (m *TableModel) ToggleNumeric() bool {
	if len(m.columns) == 0 {
		return false
	}
	c := &m.columns[m.activeColumn]
	c.numeric = !c.numeric
	return c.numeric
}

func (m *TableModel) HideActiveColumn() bool {
	if len(m.visibleColumnIndexes()) <= 1 {
		return false
	}
	m.columns[m.activeColumn].hidden = true
	m.ensureVisibleActiveColumn()
	return true
}

func (m *TableModel) ShowAllColumns() {
	for i := range m.columns {
		m.columns[i].hidden = false
	}
}

func (m *TableModel) FilterBySelectedValue() bool {
	cells := m.selectedRow()
	if cells == nil || m.activeColumn >= len(cells) {
		return false
	}
	value := strings.TrimSpace(cells[m.activeColumn])
	if value == "" {
		return false
	}
	m.filterColumn = m.activeColumn
	m.filterValue = value
	m.rebuild()
	return true
}

func (m *TableModel) ClearFilter() bool {
	if m.filterColumn < 0 {
		return false
	}
	m.filterColumn = -1
	m.filterValue = ""
	m.rebuild()
	return true
}

func (m *TableModel) TableMeta() string {
	if len(m.columns) == 0 {
		return ""
	}
	active := m.columns[m.activeColumn]
	kind := "text"
	if active.numeric {
		kind = "num"
	}
	parts := []string{fmt.Sprintf("col %s (%s)", strings.ToUpper(active.label), kind)}
	if m.sortColumn >= 0 && m.sortColumn < len(m.columns) {
		parts = append(parts, fmt.Sprintf("sort %s %s", strings.ToUpper(m.columns[m.sortColumn].label), m.sortDir))
	}
	if m.filterColumn >= 0 {
		parts = append(parts, fmt.Sprintf("filter %s=%q", strings.ToUpper(m.columns[m.filterColumn].label), m.filterValue))
	}
	return strings.Join(parts, "  ·  ")
}

func (m *TableModel) visibleColumnIndexes() []int {
	var idxs []int
	for i, c := range m.columns {
		if !c.hidden {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

func (m *TableModel) ensureVisibleActiveColumn() {
	if !m.columns[m.activeColumn].hidden {
		return
	}
	for i := range m.columns {
		if !m.columns[i].hidden {
			m.activeColumn = i
			return
		}
	}
	m.columns[0].hidden = false
	m.activeColumn = 0
}

// View renders the table.
func (m *TableModel) View(width, height int) string {
	if len(m.table.Rows) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render(fmt.Sprintf("    Table %q has no data rows.", m.table.ID))
	}

	visible := m.visibleColumnIndexes()
	if len(visible) == 0 {
		return EmptyStateStyle.Width(width).Height(height).Render("No visible columns. Press C to show all columns.")
	}

	widths := make([]int, 0, len(visible))
	headers := make([]string, 0, len(visible))
	totalFixed := 0
	for _, idx := range visible {
		col := m.columns[idx]
		label := strings.ToUpper(col.label)
		if idx == m.activeColumn {
			label = "❋ " + label
		}
		if idx == m.sortColumn {
			label += " " + m.sortDir.Arrow()
		}
		cellWidth := max(col.width, lipgloss.Width(label)+2)
		totalFixed += cellWidth
		widths = append(widths, cellWidth)
		headers = append(headers, label)
	}

	if len(widths) > 0 {
		extra := width - totalFixed - 4
		if extra > 0 {
			widths[len(widths)-1] += extra
		}
	}

	headerCells := make([]string, len(headers))
	for i, label := range headers {
		style := TableHeaderStyle
		if visible[i] == m.sortColumn {
			style = SortedHeaderStyle
		}
		headerCells[i] = style.Width(widths[i]).Render(label)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left, headerCells...)

	visibleHeight := max(height-3, 1)
	var rows []string

	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		style := NormalRowStyle
		if i%2 == 1 {
			style = StripedRowStyle
		}
		if i == m.cursor {
			style = SelectedRowStyle
		}

		cells := make([]string, 0, len(visible))
		for _, idx := range visible {
			col := m.columns[idx]
			text := util.TruncateString(util.FormatCell(cellAt(m.rows[i], idx)), col.width-2)
			if col.numeric && i != m.cursor {
				text = NumericCellStyle.Render(text)
			}
			cells = append(cells, text)
		}

		rows = append(rows, renderTableRow(cells, widths, style))
	}

	filterInfo := ""
	if m.filterColumn >= 0 {
		filterInfo = fmt.Sprintf("  ·  filtered: %d/%d", len(m.rows), len(m.table.Rows))
	}
	meta := m.TableMeta()
	if meta != "" {
		meta = "  ·  " + meta
	}
	status := StatusBarStyle.Render(util.Plural(len(m.rows), "row") + filterInfo + meta)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.Join(rows, "\n"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		"",
		status,
	)
}

// MoveDown moves the cursor down.
func (m *TableModel) MoveDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		m.clampCursor()
	}
}

// MoveUp moves the cursor up.
func (m *TableModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.clampCursor()
	}
}

// JumpToTop jumps to the first row.
func (m *TableModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *TableModel) JumpToBottom() {
	m.cursor = len(m.rows) - 1
	m.clampCursor()
}

// HalfPageDown moves down half a page.
func (m *TableModel) HalfPageDown() {
	m.cursor += max(m.page/2, 1)
	m.clampCursor()
}

// HalfPageUp moves up half a page.
func (m *TableModel) HalfPageUp() {
	m.cursor -= max(m.page/2, 1)
	m.clampCursor()
}

// selectedRow returns the cells of the row under the cursor.
func (m *TableModel) selectedRow() []string {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.cursor].Cells
}

// Helper function to render a table row
func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
