package ui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tablesort/internal/config"
	"tablesort/internal/model"
	"tablesort/internal/sorter"
)

// CatalogLoader loads the tables shown by the viewer.
type CatalogLoader interface {
	Load(ctx context.Context, location string) (*model.Catalog, error)
}

// Model is the root Bubble Tea model.
type Model struct {
	loader   CatalogLoader
	location string
	cfg      *config.Config
	logger   *slog.Logger

	// sorter and its registry live as long as the loaded catalog.
	sorter  *sorter.Sorter
	catalog *model.Catalog
	tables  []*TableModel
	active  int

	mode   model.Mode
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	loading     bool

	keys KeyMap
}

// New creates a new root model that loads location on Init.
func New(loader CatalogLoader, location string, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		loader:   loader,
		location: location,
		cfg:      cfg,
		logger:   logger,
		mode:     model.ModeNav,
		gState:   GStateIdle,
		keys:     DefaultKeyMap(),
		loading:  true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return loadTablesCmd(m.loader, m.location)
}

func loadTablesCmd(loader CatalogLoader, location string) tea.Cmd {
	return func() tea.Msg {
		catalog, err := loader.Load(context.Background(), location)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.TablesLoadedMsg{Source: location, Catalog: catalog}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, t := range m.tables {
			t.SetPageSize(m.pageSize())
		}
		return m, nil

	case tea.KeyMsg:
		// Handle ctrl+c globally
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.mode == model.ModeColumnJump {
			return m.handleColumnJump(msg)
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}

		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		return m.handleNavMode(msg)

	case model.ErrorMsg:
		m.loading = false
		m.error = msg.Err.Error()
		m.logger.Error("viewer error", slog.Any("err", msg.Err))
		return m, nil

	case model.TablesLoadedMsg:
		m.loading = false
		m.catalog = msg.Catalog
		m.sorter = sorter.New(sorter.NewRegistry(),
			sorter.WithComparator(m.cfg.SorterComparator()),
			sorter.WithLogger(m.logger),
		)
		m.tables = nil
		for _, t := range msg.Catalog.Tables() {
			tm := NewTableModel(t, m.cfg)
			tm.SetPageSize(m.pageSize())
			m.tables = append(m.tables, tm)
		}
		if m.active >= len(m.tables) {
			m.active = 0
		}
		m.error = ""
		m.logger.Info("loaded tables",
			slog.String("source", msg.Source),
			slog.Int("tables", len(m.tables)),
		)
		return m, nil
	}

	return m, nil
}

func (m Model) pageSize() int {
	// header, tabs, footer, table header and status bar
	return max(m.height-10, 1)
}

func (m Model) handleColumnJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = model.ModeNav
		m.info = ""
		return m, nil
	}
	n, err := strconv.Atoi(msg.String())
	if err != nil {
		return m, nil
	}
	t := m.currentTable()
	if t != nil && t.JumpToColumn(n) {
		m.mode = model.ModeNav
		m.info = fmt.Sprintf("Jumped to column %d", n)
		return m, nil
	}
	m.info = fmt.Sprintf("Column %d unavailable", n)
	return m, nil
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.info = "Reloading " + m.location
		return m, loadTablesCmd(m.loader, m.location)
	case key.Matches(msg, m.keys.NextTable):
		if len(m.tables) > 0 {
			m.active = (m.active + 1) % len(m.tables)
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevTable):
		if len(m.tables) > 0 {
			m.active = (m.active - 1 + len(m.tables)) % len(m.tables)
		}
		return m, nil
	}

	t := m.currentTable()
	if t == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextColumn):
		t.NextColumn()
		return m, nil
	case key.Matches(msg, m.keys.PrevColumn):
		t.PrevColumn()
		return m, nil
	case key.Matches(msg, m.keys.ColumnJump):
		m.mode = model.ModeColumnJump
		m.info = "Jump to column: press 1-9 (esc to cancel)"
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.sortActiveColumn(t)
		return m, nil
	case key.Matches(msg, m.keys.ToggleNumeric):
		if t.ToggleNumeric() {
			m.info = "Column compares as numbers"
		} else {
			m.info = "Column compares as text"
		}
		return m, nil
	case key.Matches(msg, m.keys.HideColumn):
		if t.HideActiveColumn() {
			m.info = "Column hidden"
		} else {
			m.info = "Cannot hide last visible column"
		}
		return m, nil
	case key.Matches(msg, m.keys.ShowColumns):
		t.ShowAllColumns()
		m.info = "All columns shown"
		return m, nil
	case key.Matches(msg, m.keys.FilterValue):
		if t.FilterBySelectedValue() {
			m.info = "Filter applied from selected value"
		} else {
			m.info = "No filterable value in selected cell"
		}
		return m, nil
	case key.Matches(msg, m.keys.ClearFilter):
		if t.ClearFilter() {
			m.info = "Filter cleared"
		}
		return m, nil
	}

	// Handle "gg" state machine
	if key.Matches(msg, m.keys.Top) {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		m.tables[m.active].JumpToTop()
		return m, nil
	}
	m.gState = GStateIdle

	tm := m.tables[m.active]
	switch {
	case key.Matches(msg, m.keys.Down):
		tm.MoveDown()
	case key.Matches(msg, m.keys.Up):
		tm.MoveUp()
	case key.Matches(msg, m.keys.Bottom):
		tm.JumpToBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		tm.HalfPageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		tm.HalfPageUp()
	}
	return m, nil
}

// sortActiveColumn is the header click: it sorts the active column through
// the shared sorter so repeated presses toggle the direction.
func (m *Model) sortActiveColumn(t tableController) {
	col, numeric := t.ActiveColumn()
	dir, err := m.sorter.SortTable(m.catalog, col, t.ID(), numeric)
	if err != nil {
		m.error = err.Error()
		m.logger.Warn("sort failed",
			slog.String("table", t.ID()),
			slog.Int("column", col),
			slog.Any("err", err),
		)
		return
	}
	t.SortApplied(col, dir)
	m.error = ""
	if dir == sorter.Descending {
		m.info = "Sorted descending"
	} else {
		m.info = "Sorted ascending"
	}
}

func (m *Model) currentTable() tableController {
	if m.active < 0 || m.active >= len(m.tables) {
		return nil
	}
	return m.tables[m.active]
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	breadcrumbParts := []string{filepath.Base(m.location)}
	contentHeight := m.height - 6 // header, tabs, footer

	var content string
	switch {
	case m.loading && len(m.tables) == 0:
		content = EmptyStateStyle.Render("Loading " + m.location + "...")
	case len(m.tables) == 0:
		content = EmptyStateStyle.Render("No tables loaded. Press r to retry.")
	default:
		t := m.tables[m.active]
		breadcrumbParts = append(breadcrumbParts, t.Title())
		content = t.View(m.width, contentHeight)
	}

	header := renderHeader(breadcrumbParts, m.width)
	tabs := renderTabs(m.tables, m.active, m.width)
	footer := RenderHelp(m.keys, m.mode, m.width)

	// Ensure content fills the available height to anchor footer at bottom
	content = lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	parts := []string{header, tabs}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTabs(tables []*TableModel, active, width int) string {
	tabs := make([]string, len(tables))
	for i, t := range tables {
		style := TabStyle
		if i == active {
			style = ActiveTabStyle
		}
		tabs[i] = style.Render(t.Title())
	}
	return TabBarStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, tabs...))
}

func renderHeader(breadcrumbParts []string, width int) string {
	title := HeaderStyle.Render("tablesort")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb
	return TitleStyle.Width(width).Render(left)
}
