package ui

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorBase    = lipgloss.Color("#1B1F27")
	ColorSurface = lipgloss.Color("#283040")
	ColorStripe  = lipgloss.Color("#222834")
	ColorMuted   = lipgloss.Color("#7C869A")
	ColorText    = lipgloss.Color("#D8DEE9")
	ColorAccent  = lipgloss.Color("#88A4C8")
	ColorGreen   = lipgloss.Color("#a6e3a1")
	ColorRed     = lipgloss.Color("#f38ba8")
	ColorYellow  = lipgloss.Color("#f9e2af")
)

// Chrome around the table: title bar, tabs, banners, footer.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	BreadcrumbStyle       = lipgloss.NewStyle().Foreground(ColorMuted)
	BreadcrumbActiveStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	TabBarStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted)
	TabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(ColorMuted)
	ActiveTabStyle = TabStyle.Foreground(ColorText).Bold(true).Underline(true)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorRed).Padding(0, 1)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen).Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)
	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	EmptyStateStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true).Padding(2, 4)
)

// Table grid.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Padding(0, 1).
				Background(ColorSurface)
	// SortedHeaderStyle marks the column the rows are currently ordered by.
	SortedHeaderStyle = TableHeaderStyle.Foreground(ColorYellow)

	NormalRowStyle   = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	StripedRowStyle  = NormalRowStyle.Background(ColorStripe)
	SelectedRowStyle = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorAccent)

	NumericCellStyle = lipgloss.NewStyle().Foreground(ColorYellow)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)
