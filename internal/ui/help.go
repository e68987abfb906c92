package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tablesort/internal/model"
)

// RenderHelp renders the mode-sensitive help footer.
func RenderHelp(keys KeyMap, mode model.Mode, width int) string {
	if mode == model.ModeColumnJump {
		return renderHelpLine([]string{
			helpKey("1-9", "column"),
			helpKey("esc", "cancel"),
		}, width)
	}

	return renderHelpLine(helpKeys(
		keys.Down,
		keys.NextColumn,
		keys.Sort,
		keys.ToggleNumeric,
		keys.FilterValue,
		keys.HideColumn,
		keys.NextTable,
		keys.ColumnJump,
		keys.Help,
		keys.Quit,
	), width)
}

func helpKeys(bindings ...key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, helpKey(h.Key, h.Desc))
	}
	return out
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"] / [", "Next / previous table"},
			{"r", "Reload source"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Columns"),
		helpSection([]helpItem{
			{"tab / shift+tab", "Cycle active column"},
			{"/ then 1-9", "Jump to column"},
			{"c / C", "Hide active column / show all"},
			{"n / N", "Filter by selected value / clear"},
		}),
		titleSection("Sorting"),
		helpSection([]helpItem{
			{"s / enter", "Sort active column, again to reverse"},
			{"#", "Compare active column as text or numbers"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
