package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tablesort/internal/source"
	"tablesort/internal/ui"
)

// ViewArgs runs the interactive viewer.
type ViewArgs struct {
	root *RootArgs
}

func NewViewArgs(root *RootArgs) *ViewArgs {
	return &ViewArgs{root: root}
}

// Run opens the viewer on the source given as the only argument.
func (va *ViewArgs) Run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	loader := source.NewLoader(source.NewHTTPClient(va.root.Timeout))
	app := ui.New(loader, args[0], va.root.Config, slog.Default())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}
