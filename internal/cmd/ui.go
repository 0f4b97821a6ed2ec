package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pthm/readlevel/internal/ui"
	"github.com/spf13/cobra"
)

func newUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive analyzer",
		Long: `Open a full-screen editor: paste or type text, press ctrl+r to see
its grade level and ctrl+s to save the analyzer state.`,
		Args: cobra.NoArgs,
		RunE: a.wrap(a.runUI),
	}
}

func (a *app) runUI(cmd *cobra.Command, args []string) error {
	if err := a.ui.RequireInteractive(); err != nil {
		return err
	}

	model := ui.NewAnalyzerModel(a.store.Load(), a.store)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(a.ui.Writer),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("analyzer exited: %w", err)
	}
	return nil
}
