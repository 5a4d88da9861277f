package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Tracker), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
