package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"habitctl/internal/cli"
	"habitctl/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Settings.Load(); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Session, ctx.Habits), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
