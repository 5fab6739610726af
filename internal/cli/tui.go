package cli

import (
	tea "github.com/charmbracelet/bubbletea"

	"babylog/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	m := tui.NewModel(ctx.Store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
