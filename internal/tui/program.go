package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/noughts/internal/config"
)

// NewProgram builds the terminal program for the model with the UI options
// from config.
func NewProgram(model *Model, conf config.UI, opts ...tea.ProgramOption) *tea.Program {
	if !conf.Inline {
		opts = append(opts, tea.WithAltScreen())
	}

	// cell motion mode reports button releases, which is all the model uses
	if !conf.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return tea.NewProgram(model, opts...)
}
