package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	TurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	DrawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	GridStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	XStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF6B6B")).
		Bold(true)

	OStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ECDC4")).
		Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3C3C3C"))

	WinningCellStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#5A4A00"))

	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))
)
