package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/internal/usecase"
)

type gameManager interface {
	Game() *entity.Game
	Score() usecase.Score
	MakeTurn(row, col int) (entity.Outcome, error)
	NewGame() *entity.Game
}

// Model is the Bubble Tea model that draws the board and turns clicks and
// key presses into moves.
type Model struct {
	logger  *slog.Logger
	manager gameManager

	title string
	keys  keyMap
	help  help.Model

	cursorRow int
	cursorCol int
	hint      string
}

func NewModel(logger *slog.Logger, manager gameManager, title string) *Model {
	return &Model{
		logger:    logger.With("component", "tui"),
		manager:   manager,
		title:     title,
		keys:      defaultKeyMap(),
		help:      help.New(),
		cursorRow: 1,
		cursorCol: 1,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.title)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursorRow = max(m.cursorRow-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursorRow = min(m.cursorRow+1, entity.Size-1)
	case key.Matches(msg, m.keys.Left):
		m.cursorCol = max(m.cursorCol-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cursorCol = min(m.cursorCol+1, entity.Size-1)
	case key.Matches(msg, m.keys.Mark):
		m.markCell(m.cursorRow, m.cursorCol)
	case key.Matches(msg, m.keys.NewGame):
		m.manager.NewGame()
		m.hint = ""
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return nil
}

// handleMouse only reacts to the release of the left button, a press or a
// drag never marks a cell.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionRelease {
		return
	}

	// X10 mouse reporting does not say which button was released.
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return
	}

	row, col, ok := cellAtPoint(msg.X, msg.Y)
	if !ok {
		m.logger.Debug("click outside the grid", "x", msg.X, "y", msg.Y)
		return
	}

	m.cursorRow, m.cursorCol = row, col
	m.markCell(row, col)
}

func (m *Model) markCell(row, col int) {
	if _, err := m.manager.MakeTurn(row, col); err != nil {
		m.hint = hintFor(err)
		return
	}

	m.hint = ""
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is already taken."
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		return "The game is over, press n for a new game."
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "That is not a cell on the board."
	default:
		return "Move rejected: " + err.Error()
	}
}

// StatusText is the banner shown above the board.
func StatusText(game *entity.Game) string {
	outcome := game.Outcome()

	switch outcome.Status() {
	case entity.StatusWon:
		winner, _ := outcome.Winner()
		return winner.String() + " wins!"
	case entity.StatusDrawn:
		return "It's a draw!"
	default:
		player := game.CurrentPlayer()
		return fmt.Sprintf("Player %d's Turn (%s)", player.Number(), player)
	}
}

func (m *Model) View() string {
	game := m.manager.Game()
	lines := make([]string, 0, boardTop+entity.Size*(cellHeight+1)+6)

	lines = append(lines, TitleStyle.Render(m.title), "")
	lines = append(lines, m.renderStatus(game), "")
	lines = append(lines, m.renderBoard(game)...)

	score := m.manager.Score()
	lines = append(lines,
		"",
		ScoreStyle.Render(fmt.Sprintf("Game %d   X: %d   O: %d   Draws: %d", score.Games, score.XWins, score.OWins, score.Draws)),
		HintStyle.Render(m.hint),
		"",
		m.help.View(m.keys),
	)

	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus(game *entity.Game) string {
	text := StatusText(game)

	switch game.Outcome().Status() {
	case entity.StatusWon:
		return WinStyle.Render(text)
	case entity.StatusDrawn:
		return DrawStyle.Render(text)
	default:
		return TurnStyle.Render(text)
	}
}

// renderBoard returns one string per screen line, starting at boardTop.
func (m *Model) renderBoard(game *entity.Game) []string {
	board := game.Board()

	var winning [entity.Size * entity.Size]bool
	if line, ok := board.WinningLine(); ok {
		for _, idx := range line {
			winning[idx] = true
		}
	}

	indent := strings.Repeat(" ", boardLeft)
	segment := strings.Repeat("─", cellWidth)
	border := func(left, middle, right string) string {
		return indent + GridStyle.Render(left+segment+middle+segment+middle+segment+right)
	}

	lines := []string{border("┌", "┬", "┐")}
	for row := range entity.Size {
		for line := range cellHeight {
			var b strings.Builder
			b.WriteString(indent)
			b.WriteString(GridStyle.Render("│"))
			for col := range entity.Size {
				idx := row*entity.Size + col
				cursor := !game.IsFinished() && row == m.cursorRow && col == m.cursorCol
				b.WriteString(renderCell(board[idx], line == cellHeight/2, cursor, winning[idx]))
				b.WriteString(GridStyle.Render("│"))
			}
			lines = append(lines, b.String())
		}

		if row < entity.Size-1 {
			lines = append(lines, border("├", "┼", "┤"))
		}
	}
	lines = append(lines, border("└", "┴", "┘"))

	return lines
}

func renderCell(cell entity.Cell, middle, cursor, winning bool) string {
	base := lipgloss.NewStyle()
	switch {
	case winning:
		base = WinningCellStyle
	case cursor:
		base = CursorStyle
	}

	if !middle || cell.IsEmpty() {
		return base.Render(strings.Repeat(" ", cellWidth))
	}

	glyph := XStyle
	if owner, _ := cell.Owner(); owner == entity.PlayerO {
		glyph = OStyle
	}

	pad := (cellWidth - 1) / 2
	return base.Render(strings.Repeat(" ", pad)) +
		glyph.Inherit(base).Render(cell.String()) +
		base.Render(strings.Repeat(" ", cellWidth-1-pad))
}
