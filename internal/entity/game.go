package entity

import (
	"fmt"

	"github.com/rocketscienceinc/noughts/internal/apperror"
)

// Game holds the board, the player to move and the outcome of one game.
// It is not safe for concurrent use.
type Game struct {
	board   Board
	turn    Player
	outcome Outcome
}

func NewGame() *Game {
	return &Game{
		turn:    PlayerX,
		outcome: InProgress(),
	}
}

// MakeTurn places the mark of the player to move on the given cell.
// A rejected move leaves the game untouched.
func (that *Game) MakeTurn(row, col int) (Outcome, error) {
	idx, err := Index(row, col)
	if err != nil {
		return that.outcome, err
	}

	if that.outcome.IsTerminal() {
		return that.outcome, fmt.Errorf("%w: %s", apperror.ErrGameAlreadyOver, that.outcome)
	}

	if !that.board[idx].IsEmpty() {
		return that.outcome, fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.board[idx] = Marked(that.turn)
	that.outcome = that.board.DetermineResult()

	if !that.outcome.IsTerminal() {
		that.turn = that.turn.Opponent()
	}

	return that.outcome, nil
}

// CurrentPlayer is the player to move. Once the game is over it is the last
// player who moved.
func (that *Game) CurrentPlayer() Player {
	return that.turn
}

func (that *Game) CellAt(row, col int) (Cell, error) {
	return that.board.At(row, col)
}

func (that *Game) Outcome() Outcome {
	return that.outcome
}

// Board returns a copy of the grid.
func (that *Game) Board() Board {
	return that.board
}

func (that *Game) MovesPlayed() int {
	return that.board.MarkedCount()
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsTerminal()
}
