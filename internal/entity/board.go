package entity

import (
	"fmt"

	"github.com/rocketscienceinc/noughts/internal/apperror"
)

const Size = 3

// WinCombos lists the rows, columns and diagonals as flat board indices.
// The order is fixed so that evaluation is deterministic.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Cell is either empty or holds the mark of a player.
type Cell uint8

const EmptyCell Cell = 0

func Marked(player Player) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Owner returns the player whose mark is in the cell.
func (that Cell) Owner() (Player, bool) {
	if that.IsEmpty() {
		return 0, false
	}
	return Player(that), true
}

// String returns "X", "O" or an empty string for an empty cell.
func (that Cell) String() string {
	return Player(that).String()
}

// Board is the 3x3 grid stored row by row.
type Board [Size * Size]Cell

// Index converts a row and column to a flat board index.
func Index(row, col int) (int, error) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return 0, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}
	return row*Size + col, nil
}

func (that *Board) At(row, col int) (Cell, error) {
	idx, err := Index(row, col)
	if err != nil {
		return EmptyCell, err
	}
	return that[idx], nil
}

// WinningLine returns the first combo whose three cells hold the same mark.
func (that *Board) WinningLine() ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if !a.IsEmpty() && a == b && b == c {
			return combo, true
		}
	}
	return [3]int{}, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

func (that *Board) MarkedCount() int {
	count := 0
	for _, cell := range that {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// DetermineResult checks for a win before checking for a full board.
func (that *Board) DetermineResult() Outcome {
	if combo, ok := that.WinningLine(); ok {
		winner, _ := that[combo[0]].Owner()
		return Won(winner)
	}

	// the game will continue until all the squares are full
	if that.IsFull() {
		return Drawn()
	}

	return InProgress()
}
