package tui

import "github.com/rocketscienceinc/noughts/internal/entity"

// Screen geometry in terminal cells. The board is drawn with box characters,
// every grid cell is cellWidth columns by cellHeight lines and separated from
// its neighbours by a one cell wide line.
const (
	boardLeft  = 2
	boardTop   = 4
	cellWidth  = 5
	cellHeight = 3
)

// cellAtPoint maps a pointer position to a grid cell. Positions on the grid
// lines or outside the board do not hit any cell.
func cellAtPoint(x, y int) (row, col int, ok bool) {
	rx := x - (boardLeft + 1)
	ry := y - (boardTop + 1)
	if rx < 0 || ry < 0 {
		return 0, 0, false
	}

	if rx%(cellWidth+1) == cellWidth || ry%(cellHeight+1) == cellHeight {
		return 0, 0, false
	}

	col = rx / (cellWidth + 1)
	row = ry / (cellHeight + 1)
	if row >= entity.Size || col >= entity.Size {
		return 0, 0, false
	}

	return row, col, true
}
