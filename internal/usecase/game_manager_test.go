package usecase

import (
	"testing"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *GameManager {
	t.Helper()

	return NewGameManager(suite.New(t).Logger)
}

func play(t *testing.T, manager *GameManager, cells ...[2]int) entity.Outcome {
	t.Helper()

	var outcome entity.Outcome
	for _, cell := range cells {
		var err error
		outcome, err = manager.MakeTurn(cell[0], cell[1])
		require.NoError(t, err)
	}

	return outcome
}

func TestNewGameManager(t *testing.T) {
	// When: a manager is created
	manager := newTestManager(t)

	// Then: the first game is ready and no results are recorded
	require.NotNil(t, manager.Game())
	assert.Equal(t, entity.InProgress(), manager.Game().Outcome())
	assert.Equal(t, Score{Games: 1}, manager.Score())
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Successful turn", func(t *testing.T) {
		// Given: a fresh manager
		manager := newTestManager(t)

		// When: X marks the centre
		outcome, err := manager.MakeTurn(1, 1)

		// Then: the move lands on the managed game
		require.NoError(t, err)
		assert.Equal(t, entity.InProgress(), outcome)
		cell, err := manager.Game().CellAt(1, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.Marked(entity.PlayerX), cell)
	})

	t.Run("Rejected turn keeps the error kind", func(t *testing.T) {
		// Given: a manager where 0,0 is taken
		manager := newTestManager(t)
		play(t, manager, [2]int{0, 0})

		// When: 0,0 and an out of range cell are tried
		_, occupiedErr := manager.MakeTurn(0, 0)
		_, boundsErr := manager.MakeTurn(3, 0)

		// Then: both errors still match the taxonomy
		require.ErrorIs(t, occupiedErr, apperror.ErrCellOccupied)
		require.ErrorIs(t, boundsErr, apperror.ErrOutOfBounds)
		assert.Equal(t, entity.PlayerO, manager.Game().CurrentPlayer())
	})

	t.Run("Win is counted once", func(t *testing.T) {
		// Given: a manager
		manager := newTestManager(t)

		// When: X wins and more moves are attempted
		outcome := play(t, manager, [2]int{0, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})
		_, err := manager.MakeTurn(2, 2)

		// Then: the late move fails and the win is recorded a single time
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
		assert.Equal(t, entity.Won(entity.PlayerX), outcome)
		assert.Equal(t, Score{XWins: 1, Games: 1}, manager.Score())
	})

	t.Run("Draw is counted", func(t *testing.T) {
		// Given: a manager
		manager := newTestManager(t)

		// When: the game is drawn
		outcome := play(t, manager,
			[2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2},
			[2]int{1, 1}, [2]int{1, 0}, [2]int{1, 2},
			[2]int{2, 1}, [2]int{2, 0}, [2]int{2, 2},
		)

		// Then: a draw is recorded
		assert.Equal(t, entity.Drawn(), outcome)
		assert.Equal(t, Score{Draws: 1, Games: 1}, manager.Score())
	})
}

func TestGameManager_NewGame(t *testing.T) {
	// Given: a manager where O has won the first game
	manager := newTestManager(t)
	play(t, manager, [2]int{0, 0}, [2]int{0, 1}, [2]int{2, 2}, [2]int{1, 1}, [2]int{0, 2}, [2]int{2, 1})

	// When: a new game is started
	game := manager.NewGame()

	// Then: the new game is empty, X moves first and the score is kept
	assert.Same(t, game, manager.Game())
	assert.Equal(t, entity.Board{}, game.Board())
	assert.Equal(t, entity.PlayerX, game.CurrentPlayer())
	assert.Equal(t, Score{OWins: 1, Games: 2}, manager.Score())
}

func TestGameManager_Logging(t *testing.T) {
	// Given: a manager logging at debug level into a buffer
	st := suite.New(t)
	manager := NewGameManager(st.Logger)

	// When: an accepted and a rejected move are made
	play(t, manager, [2]int{0, 0})
	_, err := manager.MakeTurn(0, 0)
	require.Error(t, err)

	// Then: both are logged
	logs := st.Logs.String()
	assert.Contains(t, logs, `"msg":"move accepted"`)
	assert.Contains(t, logs, `"msg":"move rejected"`)
	assert.Contains(t, logs, `"component":"game_manager"`)
}
