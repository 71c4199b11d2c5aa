package usecase

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/noughts/internal/entity"
)

// Score is the tally of finished games in the current session.
type Score struct {
	XWins int
	OWins int
	Draws int
	Games int
}

// GameManager owns the game being played. It is not safe for concurrent use,
// callers serialise access.
type GameManager struct {
	logger *slog.Logger

	game  *entity.Game
	score Score
}

func NewGameManager(logger *slog.Logger) *GameManager {
	that := &GameManager{
		logger: logger.With("component", "game_manager"),
	}
	that.NewGame()

	return that
}

func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) Score() Score {
	return that.score
}

// NewGame abandons the current game and starts an empty one.
func (that *GameManager) NewGame() *entity.Game {
	that.game = entity.NewGame()
	that.score.Games++

	that.logger.Info("game started", "game", that.score.Games)

	return that.game
}

func (that *GameManager) MakeTurn(row, col int) (entity.Outcome, error) {
	log := that.logger.With("method", "MakeTurn", "game", that.score.Games, "row", row, "col", col)

	player := that.game.CurrentPlayer()

	outcome, err := that.game.MakeTurn(row, col)
	if err != nil {
		log.Debug("move rejected", "player", player.String(), "error", err)

		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Info("move accepted", "player", player.String(), "outcome", outcome.String())

	if outcome.IsTerminal() {
		that.recordResult(outcome)
	}

	return outcome, nil
}

// recordResult is only reached on the move that ends the game, every later
// move is rejected by the game itself.
func (that *GameManager) recordResult(outcome entity.Outcome) {
	switch winner, _ := outcome.Winner(); {
	case winner == entity.PlayerX:
		that.score.XWins++
	case winner == entity.PlayerO:
		that.score.OWins++
	default:
		that.score.Draws++
	}

	that.logger.Info("game finished",
		"game", that.score.Games,
		"outcome", outcome.String(),
		"moves", that.game.MovesPlayed(),
	)
}
