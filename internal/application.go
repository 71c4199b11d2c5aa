package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/noughts/internal/config"
	"github.com/rocketscienceinc/noughts/internal/tui"
	"github.com/rocketscienceinc/noughts/internal/usecase"
)

// RunApp - runs the game until the player quits or the process is signalled.
func RunApp(logger *slog.Logger, conf *config.Config, opts ...tea.ProgramOption) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameManager := usecase.NewGameManager(logger)
	model := tui.NewModel(logger, gameManager, conf.UI.Title)
	program := tui.NewProgram(model, conf.UI, opts...)

	group, groupCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	group.Go(func() error {
		defer close(done)

		log.Info("Starting terminal UI", "mouse", !conf.UI.DisableMouse, "inline", conf.UI.Inline)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("terminal UI error: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			log.Info("Received signal, shutting down")
			program.Quit()
		case <-done:
		}

		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	score := gameManager.Score()
	log.Info("Session finished", "games", score.Games, "x_wins", score.XWins, "o_wins", score.OWins, "draws", score.Draws)

	return nil
}
