package suite

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs holds everything written through Logger.
	Logs *bytes.Buffer
}

// New returns a suite whose logger records at debug level into a buffer.
// Styled output is rendered without escape codes so views can be compared as
// plain text.
func New(t *testing.T) *Suite {
	t.Helper()

	lipgloss.SetColorProfile(termenv.Ascii)

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,
	}
}
