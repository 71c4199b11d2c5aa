package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"

	app "github.com/rocketscienceinc/noughts/internal"
	"github.com/rocketscienceinc/noughts/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"config.yml" type:"path" help:"Path to the YAML config file"`
	LogLevel string           `help:"Override the configured log level (debug, info, warn, error)"`
	NoMouse  bool             `help:"Play with the keyboard only"`
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("noughts"),
		kong.Description("Noughts and crosses for two players sharing a terminal"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	conf := initConfig(&cli)

	logFile, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	ctx.FatalIfErrorf(err)
	defer logFile.Close()

	logger := initLogger(conf, logFile)

	if err = app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(cli *CLI) *config.Config {
	conf := config.MustLoad(cli.Config)

	if cli.LogLevel != "" {
		conf.LogLevel = cli.LogLevel
	}

	if cli.NoMouse {
		conf.UI.DisableMouse = true
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	if conf.LogFormat == "text" {
		return slog.New(charmlog.NewWithOptions(out, charmlog.Options{
			Level:           charmlog.Level(level),
			ReportTimestamp: true,
		}))
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
