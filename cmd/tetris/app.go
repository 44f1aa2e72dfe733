package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// app bundles what every command needs: configuration, logger and store.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
	store   *storage.Store // nil when the database is unavailable
}

// newApp loads configuration, applies flag overrides and opens the logger
// and the score database. A database that cannot be opened is a warning,
// not an error: the game still works without it.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)

	logger, logFile, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "source", cfg.Source)

	a := &app{cfg: cfg, logger: logger, logFile: logFile}

	if cfg.Storage.DBPath != "" {
		store, err := storage.Open(config.ExpandPath(cfg.Storage.DBPath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			logger.Warn("scores database unavailable", "path", cfg.Storage.DBPath, "err", err)
		} else {
			a.store = store
		}
	}

	return a, nil
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing scores database", "err", err)
		}
	}
	a.logFile.Close()
}

// runtimeConfig returns the screen size and seed for a new session.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// gameOptions returns the options for a game session.
func (a *app) gameOptions() tui.Options {
	keys := tui.NewKeyMap(a.cfg.Keys)
	return tui.Options{
		Keys:   &keys,
		Theme:  a.cfg.Theme,
		Store:  a.store,
		Logger: a.logger,
	}
}
