package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/snake"
	"github.com/vovakirdan/grid-arcade/internal/games/t2048"
	"github.com/vovakirdan/grid-arcade/internal/games/tetris"
	"github.com/vovakirdan/grid-arcade/internal/logging"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// gameConfig pairs a game's config path setter with a loader that
// validates a file before the game is pointed at it.
type gameConfig struct {
	set   func(string)
	check func(string) error
}

// gameConfigs maps each game's config file name to its setter and loader.
var gameConfigs = map[string]gameConfig{
	"t2048.yaml": {t2048.SetConfigPath, func(p string) error {
		_, err := config.LoadT2048(p)
		return err
	}},
	"tetris.yaml": {tetris.SetConfigPath, func(p string) error {
		_, err := config.LoadTetris(p)
		return err
	}},
	"snake.yaml": {snake.SetConfigPath, func(p string) error {
		_, err := config.LoadSnake(p)
		return err
	}},
}

// applyConfigDir points each game at dir/<name>.yaml when that file exists.
// Games without a file keep the default search order. A file that does not
// load or validate is an error.
func applyConfigDir(dir string) error {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config dir: %s is not a directory", dir)
	}

	for name, gc := range gameConfigs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config dir: %w", err)
		}
		if err := gc.check(path); err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
		gc.set(path)
	}
	return nil
}

// openDeps opens the log file and the score store for a local session.
// A store that fails to open is logged and skipped; games still run.
func openDeps() (tui.Deps, func(), error) {
	logger, logCloser, err := logging.OpenFile(flagLogFile, flagLogLevel, "arcade")
	if err != nil {
		return tui.Deps{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}

	cleanup := func() {
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("cannot close scores database", "err", err)
			}
		}
		_ = logCloser.Close()
	}

	return tui.NewDeps(store, logger), cleanup, nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
