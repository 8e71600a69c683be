package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagNewGame bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start playing 2048. The game is saved after every move and resumed
the next time you play.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Enter            - Keep going after reaching 2048
  P/Esc            - Pause
  R/N              - New game
  ?                - Toggle help
  Ctrl+S           - Save a screenshot to ~/.t2048/screenshots
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --new
  t2048 play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNewGame, "new", false, "Start a new game instead of resuming")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "t2048")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without storage", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	game := tui.NewGame(store, tui.GameOptions{
		SaveKey: localSaveKey,
		Fresh:   flagNewGame,
		Display: cfg.Display,
	}, logger)

	model := tui.NewModel(game, store, runtime, logger)
	if home, err := os.UserHomeDir(); err == nil {
		model.ScreenshotDir = filepath.Join(home, ".t2048", "screenshots")
	}

	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
