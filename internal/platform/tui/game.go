package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// GameOptions describes how to set up a game for one player.
type GameOptions struct {
	// SaveKey identifies the player's saved game. Empty disables saving.
	SaveKey string
	// Fresh ignores the saved game and starts a new one.
	Fresh   bool
	Display config.DisplayConfig
}

// NewGame creates a 2048 game wired to the store: the best score is seeded
// from the leaderboard, the saved game under opts.SaveKey is resumed and
// every change is saved back. A nil store gives a game without persistence.
func NewGame(store *storage.Store, opts GameOptions, logger *log.Logger) *t2048.Game {
	game := t2048.New()
	game.SetAnimation(opts.Display.SlideTicks, opts.Display.PopTicks)

	if store == nil {
		return game
	}

	best, err := store.HighScore(game.ID())
	if err != nil {
		logger.Warn("could not read high score", "error", err)
	}
	game.SetBestScore(best)

	if opts.SaveKey == "" {
		return game
	}

	if !opts.Fresh {
		saved, ok, err := store.LoadSaved(opts.SaveKey)
		switch {
		case err != nil:
			logger.Warn("discarding saved game", "key", opts.SaveKey, "error", err)
		case ok:
			if err := game.Restore(saved); err != nil {
				logger.Warn("discarding saved game", "key", opts.SaveKey, "error", err)
			} else {
				logger.Debug("resuming saved game", "key", opts.SaveKey, "score", saved.Score)
			}
		}
	}

	game.SetSink(loggingSink{sink: store, logger: logger}, opts.SaveKey)
	return game
}

// loggingSink reports failed saves; the game keeps running either way.
type loggingSink struct {
	sink   t2048.Sink
	logger *log.Logger
}

func (s loggingSink) Save(key string, saved t2048.Saved) error {
	err := s.sink.Save(key, saved)
	if err != nil {
		s.logger.Warn("could not save game", "key", key, "error", err)
	}
	return err
}
