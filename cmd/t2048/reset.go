package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagResetScores bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game",
	Long: `Delete the saved local game so the next 'play' starts fresh.

Examples:
  t2048 reset
  t2048 reset --scores   # Also clear the leaderboard`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also delete all recorded scores")
}

func runReset(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteSave(localSaveKey); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved game deleted.")

	if flagResetScores {
		if err := store.ClearScores(t2048.New().ID()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Scores cleared.")
	}
	return nil
}
