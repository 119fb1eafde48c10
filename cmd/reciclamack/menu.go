package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reciclamack/internal/audio"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
	"github.com/vovakirdan/reciclamack/internal/platform/tui"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. Press B on the title or game over screen to come back.

Examples:
  reciclamack menu
  reciclamack menu --fps 30
  reciclamack menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	reciclamack.SetDifficultyPreset(flagDifficulty)

	opts := tui.Options{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if flagMute {
		opts.Audio = audio.Silent{}
	} else {
		opts.Audio = audio.Open(flagVolume, logger)
	}
	defer opts.Audio.Close()

	if err := tui.RunSession(runtimeConfig(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
