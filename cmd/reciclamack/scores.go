package main

import (
	"fmt"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/registry"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores and play statistics for the given mode
(default: reciclamack).

Examples:
  reciclamack scores
  reciclamack scores reciclamack_rush --limit 25
  reciclamack scores reciclamack --clear
  reciclamack scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the mode")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarize every mode instead of listing scores")
}

func runScores(_ *cobra.Command, args []string) {
	if flagScoresAll {
		runScoresSummary()
		return
	}

	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	title, ok := registry.Title(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'reciclamack list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'reciclamack play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Items", "Time", "When")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8s  %-6d  %-8s  %s\n",
			i+1,
			humanize.Comma(int64(entry.Score)),
			entry.Spawns,
			entry.Duration.Round(time.Second),
			humanize.Time(entry.CreatedAt),
		)
	}

	if stats, err := store.Stats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %s  |  Games: %s  |  Average: %.1f  |  Played: %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			stats.AvgScore,
			stats.PlayTime.Round(time.Second),
		)
	}
}

// runScoresSummary prints one line per registered mode.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-20s  %-8s  %-6s  %-9s  %s\n", "Mode", "Best", "Games", "Played", "Last")
	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-20s  %-8s  %-6d  %-9s  %s\n", g.Title, "-", 0, "-", "never")
			continue
		}
		fmt.Printf("  %-20s  %-8s  %-6s  %-9s  %s\n",
			g.Title,
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.GamesCount)),
			stats.PlayTime.Round(time.Second),
			humanize.Time(stats.LastPlayed),
		)
	}
}
