package main

import (
	"fmt"
	"os"
	"time"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reciclamack/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session",
	Long: `Re-run a session recorded with 'play --record' without a display and
print how it ended. The recorded config is used, so the result does not
depend on local config files.

Examples:
  reciclamack play --record ./run.rmr
  reciclamack replay ./run.rmr`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	res, err := replay.Run(args[0], logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	h := res.Header
	snap := res.Snapshot
	fmt.Printf("Replay %s\n", h.ID)
	fmt.Println()
	fmt.Printf("  Mode:      %s\n", h.Game)
	fmt.Printf("  Seed:      %d\n", h.Seed)
	fmt.Printf("  Recorded:  %s\n", humanize.Time(h.CreatedAt))
	fmt.Printf("  Frames:    %s\n", humanize.Comma(int64(res.Frames)))
	fmt.Printf("  Sessions:  %d\n", res.Sessions)
	fmt.Println()
	fmt.Printf("  Phase:     %s\n", snap.Phase)
	fmt.Printf("  Score:     %s\n", humanize.Comma(int64(snap.Score)))
	fmt.Printf("  Lives:     %d\n", snap.Lives)
	fmt.Printf("  Items:     %d\n", snap.Spawns)
	fmt.Printf("  Time:      %s\n", time.Duration(snap.Elapsed*float64(time.Second)).Round(time.Millisecond))
	fmt.Printf("  State:     %016x\n", snap.Hash())
}
