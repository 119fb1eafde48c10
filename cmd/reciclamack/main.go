// reciclamack is a falling-object arcade game: catch recyclables, dodge batteries.
//
// Usage:
//
//	reciclamack list                 - List available modes
//	reciclamack play [mode]          - Play a mode in the terminal
//	reciclamack menu                 - Pick modes interactively
//	reciclamack serve                - Start SSH server for remote play
//	reciclamack scores <mode>        - Show high scores for a mode
//	reciclamack replay <file>        - Re-simulate a recorded session
//	reciclamack config print <mode>  - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.reciclamack/scores.db)
//	--highscore <path>  - Set classic high score file (default: ~/.reciclamack/highscore.txt);
//	                      other modes use highscore_<mode>.txt next to it
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
	"github.com/vovakirdan/reciclamack/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reciclamack",
	Short: "ReciclaMack - catch the recyclables, dodge the batteries",
	Long: `ReciclaMack is a falling-object arcade game for the terminal.

Move the collector along the bottom of the screen to catch metal, plastic
and reusable items. Batteries explode and cost a life.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Re-simulate a recorded session
  config   - Print or validate configuration files

Examples:
  reciclamack play
  reciclamack play reciclamack_rush --difficulty hard
  reciclamack play --record ./run.rmr --watch :8080
  reciclamack replay ./run.rmr
  reciclamack serve --ssh :2222`,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLog()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reciclamack/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.reciclamack/highscore.txt", "High score file of the classic mode (other modes add _<mode> before the extension)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.reciclamack/reciclamack.log", "Log file (- for stderr)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// setup configures logging and the per-mode high score files.
func setup(_ *cobra.Command, _ []string) error {
	logger, err := openLog(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	reciclamack.SetLogger(logger)

	path, err := storage.ExpandHome(flagHighScore)
	if err != nil {
		return fmt.Errorf("cannot resolve high score path: %w", err)
	}
	files := storage.NewHighScoreFiles(path, config.VariantClassic)
	reciclamack.SetHighScoreStores(func(variant string) reciclamack.HighScoreStore {
		return files.For(variant)
	})
	return nil
}
