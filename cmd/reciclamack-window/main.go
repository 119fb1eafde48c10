// reciclamack-window plays ReciclaMack in a desktop window.
//
// Usage:
//
//	reciclamack-window [mode] [flags]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reciclamack/internal/audio"
	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
	"github.com/vovakirdan/reciclamack/internal/platform/window"
	"github.com/vovakirdan/reciclamack/internal/replay"
	"github.com/vovakirdan/reciclamack/internal/storage"
	"github.com/vovakirdan/reciclamack/internal/transport/watch"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagHighScore  string
	flagWatch      string
	flagRecord     string
	flagMute       bool
	flagVolume     float64
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reciclamack-window [mode]",
	Short: "Play ReciclaMack in a window",
	Long: `Play ReciclaMack in a desktop window.

Controls:
  Left/A, Right/D  - Move the collector (hold)
  Enter/Space      - Start
  P/Esc            - Pause
  R                - Title screen (after game over)
  H                - Toggle hitbox overlay
  Q                - Quit`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Update rate (frames per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.StringVar(&flagDBPath, "db", "~/.reciclamack/scores.db", "Path to scores database")
	f.StringVar(&flagHighScore, "highscore", "~/.reciclamack/highscore.txt", "High score file of the classic mode (other modes add _<mode> before the extension)")
	f.StringVar(&flagWatch, "watch", "", "Serve a spectator WebSocket feed on this address")
	f.StringVar(&flagRecord, "record", "", "Record the session to a replay file")
	f.BoolVar(&flagMute, "mute", false, "Disable sound")
	f.Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
	f.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func run(_ *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reciclamack",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	variant := config.VariantClassic
	if len(args) == 1 {
		variant = args[0]
	}
	if variant != config.VariantClassic && variant != config.VariantRush {
		return fmt.Errorf("unknown mode %q", variant)
	}
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	reciclamack.SetConfigPath(flagConfig)
	reciclamack.SetDifficultyPreset(flagDifficulty)

	hsPath, err := storage.ExpandHome(flagHighScore)
	if err != nil {
		return err
	}
	opts := []reciclamack.Option{
		reciclamack.WithLogger(logger),
		reciclamack.WithHighScoreStore(storage.NewHighScoreFiles(hsPath, config.VariantClassic).For(variant)),
	}
	var game *reciclamack.Game
	if variant == config.VariantRush {
		game = reciclamack.NewRush(opts...)
	} else {
		game = reciclamack.New(opts...)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	hostOpts := window.Options{Logger: logger}

	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		hostOpts.Store = store
		defer store.Close()
	}

	if flagMute {
		hostOpts.Audio = audio.Silent{}
	} else {
		hostOpts.Audio = audio.Open(flagVolume, logger)
	}
	defer hostOpts.Audio.Close()

	if flagWatch != "" {
		hub := watch.NewHub(game.ID(), logger)
		srv, err := watch.Listen(flagWatch, hub)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := srv.Serve(ctx); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
		logger.Info("spectator feed listening", "address", srv.Addr())
		hostOpts.Watch = hub
	}

	if flagRecord != "" {
		// Resolve the config the recording carries; Run resets again identically
		game.Reset(rc)
		rec, err := replay.Create(flagRecord, replay.Header{
			Game:   game.ID(),
			Seed:   rc.Seed,
			Config: game.Config(),
		})
		if err != nil {
			return err
		}
		hostOpts.Recorder = rec
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Warn("cannot finish replay", "error", err)
				return
			}
			logger.Info("replay saved", "path", flagRecord, "frames", rec.Frames())
		}()
	}

	return window.Run(game, rc, hostOpts)
}
