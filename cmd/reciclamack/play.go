package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reciclamack/internal/audio"
	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
	"github.com/vovakirdan/reciclamack/internal/platform/tui"
	"github.com/vovakirdan/reciclamack/internal/registry"
	"github.com/vovakirdan/reciclamack/internal/replay"
	"github.com/vovakirdan/reciclamack/internal/storage"
	"github.com/vovakirdan/reciclamack/internal/transport/watch"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      string
	flagRecord     string
	flagMute       bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: reciclamack).

Controls:
  Left/A, Right/D  - Move the collector
  Enter/Space      - Start
  P/Esc            - Pause
  R                - Title screen (after game over)
  H                - Toggle hitbox overlay
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower start
  normal - Config as written
  hard   - Fewer lives, faster start and higher ceiling
  fixed  - No progression, stays at the config's initial level

Examples:
  reciclamack play
  reciclamack play reciclamack_rush
  reciclamack play --difficulty easy
  reciclamack play --config ./my-config.yaml
  reciclamack play --watch :8080 --record ./run.rmr`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagWatch, "watch", "", "Serve a spectator WebSocket feed on this address (e.g. :8080)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the session to a replay file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := config.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'reciclamack list' to see available modes.")
		os.Exit(1)
	}

	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	// Set config path and difficulty before creation
	reciclamack.SetConfigPath(flagConfig)
	reciclamack.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	opts, cleanup, err := openServices(game, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg, opts)
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// configured is implemented by games that expose their resolved config.
type configured interface {
	Config() config.Config
}

// openServices opens storage, audio, the spectator feed and the recorder
// requested by flags. The returned cleanup closes all of them.
func openServices(game registry.Game, cfg core.RuntimeConfig) (tui.Options, func(), error) {
	opts := tui.Options{Logger: logger}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		opts.Store = store
		closers = append(closers, func() { store.Close() })
	}

	if flagMute {
		opts.Audio = audio.Silent{}
	} else {
		opts.Audio = audio.Open(flagVolume, logger)
	}
	closers = append(closers, opts.Audio.Close)

	if flagWatch != "" {
		hub := watch.NewHub(game.ID(), logger)
		srv, err := watch.Listen(flagWatch, hub)
		if err != nil {
			cleanup()
			return opts, nil, err
		}
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			if err := srv.Serve(ctx); err != nil {
				logger.Error("spectator feed stopped", "error", err)
			}
		}()
		logger.Info("spectator feed listening", "address", srv.Addr())
		opts.Watch = hub
		closers = append(closers, cancel)
	}

	if flagRecord != "" {
		// Reset resolves the config the recording must carry; the host
		// resets again with the same inputs, which is deterministic.
		game.Reset(cfg)
		header := replay.Header{Game: game.ID(), Seed: cfg.Seed}
		if c, ok := game.(configured); ok {
			header.Config = c.Config()
		}
		rec, err := replay.Create(flagRecord, header)
		if err != nil {
			cleanup()
			return opts, nil, err
		}
		opts.Recorder = rec
		closers = append(closers, func() {
			if err := rec.Close(); err != nil {
				logger.Warn("cannot finish replay", "error", err)
				return
			}
			logger.Info("replay saved", "path", flagRecord, "frames", rec.Frames())
		})
	}

	return opts, cleanup, nil
}
