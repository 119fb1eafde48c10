package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/reciclamack/internal/config"
	"github.com/vovakirdan/reciclamack/internal/core"
	"github.com/vovakirdan/reciclamack/internal/games/reciclamack"
)

// Result summarizes a re-simulated replay.
type Result struct {
	Header   Header
	Frames   int
	Sessions int // sessions started during the replay
	State    core.GameState
	Snapshot reciclamack.Snapshot
}

// Run re-simulates the replay at path without a display.
// The game is built from the recorded config, so the outcome does not
// depend on local configuration files. High scores are not persisted.
func Run(path string, logger *log.Logger) (Result, error) {
	r, err := Open(path)
	if err != nil {
		return Result{}, err
	}
	defer r.Close()

	h := r.Header()
	g, err := newGame(h, logger)
	if err != nil {
		return Result{}, err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = h.Seed
	g.Reset(runtime)

	res := Result{Header: h}
	for {
		fr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, err
		}
		step := g.Step(fr.Input(), fr.DT)
		if core.HasEvent(step.Events, core.EventStarted) {
			res.Sessions++
		}
		res.Frames++
	}

	res.State = g.State()
	res.Snapshot = g.Snapshot()
	return res, nil
}

func newGame(h Header, logger *log.Logger) (*reciclamack.Game, error) {
	opts := []reciclamack.Option{
		reciclamack.WithConfig(h.Config),
		reciclamack.WithHighScoreStore(nil),
	}
	if logger != nil {
		opts = append(opts, reciclamack.WithLogger(logger))
	}
	switch h.Game {
	case config.VariantClassic:
		return reciclamack.New(opts...), nil
	case config.VariantRush:
		return reciclamack.NewRush(opts...), nil
	default:
		return nil, fmt.Errorf("replay: unknown game %q", h.Game)
	}
}
