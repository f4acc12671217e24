// Package arcade contains the driving loop that composes a game with an
// input source and a presenter. The loop is strictly sequential: poll input
// over the tick window, advance the game one tick, render, repeat.
package arcade

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

// DefaultTick matches the original pacing: one game update every half second.
const DefaultTick = 500 * time.Millisecond

// Session runs rounds of one game against an input source and a presenter.
// All collaborators are injected; the session owns no devices.
type Session struct {
	Game   registry.Game
	Input  core.InputSource
	Output core.Presenter
	Config core.RuntimeConfig
	Tick   time.Duration
	Logger *log.Logger
}

// Run cycles intro -> round -> game over until ctx is cancelled. The display
// is cleared on the way out so an interrupt leaves the matrix dark.
// Presenter errors are fatal and propagate.
func (s *Session) Run(ctx context.Context) error {
	if s.Tick <= 0 {
		s.Tick = DefaultTick
	}
	defer s.Output.Clear() //nolint:errcheck // best effort on shutdown

	stop := func() bool {
		return ctx.Err() != nil || s.Input.ButtonPressed()
	}

	s.Logger.Info("press the joystick button to start", "game", s.Game.Title())

	for {
		if err := s.Output.PlayIntro(stop); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		state, err := s.playRound(ctx)
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		s.Logger.Info("round over", "game", s.Game.ID(), "score", state.Score)
		if err := s.Output.PlayGameOver(state.Score, stop); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// playRound plays one round to completion and returns the final state.
func (s *Session) playRound(ctx context.Context) (core.GameState, error) {
	cfg := s.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	s.Game.Reset(cfg)
	s.Logger.Debug("round started", "seed", cfg.Seed)

	state := s.Game.State()
	if err := s.render(); err != nil {
		return state, err
	}

	for !state.Over && ctx.Err() == nil {
		// The poll window is the tick clock; no extra sleep.
		dir := s.Input.Poll(ctx, s.Tick)
		state = s.Game.Step(dir)

		if err := s.render(); err != nil {
			return state, err
		}
		s.Logger.Debug("tick", "dir", dir, "score", state.Score, "over", state.Over)
	}
	return state, nil
}

func (s *Session) render() error {
	var f core.Frame
	s.Game.Render(&f)
	return s.Output.RenderFrame(&f)
}
