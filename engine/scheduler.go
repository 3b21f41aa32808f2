// Package engine drives the tick loop: it admits pending characters,
// advances motion and color state, renders through the canvas, paces frames,
// and detects the terminal condition where every character has settled.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tjwei/terminaltexteffects/canvas"
	"github.com/tjwei/terminaltexteffects/character"
)

// DefaultInterval is the frame interval when none is configured.
const DefaultInterval = 16 * time.Millisecond

// Admission decides which pending characters become active on a tick.
// Effects supply staggered or randomized policies; nil admits everything on
// the first tick. The returned slice must be a subset of pending.
type Admission func(tick int, pending []*character.State) []*character.State

// Config assembles a scheduler.
type Config struct {
	Characters []*character.State
	Canvas     *canvas.Canvas
	Output     io.Writer

	// Interval is the frame interval, derived from the overall
	// animation-speed multiplier.
	Interval time.Duration

	Admit Admission
}

// Scheduler runs the frame loop for one animation. Characters and canvas are
// owned exclusively by the scheduler for the duration of the run; per-tick
// character updates are independent, so no locking is needed.
type Scheduler struct {
	chars    []*character.State
	pending  []*character.State
	canvas   *canvas.Canvas
	out      io.Writer
	interval time.Duration
	admit    Admission

	tick int

	// injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// New validates the configuration at setup time, before the frame loop
// starts. Every character's home position must fit inside the canvas;
// violations surface as canvas.ErrOutOfBounds rather than being clamped.
func New(cfg Config) (*Scheduler, error) {
	if cfg.Canvas == nil {
		return nil, fmt.Errorf("scheduler: nil canvas")
	}
	if cfg.Output == nil {
		return nil, fmt.Errorf("scheduler: nil output")
	}

	for _, ch := range cfg.Characters {
		if err := cfg.Canvas.CheckBounds(ch.Home(), ch.Width()); err != nil {
			return nil, fmt.Errorf("character %q home: %w", ch.Glyph(), err)
		}
		final := ch.Mover().Path().Final().Target
		if err := cfg.Canvas.CheckBounds(final, ch.Width()); err != nil {
			return nil, fmt.Errorf("character %q final waypoint: %w", ch.Glyph(), err)
		}
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Scheduler{
		chars:    cfg.Characters,
		pending:  append([]*character.State(nil), cfg.Characters...),
		canvas:   cfg.Canvas,
		out:      cfg.Output,
		interval: interval,
		admit:    cfg.Admit,
		now:      time.Now,
		sleep:    time.Sleep,
	}, nil
}

// Tick returns the number of completed ticks.
func (s *Scheduler) Tick() int {
	return s.tick
}

// Run drives the loop until all characters are settled or ctx is cancelled.
// Cancellation is checked between ticks, never mid-tick, and flushes a final
// settled frame (every character at home, final color) so the terminal is
// never left half-animated.
func (s *Scheduler) Run(ctx context.Context) error {
	deadline := s.now()

	for {
		select {
		case <-ctx.Done():
			s.flushSettled()
			return ctx.Err()
		default:
		}

		s.Step()

		if s.allSettled() {
			return nil
		}

		deadline = deadline.Add(s.interval)
		if d := deadline.Sub(s.now()); d > 0 {
			s.sleep(d)
		} else {
			// Render fell behind; realign rather than bursting frames.
			deadline = s.now()
		}
	}
}

// Step performs exactly one tick: admission, state updates, and rendering.
// Exposed for deterministic tests and embedding in external loops.
func (s *Scheduler) Step() {
	s.admitPending()

	for _, ch := range s.chars {
		if ch.Activation() == character.Active {
			ch.Tick()
		}
	}

	s.renderFrame()
	s.tick++
}

func (s *Scheduler) admitPending() {
	if len(s.pending) == 0 {
		return
	}

	var admitted []*character.State
	if s.admit == nil {
		admitted = s.pending
	} else {
		admitted = s.admit(s.tick, s.pending)
	}
	if len(admitted) == 0 {
		return
	}

	chosen := make(map[*character.State]bool, len(admitted))
	for _, ch := range admitted {
		chosen[ch] = true
		ch.Activate()
	}

	remaining := s.pending[:0]
	for _, ch := range s.pending {
		if !chosen[ch] {
			remaining = append(remaining, ch)
		}
	}
	s.pending = remaining
}

func (s *Scheduler) renderFrame() {
	s.canvas.BeginFrame()
	for _, ch := range s.chars {
		if ch.Activation() == character.Pending {
			continue
		}
		glyph, fg, pos := ch.RenderCell()
		s.canvas.Plot(pos, glyph, fg, ch.Width())
	}
	s.canvas.DiffAndEmit(s.out)
}

func (s *Scheduler) allSettled() bool {
	if len(s.pending) > 0 {
		return false
	}
	for _, ch := range s.chars {
		if !ch.Settled() {
			return false
		}
	}
	return true
}

// flushSettled forces every character to its terminal state and renders one
// last frame.
func (s *Scheduler) flushSettled() {
	s.pending = nil
	for _, ch := range s.chars {
		ch.FinishNow()
	}
	s.renderFrame()
	s.tick++
}
