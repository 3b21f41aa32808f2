// Package character binds a source glyph to its motion state, gradient
// cursor, and activation state, and exposes the rendered cell for the
// current frame.
package character

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/tjwei/terminaltexteffects/geometry"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/motion"
)

// ErrUnsupportedGlyphWidth reports a code point whose terminal display width
// cannot be determined (zero-width or control characters).
var ErrUnsupportedGlyphWidth = errors.New("unsupported glyph width")

// Activation is the lifecycle state of a character.
type Activation uint8

const (
	Pending Activation = iota // created but not yet admitted by the scheduler
	Active                    // animating
	Settled                   // motion settled and gradient exhausted
)

// Binding selects how color progression is driven. The policy is a per-effect
// configuration choice, not a framework rule.
type Binding uint8

const (
	// BindTicks advances the gradient cursor once per tick.
	BindTicks Binding = iota
	// BindMotion advances the gradient cursor only on ticks where the
	// character's position progressed along its path.
	BindMotion
)

// Frame is one step of an optional glyph override sequence, shown for
// Duration ticks before the next frame. When the sequence is exhausted the
// character reverts to its source glyph.
type Frame struct {
	Glyph    rune
	Duration int
}

// Config describes a character at effect setup time.
type Config struct {
	Glyph    rune
	Home     geometry.Coord
	Path     *motion.Path
	Gradient *graphics.Gradient
	Binding  Binding

	// Speed is in cells/tick, Accel in speed change/tick.
	Speed float64
	Accel float64

	// Spawn is the position the character appears at on admission.
	// Nil means the home position.
	Spawn *geometry.Coord

	// Frames is an optional glyph override sequence.
	Frames []Frame
}

// State is the animation state of one input character. Created once at effect
// setup and never destroyed; settled characters remain renderable at their
// final state.
type State struct {
	glyph    rune
	width    int
	home     geometry.Coord
	spawn    geometry.Coord
	mover    *motion.Mover
	gradient *graphics.Gradient
	binding  Binding

	frames      []Frame
	framePos    int
	framePlayed int

	activation Activation
	color      graphics.RGB
}

// New validates the configuration and creates a pending character.
func New(cfg Config) (*State, error) {
	w := runewidth.RuneWidth(cfg.Glyph)
	if w < 1 || w > 2 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGlyphWidth, cfg.Glyph)
	}
	if cfg.Path == nil {
		return nil, motion.ErrInvalidPath
	}
	if cfg.Gradient == nil {
		return nil, graphics.ErrInvalidGradient
	}

	spawn := cfg.Home
	if cfg.Spawn != nil {
		spawn = *cfg.Spawn
	}

	return &State{
		glyph:    cfg.Glyph,
		width:    w,
		home:     cfg.Home,
		spawn:    spawn,
		mover:    motion.NewMover(cfg.Path, cfg.Speed, cfg.Accel),
		gradient: cfg.Gradient,
		binding:  cfg.Binding,
		frames:   cfg.Frames,
	}, nil
}

// Glyph returns the source glyph.
func (s *State) Glyph() rune {
	return s.glyph
}

// Width returns the display width of the glyph in cells (1 or 2).
func (s *State) Width() int {
	return s.width
}

// Home returns the character's position in the undisturbed text layout.
func (s *State) Home() geometry.Coord {
	return s.home
}

// Mover returns the owned motion state.
func (s *State) Mover() *motion.Mover {
	return s.mover
}

// Activation returns the lifecycle state.
func (s *State) Activation() Activation {
	return s.activation
}

// Settled reports whether the character has finished animating.
func (s *State) Settled() bool {
	return s.activation == Settled
}

// Activate admits a pending character: it appears at its spawn position with
// the first gradient color. No-op once active.
func (s *State) Activate() {
	if s.activation != Pending {
		return
	}
	s.activation = Active
	s.mover.Start(s.spawn)
	s.color = s.gradient.Next()
	s.maybeSettle()
}

// Tick advances motion, the glyph frame sequence, and color for one frame.
// Settled characters ignore ticks.
func (s *State) Tick() {
	if s.activation != Active {
		return
	}

	s.mover.Tick()
	s.tickFrames()

	switch {
	case s.mover.Settled():
		// Drain the remaining gradient regardless of binding so that a
		// finite gradient always exhausts and the character can settle.
		s.color = s.gradient.Next()
	case s.binding == BindTicks:
		s.color = s.gradient.Next()
	case s.binding == BindMotion && s.mover.Moved():
		s.color = s.gradient.Next()
	}

	s.maybeSettle()
}

func (s *State) tickFrames() {
	if s.framePos >= len(s.frames) {
		return
	}
	s.framePlayed++
	if s.framePlayed >= s.frames[s.framePos].Duration {
		s.framePos++
		s.framePlayed = 0
	}
}

func (s *State) framesDone() bool {
	return s.framePos >= len(s.frames)
}

func (s *State) maybeSettle() {
	if s.mover.Settled() && s.gradient.Exhausted() && s.framesDone() {
		s.activation = Settled
		s.color = s.gradient.Last()
	}
}

// FinishNow forces the character to its terminal state: parked at home with
// the final gradient color and source glyph. Used when a cancelled animation
// flushes its last frame.
func (s *State) FinishNow() {
	s.activation = Settled
	s.framePos = len(s.frames)
	s.mover.ForceSettle(s.home)
	s.color = s.gradient.Last()
}

// RenderCell returns the current glyph, color, and position. Pure read:
// calling it repeatedly without an intervening Tick returns identical
// results.
func (s *State) RenderCell() (rune, graphics.RGB, geometry.Coord) {
	glyph := s.glyph
	if s.framePos < len(s.frames) {
		glyph = s.frames[s.framePos].Glyph
	}
	return glyph, s.color, s.mover.Position()
}
