// Package canvas holds the rectangular grid of rendered cells for the
// current and previous frame, and serializes the difference between them
// into minimal ANSI output.
package canvas

import (
	"errors"
	"fmt"

	"github.com/tjwei/terminaltexteffects/geometry"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/terminal"
)

// ErrOutOfBounds reports a position outside the canvas where an in-bounds
// position is required. Surfaced at effect setup; transient off-canvas
// positions during an animation are simply not drawn.
var ErrOutOfBounds = errors.New("position out of canvas bounds")

// cont marks the right half of a wide glyph. Never emitted directly; the
// owning cell's glyph covers both columns.
const cont rune = -1

// Cell is the rendered content of one terminal position. A zero Rune is an
// empty cell and renders as a space.
type Cell struct {
	Rune  rune
	Width uint8
	Fg    graphics.RGB
}

// Canvas is a 2D grid sized to the bounding box of the input text. Plot
// accumulates character contributions for the current tick; DiffAndEmit
// compares against the previous frame's snapshot and writes only the changed
// cells.
type Canvas struct {
	width  int
	height int
	cells  []Cell
	prev   []Cell

	mode terminal.ColorMode
	buf  []byte

	lastFg      graphics.RGB
	lastFgValid bool
	curX        int
	curY        int
	curValid    bool

	quantCache map[graphics.RGB]uint8
}

// New creates a canvas of the given dimensions for the given color mode.
func New(width, height int, mode terminal.ColorMode) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	return &Canvas{
		width:      width,
		height:     height,
		cells:      make([]Cell, width*height),
		prev:       make([]Cell, width*height),
		mode:       mode,
		quantCache: make(map[graphics.RGB]uint8),
	}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Contains reports whether the cell lies inside the canvas.
func (c *Canvas) Contains(p geometry.Coord) bool {
	return p.Col >= 0 && p.Col < c.width && p.Row >= 0 && p.Row < c.height
}

// CheckBounds verifies that a glyph of the given width fits inside the
// canvas at p. Returns ErrOutOfBounds otherwise.
func (c *Canvas) CheckBounds(p geometry.Coord, width int) error {
	if !c.Contains(p) || p.Col+width > c.width {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.Col, p.Row)
	}
	return nil
}

// BeginFrame clears the writable grid for a new tick.
func (c *Canvas) BeginFrame() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

// Plot writes one glyph into the current frame. The last writer for a given
// position within a frame wins. Positions outside the canvas, including a
// wide glyph that would straddle the right edge, are skipped: characters may
// travel through off-screen space.
func (c *Canvas) Plot(p geometry.Coord, glyph rune, fg graphics.RGB, width int) {
	if width < 1 {
		width = 1
	}
	if !c.Contains(p) || p.Col+width > c.width {
		return
	}
	idx := p.Row*c.width + p.Col
	c.cells[idx] = Cell{Rune: glyph, Width: uint8(width), Fg: fg}
	if width == 2 {
		c.cells[idx+1] = Cell{Rune: cont, Fg: fg}
	}
}

// cellEqual compares two cells. Foreground is irrelevant for empty cells and
// continuation halves.
func cellEqual(a, b Cell) bool {
	if a.Rune != b.Rune {
		return false
	}
	if a.Rune == 0 || a.Rune == cont {
		return true
	}
	return a.Fg == b.Fg
}
