package graphics

import (
	"errors"
	"math"
)

// ErrInvalidGradient reports a malformed stop list at construction time.
var ErrInvalidGradient = errors.New("invalid gradient")

// Stop is one gradient anchor: a color and the number of interpolation steps
// from it toward the next stop. The final stop's count extends the sequence
// by dwelling on its color.
type Stop struct {
	Color RGB
	Steps int
}

// Gradient produces a finite, restartable sequence of colors by channel-wise
// linear interpolation between consecutive stops in RGB space. The sequence
// length is the sum of all step counts; polling past the end keeps returning
// the final color.
type Gradient struct {
	stops  []Stop
	total  int
	cursor int

	// Quantize snaps every produced color to the nearest xterm-256 palette
	// entry. Set before first use.
	Quantize bool
}

// NewGradient validates the stop list and builds a gradient. Fails with
// ErrInvalidGradient if the list is empty or any non-terminal step count is
// below 1.
func NewGradient(stops ...Stop) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, ErrInvalidGradient
	}
	total := 0
	for i, s := range stops {
		if s.Steps < 1 && i != len(stops)-1 {
			return nil, ErrInvalidGradient
		}
		if s.Steps < 0 {
			return nil, ErrInvalidGradient
		}
		total += s.Steps
	}
	g := &Gradient{stops: append([]Stop(nil), stops...), total: total}
	return g, nil
}

// Len returns the total number of steps in the sequence.
func (g *Gradient) Len() int {
	return g.total
}

// Exhausted returns true once the cursor has passed the final step.
func (g *Gradient) Exhausted() bool {
	return g.cursor >= g.total
}

// Reset rewinds the cursor to step 0 for looping effects.
func (g *Gradient) Reset() {
	g.cursor = 0
}

// Last returns the final color of the sequence.
func (g *Gradient) Last() RGB {
	return g.quantized(g.stops[len(g.stops)-1].Color)
}

// Next advances the cursor by one step and returns the interpolated color for
// that step. Once exhausted it saturates, returning the final color.
func (g *Gradient) Next() RGB {
	if g.cursor >= g.total {
		return g.Last()
	}
	c := g.At(g.cursor)
	g.cursor++
	return c
}

// At returns the color for step i without moving the cursor. Indices at or
// past the end resolve to the final color.
func (g *Gradient) At(i int) RGB {
	if i < 0 {
		i = 0
	}
	if i >= g.total {
		return g.Last()
	}
	for j, s := range g.stops {
		if i >= s.Steps {
			i -= s.Steps
			continue
		}
		if j == len(g.stops)-1 {
			return g.quantized(s.Color)
		}
		return g.quantized(lerpChannel(s.Color, g.stops[j+1].Color, i, s.Steps))
	}
	return g.Last()
}

func (g *Gradient) quantized(c RGB) RGB {
	if !g.Quantize {
		return c
	}
	return Palette[QuantizeRGB(c)]
}

// lerpChannel blends a toward b at step t of steps, rounding each channel
// independently.
func lerpChannel(a, b RGB, t, steps int) RGB {
	blend := func(x, y uint8) uint8 {
		v := (float64(x)*float64(steps-t) + float64(y)*float64(t)) / float64(steps)
		return uint8(math.Round(v))
	}
	return RGB{
		R: blend(a.R, b.R),
		G: blend(a.G, b.G),
		B: blend(a.B, b.B),
	}
}
