// Package effects is the catalog of concrete effects. Each effect is pure
// configuration consumed by the framework: per character it supplies an
// initial path, a gradient, speed and acceleration, an admission policy, and
// a color-to-motion binding. New effects never require framework changes.
package effects

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/tjwei/terminaltexteffects/character"
	"github.com/tjwei/terminaltexteffects/content"
	"github.com/tjwei/terminaltexteffects/engine"
	"github.com/tjwei/terminaltexteffects/graphics"
)

// Options are the caller-tunable knobs shared by every effect. Zero values
// select per-effect defaults.
type Options struct {
	// Speed is the movement speed in cells/tick.
	Speed float64

	// Stops overrides the effect's final color gradient.
	Stops []graphics.Stop

	// Quantize snaps all gradient colors to the nearest xterm-256 palette
	// entry before interpolation output.
	Quantize bool
}

// Definition is a fully configured effect: the character states and the
// admission policy that staggers their activation.
type Definition struct {
	Characters []*character.State
	Admission  engine.Admission
}

// Builder constructs an effect definition for laid-out text. Randomized
// policies draw from the provided source so a fixed seed reproduces the
// exact frame sequence.
type Builder func(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error)

// Catalog maps effect names to builders.
var Catalog = map[string]Builder{
	"decrypt":       Decrypt,
	"expand":        Expand,
	"pour":          Pour,
	"rings":         Rings,
	"scattered":     Scattered,
	"slide":         Slide,
	"verticalslice": VerticalSlice,
}

// Names returns the catalog's effect names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder for name.
func Lookup(name string) (Builder, error) {
	b, ok := Catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect %q (have: %v)", name, Names())
	}
	return b, nil
}

// rowColor resolves a glyph's final color from gradient stops applied
// top-to-bottom across the text's rows.
func rowColor(stops []graphics.Stop, row, height int) (graphics.RGB, error) {
	g, err := graphics.NewGradient(stops...)
	if err != nil {
		return graphics.RGB{}, err
	}
	if height <= 1 || g.Len() <= 1 {
		return g.Last(), nil
	}
	idx := row * (g.Len() - 1) / (height - 1)
	return g.At(idx), nil
}

// charGradient builds the per-character animated gradient: start color
// blending into the character's final color over the given steps, ending
// exactly on the final color.
func charGradient(start, final graphics.RGB, steps int, quantize bool) (*graphics.Gradient, error) {
	g, err := graphics.NewGradient(
		graphics.Stop{Color: start, Steps: steps},
		graphics.Stop{Color: final, Steps: 1},
	)
	if err != nil {
		return nil, err
	}
	g.Quantize = quantize
	return g, nil
}

// stopsOrDefault returns the caller's gradient stops, or the effect default.
func stopsOrDefault(opts Options, def []graphics.Stop) []graphics.Stop {
	if len(opts.Stops) > 0 {
		return opts.Stops
	}
	return def
}

// speedOrDefault returns the caller's speed, or the effect default.
func speedOrDefault(opts Options, def float64) float64 {
	if opts.Speed > 0 {
		return opts.Speed
	}
	return def
}

// mustHex converts a known-good hex literal. Catalog defaults only.
func mustHex(s string) graphics.RGB {
	c, err := graphics.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// admitBatch admits up to n pending characters per tick, in layout order.
func admitBatch(n int) engine.Admission {
	return func(tick int, pending []*character.State) []*character.State {
		if n >= len(pending) {
			return pending
		}
		return pending[:n]
	}
}

// admitGroups admits characters whose group index has come due, one group
// every interval ticks.
func admitGroups(group map[*character.State]int, interval int) engine.Admission {
	if interval < 1 {
		interval = 1
	}
	return func(tick int, pending []*character.State) []*character.State {
		due := tick / interval
		var admitted []*character.State
		for _, ch := range pending {
			if group[ch] <= due {
				admitted = append(admitted, ch)
			}
		}
		return admitted
	}
}
