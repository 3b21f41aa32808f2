package effects

import (
	"math/rand"

	"github.com/tjwei/terminaltexteffects/character"
	"github.com/tjwei/terminaltexteffects/content"
	"github.com/tjwei/terminaltexteffects/geometry"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/motion"
)

// Slide slides rows into place from alternating sides, staggered a few
// frames apart. Characters accelerate as they travel.
func Slide(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error) {
	stops := stopsOrDefault(opts, []graphics.Stop{
		{Color: mustHex("833ab4"), Steps: 12},
		{Color: mustHex("fd1d1d"), Steps: 12},
		{Color: mustHex("fcb045"), Steps: 1},
	})
	speed := speedOrDefault(opts, 0.6)

	chars := make([]*character.State, 0, len(txt.Glyphs))
	group := make(map[*character.State]int, len(txt.Glyphs))

	for _, g := range txt.Glyphs {
		// Even rows enter from the left, odd rows from the right. Spawn
		// points sit outside the canvas; travel through off-screen space is
		// clipped, not an error.
		spawn := geometry.Coord{Col: g.Coord.Col - txt.Width, Row: g.Coord.Row}
		if g.Coord.Row%2 == 1 {
			spawn.Col = g.Coord.Col + txt.Width
		}

		final, err := rowColor(stops, g.Coord.Row, txt.Height)
		if err != nil {
			return nil, err
		}
		grad, err := charGradient(graphics.RGBWhite, final, 10, opts.Quantize)
		if err != nil {
			return nil, err
		}
		path, err := motion.NewPath(false, motion.Waypoint{Target: g.Coord})
		if err != nil {
			return nil, err
		}

		ch, err := character.New(character.Config{
			Glyph:    g.Rune,
			Home:     g.Coord,
			Path:     path,
			Gradient: grad,
			Binding:  character.BindMotion,
			Speed:    speed,
			Accel:    0.1,
			Spawn:    &spawn,
		})
		if err != nil {
			return nil, err
		}
		chars = append(chars, ch)
		group[ch] = g.Coord.Row
	}

	return &Definition{
		Characters: chars,
		Admission:  admitGroups(group, 3),
	}, nil
}
