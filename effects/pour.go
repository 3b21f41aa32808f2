package effects

import (
	"math/rand"

	"github.com/tjwei/terminaltexteffects/character"
	"github.com/tjwei/terminaltexteffects/content"
	"github.com/tjwei/terminaltexteffects/geometry"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/motion"
)

// Pour drops the characters in from above the canvas a few at a time, bottom
// row first, falling under acceleration up to the framework speed ceiling.
func Pour(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error) {
	stops := stopsOrDefault(opts, []graphics.Stop{
		{Color: mustHex("ffb102"), Steps: 12},
		{Color: mustHex("31a0d4"), Steps: 12},
		{Color: mustHex("ffffff"), Steps: 1},
	})
	speed := speedOrDefault(opts, 0.2)

	chars := make([]*character.State, 0, len(txt.Glyphs))
	order := make(map[*character.State]int, len(txt.Glyphs))

	for _, g := range txt.Glyphs {
		spawn := geometry.Coord{Col: g.Coord.Col, Row: -1}

		final, err := rowColor(stops, g.Coord.Row, txt.Height)
		if err != nil {
			return nil, err
		}
		grad, err := charGradient(graphics.RGBWhite, final, 8, opts.Quantize)
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
			Accel:    0.15,
			Spawn:    &spawn,
		})
		if err != nil {
			return nil, err
		}
		chars = append(chars, ch)
		// Bottom rows pour first so columns stack visually.
		order[ch] = (txt.Height - 1 - g.Coord.Row)
	}

	return &Definition{
		Characters: chars,
		Admission:  admitGroups(order, 2),
	}, nil
}
