package effects

import (
	"math/rand"

	"github.com/tanema/gween/ease"

	"github.com/tjwei/terminaltexteffects/character"
	"github.com/tjwei/terminaltexteffects/content"
	"github.com/tjwei/terminaltexteffects/geometry"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/motion"
)

// Scattered moves the characters into place from random starting locations
// inside the canvas.
func Scattered(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error) {
	stops := stopsOrDefault(opts, []graphics.Stop{
		{Color: mustHex("ff9048"), Steps: 12},
		{Color: mustHex("ab9dff"), Steps: 12},
		{Color: mustHex("bdffea"), Steps: 1},
	})
	speed := speedOrDefault(opts, 0.5)

	chars := make([]*character.State, 0, len(txt.Glyphs))
	for _, g := range txt.Glyphs {
		spawn := geometry.Coord{Col: 0, Row: 0}
		if txt.Width > 1 && txt.Height > 1 {
			spawn = geometry.Coord{
				Col: rng.Intn(txt.Width - 1),
				Row: rng.Intn(txt.Height),
			}
		}

		final, err := rowColor(stops, g.Coord.Row, txt.Height)
		if err != nil {
			return nil, err
		}
		grad, err := charGradient(graphics.RGBWhite, final, 12, opts.Quantize)
		if err != nil {
			return nil, err
		}
		path, err := motion.NewPath(false, motion.Waypoint{
			Target: g.Coord,
			Ease:   ease.InOutBack,
		})
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
			Spawn:    &spawn,
		})
		if err != nil {
			return nil, err
		}
		chars = append(chars, ch)
	}

	return &Definition{Characters: chars}, nil
}
