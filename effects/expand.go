package effects

import (
	"math/rand"

	"github.com/tanema/gween/ease"

	"github.com/tjwei/terminaltexteffects/character"
	"github.com/tjwei/terminaltexteffects/content"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/motion"
)

// Expand moves every character from the center of the canvas to its home
// position, brightening from white into the final gradient.
func Expand(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error) {
	stops := stopsOrDefault(opts, []graphics.Stop{
		{Color: mustHex("8A008A"), Steps: 12},
		{Color: mustHex("00D1FF"), Steps: 12},
		{Color: mustHex("FFFFFF"), Steps: 1},
	})
	speed := speedOrDefault(opts, 0.35)
	center := txt.Center()

	chars := make([]*character.State, 0, len(txt.Glyphs))
	for _, g := range txt.Glyphs {
		final, err := rowColor(stops, g.Coord.Row, txt.Height)
		if err != nil {
			return nil, err
		}
		grad, err := charGradient(graphics.RGBWhite, final, 10, opts.Quantize)
		if err != nil {
			return nil, err
		}
		path, err := motion.NewPath(false, motion.Waypoint{
			Target: g.Coord,
			Ease:   ease.InOutQuad,
		})
		if err != nil {
			return nil, err
		}

		spawn := center
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
