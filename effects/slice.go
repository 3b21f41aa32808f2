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

// VerticalSlice cuts the text in half vertically and slides the halves into
// place from opposite edges, pairing each row's left half with the opposite
// row's right half. Rows are admitted one per frame.
func VerticalSlice(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error) {
	stops := stopsOrDefault(opts, []graphics.Stop{
		{Color: mustHex("8A008A"), Steps: 12},
		{Color: mustHex("00D1FF"), Steps: 12},
		{Color: mustHex("FFFFFF"), Steps: 1},
	})
	speed := speedOrDefault(opts, 0.5)
	mid := txt.Width / 2

	chars := make([]*character.State, 0, len(txt.Glyphs))
	group := make(map[*character.State]int, len(txt.Glyphs))

	for _, g := range txt.Glyphs {
		left := g.Coord.Col <= mid

		// Left halves drop in from the top edge, right halves rise from the
		// bottom; the paired rows meet at their final row.
		spawn := geometry.Coord{Col: g.Coord.Col, Row: 0}
		groupRow := g.Coord.Row
		if !left {
			spawn.Row = txt.Height - 1
			groupRow = txt.Height - 1 - g.Coord.Row
		}

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
			Ease:   ease.InOutExpo,
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
		group[ch] = groupRow
	}

	return &Definition{
		Characters: chars,
		Admission:  admitGroups(group, 1),
	}, nil
}
