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

// ringGap is the distance between rings in cells.
const ringGap = 3.0

// Rings disperses the characters onto concentric rings around the text
// center, spins them a few positions around their ring while holding between
// hops, then sends everything home.
func Rings(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error) {
	stops := stopsOrDefault(opts, []graphics.Stop{
		{Color: mustHex("ab48ff"), Steps: 12},
		{Color: mustHex("e7b2b2"), Steps: 12},
		{Color: mustHex("fffebd"), Steps: 1},
	})
	speed := speedOrDefault(opts, 0.75)
	center := txt.Center()

	ringCount := txt.Height/2 + 1
	chars := make([]*character.State, 0, len(txt.Glyphs))

	for i, g := range txt.Glyphs {
		ring := i % ringCount
		radius := ringGap * float64(ring+1)
		// Points on the ring, one per character assigned to it; spreading by
		// index keeps neighbors apart.
		points := geometry.CirclePoints(center, radius, 12+4*ring)
		start := (i / ringCount) % len(points)

		waypoints := make([]motion.Waypoint, 0, 5)
		// Out to the ring, then a quarter spin with short holds, then home.
		spinSpeed := 0.25 + rng.Float64()*0.75
		waypoints = append(waypoints, motion.Waypoint{
			Target: points[start],
			Hold:   8,
			Ease:   ease.OutQuad,
		})
		for hop := 1; hop <= 3; hop++ {
			waypoints = append(waypoints, motion.Waypoint{
				Target: points[(start+hop)%len(points)],
				Hold:   4,
				Speed:  spinSpeed,
			})
		}
		waypoints = append(waypoints, motion.Waypoint{
			Target: g.Coord,
			Ease:   ease.InOutQuad,
		})

		path, err := motion.NewPath(false, waypoints...)
		if err != nil {
			return nil, err
		}

		final, err := rowColor(stops, g.Coord.Row, txt.Height)
		if err != nil {
			return nil, err
		}
		ringColor := stops[ring%len(stops)].Color
		grad, err := graphics.NewGradient(
			graphics.Stop{Color: ringColor, Steps: 30},
			graphics.Stop{Color: final, Steps: 1},
		)
		if err != nil {
			return nil, err
		}
		grad.Quantize = opts.Quantize

		ch, err := character.New(character.Config{
			Glyph:    g.Rune,
			Home:     g.Coord,
			Path:     path,
			Gradient: grad,
			Binding:  character.BindMotion,
			Speed:    speed,
		})
		if err != nil {
			return nil, err
		}
		chars = append(chars, ch)
	}

	return &Definition{Characters: chars}, nil
}
