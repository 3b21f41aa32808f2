package effects

import (
	"math/rand"

	"github.com/tjwei/terminaltexteffects/character"
	"github.com/tjwei/terminaltexteffects/content"
	"github.com/tjwei/terminaltexteffects/engine"
	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/motion"
)

// typingSpeed is the number of characters typed per admission burst.
const typingSpeed = 2

// Symbol pools for the ciphertext phase.
var cipherSymbols = buildCipherSymbols()

func buildCipherSymbols() []rune {
	var symbols []rune
	for n := 33; n < 127; n++ { // keyboard
		symbols = append(symbols, rune(n))
	}
	for n := 0x2588; n < 0x25A0; n++ { // block elements
		symbols = append(symbols, rune(n))
	}
	for n := 0x2500; n < 0x2580; n++ { // box drawing
		symbols = append(symbols, rune(n))
	}
	return symbols
}

// Decrypt types each character in as a block cursor and churns it through
// random ciphertext symbols before resolving it to plaintext. Characters
// never move; their paths settle in place.
func Decrypt(txt *content.Text, rng *rand.Rand, opts Options) (*Definition, error) {
	stops := stopsOrDefault(opts, []graphics.Stop{
		{Color: mustHex("eda000"), Steps: 1},
	})
	cipherColor := mustHex("00cb00")

	chars := make([]*character.State, 0, len(txt.Glyphs))
	for _, g := range txt.Glyphs {
		frames := make([]character.Frame, 0, 32)
		for _, block := range "▉▓▒░" {
			frames = append(frames, character.Frame{Glyph: block, Duration: 2})
		}
		// Fast churn, then a few slower flips.
		for i := 0; i < 20; i++ {
			frames = append(frames, character.Frame{
				Glyph:    cipherSymbols[rng.Intn(len(cipherSymbols))],
				Duration: 2,
			})
		}
		for i, n := 0, 1+rng.Intn(8); i < n; i++ {
			duration := 3 + rng.Intn(5)
			if rng.Intn(10) == 0 {
				duration = 25 + rng.Intn(15)
			}
			frames = append(frames, character.Frame{
				Glyph:    cipherSymbols[rng.Intn(len(cipherSymbols))],
				Duration: duration,
			})
		}

		cipherTicks := 0
		for _, f := range frames {
			cipherTicks += f.Duration
		}

		final, err := rowColor(stops, g.Coord.Row, txt.Height)
		if err != nil {
			return nil, err
		}
		// Constant ciphertext green while the frames churn, then a short
		// white flash blending into the final color.
		grad, err := graphics.NewGradient(
			graphics.Stop{Color: cipherColor, Steps: cipherTicks},
			graphics.Stop{Color: cipherColor, Steps: 4},
			graphics.Stop{Color: graphics.RGBWhite, Steps: 8},
			graphics.Stop{Color: final, Steps: 1},
		)
		if err != nil {
			return nil, err
		}
		grad.Quantize = opts.Quantize

		// Single waypoint at home with no movement: settles on first tick.
		path, err := motion.NewPath(false, motion.Waypoint{Target: g.Coord})
		if err != nil {
			return nil, err
		}

		ch, err := character.New(character.Config{
			Glyph:    g.Rune,
			Home:     g.Coord,
			Path:     path,
			Gradient: grad,
			Binding:  character.BindTicks,
			Frames:   frames,
		})
		if err != nil {
			return nil, err
		}
		chars = append(chars, ch)
	}

	return &Definition{
		Characters: chars,
		Admission:  typingAdmission(rng),
	}, nil
}

// typingAdmission admits small bursts of characters with a 75% chance per
// tick, imitating uneven keystrokes.
func typingAdmission(rng *rand.Rand) engine.Admission {
	return func(tick int, pending []*character.State) []*character.State {
		if rng.Intn(100) >= 75 {
			return nil
		}
		n := typingSpeed
		if n > len(pending) {
			n = len(pending)
		}
		return pending[:n]
	}
}
