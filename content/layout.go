// Package content measures UTF-8 input text and lays it out as a mapping
// from (row, column) to glyph, the input contract the animation framework
// consumes. Widths follow East-Asian width rules.
package content

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/tjwei/terminaltexteffects/character"
	"github.com/tjwei/terminaltexteffects/geometry"
)

// TabWidth is the number of columns a tab expands to.
const TabWidth = 4

// Glyph is one placed code point with its display width in cells.
type Glyph struct {
	Rune  rune
	Coord geometry.Coord
	Width int
}

// Text is pre-split, pre-measured input: the placed glyphs and the bounding
// box they occupy. Whitespace defines layout but is not placed.
type Text struct {
	Glyphs []Glyph
	Width  int
	Height int
}

// Layout splits text into lines and grapheme clusters, measures each
// cluster, and places it on the grid. Lines are clipped to maxWidth
// (0 = unlimited). Fails with character.ErrUnsupportedGlyphWidth when a
// cluster's display width cannot be determined.
func Layout(text string, maxWidth int) (*Text, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	lines := strings.Split(text, "\n")

	t := &Text{Height: len(lines)}

	for row, line := range lines {
		col := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			cluster := gr.Str()

			if cluster == "\t" {
				col += TabWidth - col%TabWidth
				continue
			}
			if cluster == " " {
				col++
				continue
			}

			w := runewidth.StringWidth(cluster)
			if w < 1 || w > 2 {
				return nil, fmt.Errorf("%w: %q at row %d col %d",
					character.ErrUnsupportedGlyphWidth, cluster, row, col)
			}
			if maxWidth > 0 && col+w > maxWidth {
				// Clip the remainder of an over-long line.
				break
			}

			t.Glyphs = append(t.Glyphs, Glyph{
				Rune:  gr.Runes()[0],
				Coord: geometry.Coord{Col: col, Row: row},
				Width: w,
			})
			col += w
		}
		if col > t.Width {
			t.Width = col
		}
	}

	if t.Width == 0 {
		t.Width = 1
	}
	if t.Height == 0 {
		t.Height = 1
	}
	return t, nil
}

// Center returns the cell at the middle of the bounding box.
func (t *Text) Center() geometry.Coord {
	return geometry.Coord{Col: t.Width / 2, Row: t.Height / 2}
}
