// Package graphics provides colors, the xterm-256 palette, and the gradient
// engine that interpolates between ordered color stops.
package graphics

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Equal returns true if colors match.
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Colorful converts to a go-colorful color for distance calculations.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseColor accepts either a 6-hex-digit RGB triplet ("8A008A") or an
// xterm-256 palette index ("0"-"255"). Index colors are resolved to RGB
// through the fixed palette table.
func ParseColor(s string) (RGB, error) {
	if len(s) == 6 {
		if c, err := colorful.Hex("#" + s); err == nil {
			r, g, b := c.RGB255()
			return RGB{r, g, b}, nil
		}
	}
	if idx, err := strconv.Atoi(s); err == nil && idx >= 0 && idx <= 255 {
		return Palette[idx], nil
	}
	return RGB{}, fmt.Errorf("invalid color %q: want 6 hex digits or palette index 0-255", s)
}
