package graphics

// Palette is the fixed xterm-256 color table: 16 system colors, the 6x6x6
// color cube (16-231), and the 24-step grayscale ramp (232-255).
var Palette [256]RGB

// Color cube values for the 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// systemColors are the 16 standard xterm colors (indices 0-15).
var systemColors = [16]RGB{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func init() {
	copy(Palette[:16], systemColors[:])
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette[16+36*r+6*g+b] = RGB{cubeValues[r], cubeValues[g], cubeValues[b]}
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		Palette[232+i] = RGB{v, v, v}
	}
}

// QuantizeRGB returns the palette index nearest to c by Euclidean RGB
// distance. Quantization happens at gradient build time, not per frame, so a
// linear scan is sufficient.
func QuantizeRGB(c RGB) uint8 {
	target := c.Colorful()
	best := 0
	bestDist := target.DistanceRgb(Palette[0].Colorful())
	for i := 1; i < 256; i++ {
		d := target.DistanceRgb(Palette[i].Colorful())
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}
