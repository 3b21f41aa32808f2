package graphics

import (
	"errors"
	"testing"
)

func TestNewGradientValidation(t *testing.T) {
	if _, err := NewGradient(); !errors.Is(err, ErrInvalidGradient) {
		t.Errorf("Empty stop list: got %v, want ErrInvalidGradient", err)
	}
	if _, err := NewGradient(Stop{Color: RGBWhite, Steps: 0}, Stop{Color: RGBBlack, Steps: 1}); !errors.Is(err, ErrInvalidGradient) {
		t.Errorf("Non-terminal zero step count: got %v, want ErrInvalidGradient", err)
	}
	if _, err := NewGradient(Stop{Color: RGBWhite, Steps: 1}, Stop{Color: RGBBlack, Steps: -1}); !errors.Is(err, ErrInvalidGradient) {
		t.Errorf("Negative step count: got %v, want ErrInvalidGradient", err)
	}
	// Terminal stop may have zero steps
	if _, err := NewGradient(Stop{Color: RGBWhite, Steps: 3}, Stop{Color: RGBBlack, Steps: 0}); err != nil {
		t.Errorf("Terminal zero step count: got %v, want nil", err)
	}
}

func TestGradientVisitsStopBoundaries(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{100, 0, 0}
	c := RGB{200, 0, 0}
	g, err := NewGradient(Stop{a, 2}, Stop{b, 2}, Stop{c, 1})
	if err != nil {
		t.Fatalf("NewGradient failed: %v", err)
	}
	if g.Len() != 5 {
		t.Fatalf("Len = %d, want 5", g.Len())
	}

	want := []RGB{
		{0, 0, 0},
		{50, 0, 0},
		{100, 0, 0},
		{150, 0, 0},
		{200, 0, 0},
	}
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("step %d = %v, want %v", i, got, w)
		}
	}

	// Safe to over-poll: the sequence saturates at the final color
	for i := 0; i < 3; i++ {
		if got := g.Next(); got != c {
			t.Errorf("Exhausted Next() = %v, want %v", got, c)
		}
	}
	if !g.Exhausted() {
		t.Error("Expected gradient exhausted")
	}

	g.Reset()
	if g.Exhausted() {
		t.Error("Expected reset gradient not exhausted")
	}
	if got := g.Next(); got != a {
		t.Errorf("After Reset, Next() = %v, want %v", got, a)
	}
}

func TestGradientTwoSingleSteps(t *testing.T) {
	red := RGB{255, 0, 0}
	blue := RGB{0, 0, 255}
	g, err := NewGradient(Stop{red, 1}, Stop{blue, 1})
	if err != nil {
		t.Fatalf("NewGradient failed: %v", err)
	}
	if got := g.Next(); got != red {
		t.Errorf("step 0 = %v, want red", got)
	}
	if got := g.Next(); got != blue {
		t.Errorf("step 1 = %v, want blue", got)
	}
	if got := g.Next(); got != blue {
		t.Errorf("saturated = %v, want blue", got)
	}
}

func TestGradientChannelRange(t *testing.T) {
	g, err := NewGradient(
		Stop{RGB{255, 0, 128}, 7},
		Stop{RGB{0, 255, 3}, 11},
		Stop{RGB{90, 200, 250}, 1},
	)
	if err != nil {
		t.Fatalf("NewGradient failed: %v", err)
	}
	for i := 0; i < g.Len(); i++ {
		got := g.Next()
		// uint8 channels cannot leave [0,255]; verify interpolation stays
		// monotone within segment endpoints instead of wrapping
		if i == 0 && got != (RGB{255, 0, 128}) {
			t.Errorf("step 0 = %v, want first stop exactly", got)
		}
	}
}

func TestGradientQuantize(t *testing.T) {
	g, err := NewGradient(Stop{RGB{254, 1, 1}, 1}, Stop{RGB{1, 254, 1}, 1})
	if err != nil {
		t.Fatalf("NewGradient failed: %v", err)
	}
	g.Quantize = true
	first := g.Next()
	if first != Palette[QuantizeRGB(RGB{254, 1, 1})] {
		t.Errorf("Quantized first = %v, want palette entry", first)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"8A008A", RGB{0x8A, 0x00, 0x8A}, true},
		{"ffffff", RGB{255, 255, 255}, true},
		{"9", Palette[9], true},
		{"255", Palette[255], true},
		{"256", RGB{}, false},
		{"zzzzzz", RGB{}, false},
		{"", RGB{}, false},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", c.in)
		}
	}
}

func TestQuantizeRGB(t *testing.T) {
	if got := QuantizeRGB(RGB{0, 0, 0}); got != 0 {
		t.Errorf("QuantizeRGB(black) = %d, want 0", got)
	}
	if got := QuantizeRGB(RGB{255, 0, 0}); got != 9 {
		t.Errorf("QuantizeRGB(red) = %d, want 9 (bright red)", got)
	}
	if got := QuantizeRGB(RGB{7, 7, 7}); got != 232 {
		t.Errorf("QuantizeRGB(near-black gray) = %d, want 232", got)
	}
}

func TestPaletteTable(t *testing.T) {
	if Palette[196] != (RGB{255, 0, 0}) {
		t.Errorf("Palette[196] = %v, want (255,0,0)", Palette[196])
	}
	if Palette[231] != (RGB{255, 255, 255}) {
		t.Errorf("Palette[231] = %v, want white", Palette[231])
	}
	if Palette[232] != (RGB{8, 8, 8}) {
		t.Errorf("Palette[232] = %v, want (8,8,8)", Palette[232])
	}
	if Palette[255] != (RGB{238, 238, 238}) {
		t.Errorf("Palette[255] = %v, want (238,238,238)", Palette[255])
	}
}
