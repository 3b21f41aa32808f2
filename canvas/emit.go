package canvas

import (
	"io"
	"strconv"

	"github.com/tjwei/terminaltexteffects/graphics"
	"github.com/tjwei/terminaltexteffects/terminal"
)

// DiffAndEmit compares the current grid to the previous snapshot, writes a
// cursor move, color set, and glyph for every changed cell, and promotes the
// current grid to the new snapshot. Unchanged cells emit nothing; a frame
// with no changes writes zero bytes. Returns the number of bytes written.
func (c *Canvas) DiffAndEmit(w io.Writer) (int, error) {
	c.buf = c.buf[:0]

	for y := 0; y < c.height; y++ {
		rowStart := y * c.width
		x := 0

		for x < c.width {
			idx := rowStart + x
			cur := c.cells[idx]

			if cellEqual(cur, c.prev[idx]) {
				c.prev[idx] = cur
				x++
				continue
			}
			if cur.Rune == cont {
				// Covered by the owning wide glyph to its left.
				c.prev[idx] = cur
				x++
				continue
			}

			c.moveTo(x, y)

			// Emit the contiguous dirty run, coalescing color changes.
			for x < c.width {
				cidx := rowStart + x
				cc := c.cells[cidx]

				if cellEqual(cc, c.prev[cidx]) {
					break
				}
				if cc.Rune == cont {
					c.prev[cidx] = cc
					x++
					continue
				}

				c.writeCell(cc)
				c.prev[cidx] = cc
				adv := 1
				if cc.Width == 2 {
					adv = 2
				}
				c.curX += adv
				x++
			}
		}
	}

	if len(c.buf) == 0 {
		return 0, nil
	}

	// Leave default attributes behind so interleaved writers see a clean
	// state; the emitted reset invalidates the coalescing cache.
	c.buf = append(c.buf, "\x1b[0m"...)
	c.lastFgValid = false

	n, err := w.Write(c.buf)
	return n, err
}

// ForceRedraw invalidates the snapshot so the next DiffAndEmit repaints
// every occupied cell.
func (c *Canvas) ForceRedraw() {
	for i := range c.prev {
		c.prev[i] = Cell{Rune: '￿'}
	}
	c.lastFgValid = false
	c.curValid = false
}

// moveTo positions the terminal cursor, preferring a short forward move when
// staying on the same row.
func (c *Canvas) moveTo(x, y int) {
	if c.curValid && x == c.curX && y == c.curY {
		return
	}
	if c.curValid && y == c.curY && x > c.curX {
		// CUF: cursor forward, non-destructive
		c.buf = append(c.buf, "\x1b["...)
		c.buf = appendInt(c.buf, x-c.curX)
		c.buf = append(c.buf, 'C')
	} else {
		// CUP is 1-indexed
		c.buf = append(c.buf, "\x1b["...)
		c.buf = appendInt(c.buf, y+1)
		c.buf = append(c.buf, ';')
		c.buf = appendInt(c.buf, x+1)
		c.buf = append(c.buf, 'H')
	}
	c.curX = x
	c.curY = y
	c.curValid = true
}

// writeCell emits the SGR color (when it changed) and the glyph bytes.
func (c *Canvas) writeCell(cc Cell) {
	r := cc.Rune
	if r == 0 {
		r = ' '
	}

	// Spaces render identically in any foreground color.
	if r != ' ' && (!c.lastFgValid || !cc.Fg.Equal(c.lastFg)) {
		c.writeFg(cc.Fg)
		c.lastFg = cc.Fg
		c.lastFgValid = true
	}

	if r < 0x80 {
		c.buf = append(c.buf, byte(r))
	} else {
		c.buf = append(c.buf, string(r)...)
	}
}

// writeFg emits the foreground SGR sequence for the configured color mode.
func (c *Canvas) writeFg(fg graphics.RGB) {
	if c.mode == terminal.ColorModeTrueColor {
		c.buf = append(c.buf, "\x1b[38;2;"...)
		c.buf = appendInt(c.buf, int(fg.R))
		c.buf = append(c.buf, ';')
		c.buf = appendInt(c.buf, int(fg.G))
		c.buf = append(c.buf, ';')
		c.buf = appendInt(c.buf, int(fg.B))
		c.buf = append(c.buf, 'm')
		return
	}

	idx, ok := c.quantCache[fg]
	if !ok {
		idx = graphics.QuantizeRGB(fg)
		c.quantCache[fg] = idx
	}
	c.buf = append(c.buf, "\x1b[38;5;"...)
	c.buf = appendInt(c.buf, int(idx))
	c.buf = append(c.buf, 'm')
}

// appendInt writes a small non-negative integer without allocation.
func appendInt(buf []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(buf, byte(n)+'0')
	}
	if n < 100 {
		return append(buf, byte(n/10)+'0', byte(n%10)+'0')
	}
	return strconv.AppendInt(buf, int64(n), 10)
}
