// Package render rasterizes the circle and wave views onto braille
// character cells for the terminal.
package render

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Ink is the role of a dot. When two inks share a cell the higher one
// colors it.
type Ink uint8

const (
	InkNone Ink = iota
	InkAxis
	InkGuide
	InkCircle
	InkRadius
	InkFunction
	InkMarker
)

// Palette maps inks to terminal colors. Missing inks render unstyled.
type Palette map[Ink]color.Color

const brailleBase = 0x2800

// dot bits indexed by [y%4][x%2]
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of braille cells, each holding 2x4 dots.
type Canvas struct {
	cols, rows int
	dots       []uint8
	inks       []Ink
}

// NewCanvas allocates a canvas of cols x rows character cells.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	return &Canvas{
		cols: cols,
		rows: rows,
		dots: make([]uint8, cols*rows),
		inks: make([]Ink, cols*rows),
	}
}

// Width is the canvas width in dots.
func (c *Canvas) Width() int { return c.cols * 2 }

// Height is the canvas height in dots.
func (c *Canvas) Height() int { return c.rows * 4 }

// Clear removes every dot.
func (c *Canvas) Clear() {
	clear(c.dots)
	clear(c.inks)
}

// Set turns on the dot at (x, y). Out of range dots are ignored.
func (c *Canvas) Set(x, y int, ink Ink) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	i := (y/4)*c.cols + x/2
	c.dots[i] |= brailleBits[y%4][x%2]
	if ink > c.inks[i] {
		c.inks[i] = ink
	}
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}
	return c.dots[(y/4)*c.cols+x/2]&brailleBits[y%4][x%2] != 0
}

// DrawLine draws a straight line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ink Ink) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Dot draws a filled 3x3 block centered on (x, y).
func (c *Canvas) Dot(x, y int, ink Ink) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c.Set(x+dx, y+dy, ink)
		}
	}
}

// String renders the canvas without color. Empty cells are spaces.
func (c *Canvas) String() string {
	return c.render(nil)
}

// Render renders the canvas with runs of equal ink styled from p.
func (c *Canvas) Render(p Palette) string {
	return c.render(p)
}

func (c *Canvas) render(p Palette) string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		runInk := InkNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if col, ok := p[runInk]; ok && runInk != InkNone {
				b.WriteString(lipgloss.NewStyle().Foreground(col).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			ink := c.inks[i]
			if ink != runInk {
				flush()
				runInk = ink
			}
			if c.dots[i] == 0 {
				run.WriteByte(' ')
			} else {
				run.WriteRune(rune(brailleBase + int(c.dots[i])))
			}
		}
		flush()
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
