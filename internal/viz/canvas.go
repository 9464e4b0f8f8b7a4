package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille pixel grid. Each cell remembers the last series
// (pen) drawn into it so the phase plot can colour trajectories.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Owner         [][]int
	pen           int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Owner:  make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Owner[i] = make([]int, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
			c.Owner[i][j] = -1
		}
	}
	return c
}

// Pen selects the series index recorded by subsequent Set calls.
func (c *Canvas) Pen(series int) { c.pen = series }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.Owner[row][col] = c.pen
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Lines renders each row, styling cells by owning series. Cells with no
// owner or an owner outside styles are left plain.
func (c *Canvas) Lines(styles []lipgloss.Style) []string {
	lines := make([]string, len(c.Grid))
	for i, row := range c.Grid {
		var b strings.Builder
		for j, r := range row {
			owner := c.Owner[i][j]
			if owner >= 0 && owner < len(styles) {
				b.WriteString(styles[owner].Render(string(r)))
			} else {
				b.WriteRune(r)
			}
		}
		lines[i] = b.String()
	}
	return lines
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
