// Package grid computes the near-square icon matrix used by the launcher window.
// Everything here is a pure function of the item count and the geometry params.
package grid

import "math"

const (
	DefaultIconSize     = 96
	DefaultSpacing      = 10
	DefaultPadding      = 20
	DefaultHeaderHeight = 30
)

// Params describes the fixed geometry of a cell grid.
type Params struct {
	IconSize     float32
	Spacing      float32
	Padding      float32
	HeaderHeight float32
}

func DefaultParams() Params {
	return Params{
		IconSize:     DefaultIconSize,
		Spacing:      DefaultSpacing,
		Padding:      DefaultPadding,
		HeaderHeight: DefaultHeaderHeight,
	}
}

func (p Params) normalized() Params {
	if p.IconSize < 1 {
		p.IconSize = 1
	}
	if p.Spacing < 0 {
		p.Spacing = 0
	}
	if p.Padding < 0 {
		p.Padding = 0
	}
	if p.HeaderHeight < 0 {
		p.HeaderHeight = 0
	}
	return p
}

// Grid is the computed placement for Count items.
type Grid struct {
	Params
	Count   int
	Columns int
	Rows    int
	Width   float32
	Height  float32
}

// ItemCount adds the virtual "add" tile when layout mode is on.
func ItemCount(programs int, layoutMode bool) int {
	if programs < 0 {
		programs = 0
	}
	if layoutMode {
		return programs + 1
	}
	return programs
}

// Columns returns ceil(sqrt(n)), or 1 for an empty grid.
func Columns(n int) int {
	if n <= 0 {
		return 1
	}
	c := int(math.Ceil(math.Sqrt(float64(n))))
	// guard against float rounding on perfect squares
	for c*c < n {
		c++
	}
	for c > 1 && (c-1)*(c-1) >= n {
		c--
	}
	return c
}

// Rows returns ceil(n / Columns(n)).
func Rows(n int) int {
	if n <= 0 {
		return 0
	}
	c := Columns(n)
	return (n + c - 1) / c
}

func Compute(count int, params Params) Grid {
	if count < 0 {
		count = 0
	}
	p := params.normalized()
	cols := Columns(count)
	rows := Rows(count)
	step := p.IconSize + p.Spacing

	width := float32(cols)*step + 2*p.Padding - p.Spacing
	height := p.HeaderHeight + 2*p.Padding
	if rows > 0 {
		height += float32(rows)*step - p.Spacing
	}

	return Grid{
		Params:  p,
		Count:   count,
		Columns: cols,
		Rows:    rows,
		Width:   width,
		Height:  height,
	}
}

// Cell maps insertion index i to its row and column.
func (g Grid) Cell(i int) (row, col int) {
	return i / g.Columns, i % g.Columns
}

// Position is the top-left corner of cell i inside the container.
func (g Grid) Position(i int) (x, y float32) {
	row, col := g.Cell(i)
	step := g.IconSize + g.Spacing
	x = g.Padding + float32(col)*step
	y = g.HeaderHeight + g.Padding + float32(row)*step
	return x, y
}

// IndexAt is the inverse of Position. Points outside the grid snap to the
// nearest cell and the result is clamped to the last item. Returns -1 when
// the grid is empty.
func (g Grid) IndexAt(x, y float32) int {
	if g.Count == 0 {
		return -1
	}
	step := g.IconSize + g.Spacing

	col := clamp(int(math.Floor(float64((x-g.Padding)/step))), 0, g.Columns-1)
	row := clamp(int(math.Floor(float64((y-g.HeaderHeight-g.Padding)/step))), 0, g.Rows-1)

	return clamp(row*g.Columns+col, 0, g.Count-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
