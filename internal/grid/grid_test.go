package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = Params{IconSize: 50, Spacing: 10, Padding: 20, HeaderHeight: 30}

func TestColumnsAndRowsProperties(t *testing.T) {
	for n := 1; n <= 500; n++ {
		cols := Columns(n)
		rows := Rows(n)

		require.Equal(t, int(math.Ceil(math.Sqrt(float64(n)))), cols, "columns for n=%d", n)
		require.Equal(t, int(math.Ceil(float64(n)/float64(cols))), rows, "rows for n=%d", n)
		require.GreaterOrEqual(t, cols*rows, n, "capacity for n=%d", n)
	}
}

func TestComputeFiveItems(t *testing.T) {
	g := Compute(5, testParams)

	assert.Equal(t, 3, g.Columns)
	assert.Equal(t, 2, g.Rows)

	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}}
	for i, cell := range want {
		row, col := g.Cell(i)
		assert.Equal(t, cell, [2]int{row, col}, "item %d", i)
	}

	assert.Equal(t, float32(3*60+40-10), g.Width)
	assert.Equal(t, float32(2*60+30+40-10), g.Height)
}

func TestComputeEmptyGrid(t *testing.T) {
	g := Compute(0, testParams)

	assert.Equal(t, 1, g.Columns)
	assert.Equal(t, 0, g.Rows)
	assert.Equal(t, float32(30+2*20), g.Height, "header and padding only")
	assert.Equal(t, float32(50+2*20), g.Width)
	assert.Equal(t, -1, g.IndexAt(100, 100))
}

func TestLayoutModeAddsOneVirtualCell(t *testing.T) {
	for programs := 0; programs < 20; programs++ {
		assert.Equal(t, ItemCount(programs, false)+1, ItemCount(programs, true))
	}

	// the add tile lands in the next free cell
	g := Compute(ItemCount(4, true), testParams)
	row, col := g.Cell(4)
	assert.Equal(t, 3, g.Columns)
	assert.Equal(t, [2]int{1, 1}, [2]int{row, col})

	g = Compute(ItemCount(0, true), testParams)
	assert.Equal(t, 1, g.Columns)
	assert.Equal(t, 1, g.Rows)
}

func TestPosition(t *testing.T) {
	g := Compute(5, testParams)

	x, y := g.Position(0)
	assert.Equal(t, float32(20), x)
	assert.Equal(t, float32(50), y)

	x, y = g.Position(4)
	assert.Equal(t, float32(20+60), x)
	assert.Equal(t, float32(50+60), y)
}

func TestIndexAtInvertsPosition(t *testing.T) {
	for _, n := range []int{1, 2, 5, 9, 10, 17} {
		g := Compute(n, testParams)
		for i := 0; i < n; i++ {
			x, y := g.Position(i)
			assert.Equal(t, i, g.IndexAt(x+g.IconSize/2, y+g.IconSize/2), "n=%d i=%d", n, i)
		}
	}
}

func TestIndexAtClamps(t *testing.T) {
	g := Compute(5, testParams)

	assert.Equal(t, 0, g.IndexAt(-100, -100))
	assert.Equal(t, 2, g.IndexAt(1000, 0))
	// empty cell (1,2) clamps to the last real item
	assert.Equal(t, 4, g.IndexAt(1000, 1000))
}

func TestComputeNormalizesParams(t *testing.T) {
	g := Compute(1, Params{IconSize: 0, Spacing: -5, Padding: -1, HeaderHeight: -3})

	assert.Equal(t, float32(1), g.IconSize)
	assert.Zero(t, g.Spacing)
	assert.Equal(t, float32(1), g.Width)
	assert.Equal(t, float32(1), g.Height)
}

func TestNegativeCountsAreTreatedAsEmpty(t *testing.T) {
	assert.Equal(t, 0, Compute(-3, testParams).Count)
	assert.Equal(t, 0, ItemCount(-1, false))
}
