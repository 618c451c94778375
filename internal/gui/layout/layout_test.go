package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"grid-launcher/internal/grid"
)

func rects(n int) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, n)
	for i := range objects {
		objects[i] = canvas.NewRectangle(nil)
	}
	return objects
}

func TestGridLayoutPlacesCells(t *testing.T) {
	test.NewTempApp(t)
	params := grid.DefaultParams()
	objects := rects(5)

	NewGridLayout(params).Layout(objects, fyne.NewSize(1000, 1000))

	step := params.IconSize + params.Spacing
	want := []fyne.Position{
		{X: 20, Y: 50},
		{X: 20 + step, Y: 50},
		{X: 20 + 2*step, Y: 50},
		{X: 20, Y: 50 + step},
		{X: 20 + step, Y: 50 + step},
	}
	for i, obj := range objects {
		assert.Equal(t, want[i], obj.Position(), "cell %d", i)
		assert.Equal(t, fyne.NewSquareSize(96), obj.Size())
	}
}

func TestGridLayoutMinSizeMatchesEngine(t *testing.T) {
	test.NewTempApp(t)
	params := grid.DefaultParams()

	tests := []struct {
		count int
		want  fyne.Size
	}{
		{0, fyne.NewSize(136, 70)},
		{1, fyne.NewSize(136, 166)},
		{5, fyne.NewSize(348, 272)},
	}

	for _, tt := range tests {
		got := NewGridLayout(params).MinSize(rects(tt.count))
		assert.Equal(t, tt.want, got, "count %d", tt.count)
	}
}

func TestFrameLayout(t *testing.T) {
	test.NewTempApp(t)
	body := canvas.NewRectangle(nil)
	header := canvas.NewRectangle(nil)

	NewFrameLayout(30).Layout([]fyne.CanvasObject{body, header}, fyne.NewSize(200, 150))

	assert.Equal(t, fyne.NewSize(200, 150), body.Size())
	assert.Equal(t, fyne.NewSize(200, 30), header.Size())
	assert.Equal(t, fyne.NewPos(0, 0), header.Position())
}

func TestFrameLayoutMinSizeKeepsHeaderBand(t *testing.T) {
	test.NewTempApp(t)
	body := canvas.NewRectangle(nil)
	body.SetMinSize(fyne.NewSize(50, 10))

	got := NewFrameLayout(30).MinSize([]fyne.CanvasObject{body})

	assert.Equal(t, fyne.NewSize(50, 30), got)
}
