package layout

import (
	"fyne.io/fyne/v2"

	"grid-launcher/internal/grid"
)

// GridLayout places every object in a square cell computed by the grid
// engine. Cell positions already include the header band and padding, so
// the container is expected to cover the whole window.
type GridLayout struct {
	params grid.Params
}

func NewGridLayout(params grid.Params) *GridLayout {
	return &GridLayout{params: params}
}

func (gl *GridLayout) Params() grid.Params {
	return gl.params
}

func (gl *GridLayout) Compute(objects []fyne.CanvasObject) grid.Grid {
	return grid.Compute(len(objects), gl.params)
}

func (gl *GridLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	g := gl.Compute(objects)
	cell := fyne.NewSquareSize(g.IconSize)

	for i, obj := range objects {
		x, y := g.Position(i)
		obj.Move(fyne.NewPos(x, y))
		obj.Resize(cell)
	}
}

func (gl *GridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	g := gl.Compute(objects)
	return fyne.NewSize(g.Width, g.Height)
}
