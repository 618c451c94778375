package layout

import (
	"fyne.io/fyne/v2"
)

// FrameLayout stretches the first object over the full container and pins
// the remaining objects to a fixed-height band along the top edge.
type FrameLayout struct {
	headerHeight float32
}

func NewFrameLayout(headerHeight float32) *FrameLayout {
	return &FrameLayout{headerHeight: headerHeight}
}

func (fl *FrameLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for i, obj := range objects {
		obj.Move(fyne.NewPos(0, 0))
		if i == 0 {
			obj.Resize(containerSize)
			continue
		}
		obj.Resize(fyne.NewSize(containerSize.Width, fl.headerHeight))
	}
}

func (fl *FrameLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, fl.headerHeight)
	}

	body := objects[0].MinSize()
	width := body.Width
	for _, obj := range objects[1:] {
		if w := obj.MinSize().Width; w > width {
			width = w
		}
	}

	height := body.Height
	if height < fl.headerHeight {
		height = fl.headerHeight
	}
	return fyne.NewSize(width, height)
}
