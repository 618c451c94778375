package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ProgramButton is one icon tile in the launcher grid.
//
// A primary tap launches the program. In layout mode a middle click removes
// it and dragging the tile reports the drop point so the owner can reorder.
type ProgramButton struct {
	widget.BaseWidget

	Index int
	Path  string

	icon       fyne.Resource
	layoutMode bool
	hovered    bool
	dragging   bool

	launchHandler func(string)
	deleteHandler func(string)
	dropHandler   func(from int, center fyne.Position)
}

func NewProgramButton(index int, path string, icon fyne.Resource) *ProgramButton {
	b := &ProgramButton{
		Index: index,
		Path:  path,
		icon:  icon,
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *ProgramButton) SetLayoutMode(enabled bool) {
	b.layoutMode = enabled
}

func (b *ProgramButton) LayoutMode() bool {
	return b.layoutMode
}

func (b *ProgramButton) SetLaunchHandler(handler func(string)) {
	b.launchHandler = handler
}

func (b *ProgramButton) SetDeleteHandler(handler func(string)) {
	b.deleteHandler = handler
}

func (b *ProgramButton) SetDropHandler(handler func(from int, center fyne.Position)) {
	b.dropHandler = handler
}

func (b *ProgramButton) Icon() fyne.Resource {
	return b.icon
}

func (b *ProgramButton) Tapped(_ *fyne.PointEvent) {
	if b.dragging || b.launchHandler == nil {
		return
	}
	b.launchHandler(b.Path)
}

func (b *ProgramButton) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonTertiary || !b.layoutMode {
		return
	}
	if b.deleteHandler != nil {
		b.deleteHandler(b.Path)
	}
}

func (b *ProgramButton) MouseUp(_ *desktop.MouseEvent) {}

func (b *ProgramButton) Dragged(ev *fyne.DragEvent) {
	if !b.layoutMode {
		return
	}
	b.dragging = true
	b.Move(b.Position().Add(ev.Dragged))
}

func (b *ProgramButton) DragEnd() {
	if !b.dragging {
		return
	}
	b.dragging = false

	size := b.Size()
	center := b.Position().Add(fyne.NewDelta(size.Width/2, size.Height/2))
	if b.dropHandler != nil {
		b.dropHandler(b.Index, center)
	}
}

func (b *ProgramButton) MouseIn(_ *desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

func (b *ProgramButton) MouseMoved(_ *desktop.MouseEvent) {}

func (b *ProgramButton) MouseOut() {
	b.hovered = false
	b.Refresh()
}

func (b *ProgramButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (b *ProgramButton) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(theme.ColorNameHover))
	background.CornerRadius = theme.InputRadiusSize()
	background.Hidden = true

	image := canvas.NewImageFromResource(b.icon)
	image.FillMode = canvas.ImageFillContain
	image.ScaleMode = canvas.ImageScaleSmooth

	return &programButtonRenderer{button: b, background: background, image: image}
}

type programButtonRenderer struct {
	button     *ProgramButton
	background *canvas.Rectangle
	image      *canvas.Image
}

func (r *programButtonRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)

	inset := theme.Padding()
	r.image.Move(fyne.NewPos(inset, inset))
	r.image.Resize(size.SubtractWidthHeight(2*inset, 2*inset))
}

func (r *programButtonRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(theme.IconInlineSize() + 2*theme.Padding())
}

func (r *programButtonRenderer) Refresh() {
	r.background.FillColor = theme.Color(theme.ColorNameHover)
	r.background.Hidden = !r.button.hovered && !r.button.dragging
	r.image.Resource = r.button.icon
	r.background.Refresh()
	r.image.Refresh()
}

func (r *programButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image}
}

func (r *programButtonRenderer) Destroy() {}
