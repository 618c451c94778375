package components

import (
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AddButton is the "+" tile that follows the last program in layout mode.
type AddButton struct {
	widget.Button
}

func NewAddButton(tapped func()) *AddButton {
	b := &AddButton{}
	b.ExtendBaseWidget(b)
	b.Icon = theme.ContentAddIcon()
	b.Importance = widget.LowImportance
	b.OnTapped = tapped
	return b
}
