package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const LayoutModeLabel = "Layout mode"

// Header is the title band: layout mode check on the left and a close
// button on the right. The window has no decorations of its own.
type Header struct {
	container   *fyne.Container
	check       *widget.Check
	closeButton *widget.Button

	layoutModeHandler func(bool)
	closeHandler      func()
	syncing           bool
}

func NewHeader() *Header {
	h := &Header{}

	h.check = widget.NewCheck(LayoutModeLabel, h.onLayoutModeChanged)
	h.closeButton = widget.NewButtonWithIcon("", theme.CancelIcon(), h.onClose)
	h.closeButton.Importance = widget.LowImportance

	h.container = container.NewBorder(nil, nil, h.check, h.closeButton)
	return h
}

func (h *Header) GetContainer() *fyne.Container {
	return h.container
}

// SetLayoutMode updates the check without calling the handler.
func (h *Header) SetLayoutMode(enabled bool) {
	if h.check.Checked == enabled {
		return
	}
	h.syncing = true
	h.check.SetChecked(enabled)
	h.syncing = false
}

func (h *Header) LayoutMode() bool {
	return h.check.Checked
}

func (h *Header) SetLayoutModeHandler(handler func(bool)) {
	h.layoutModeHandler = handler
}

func (h *Header) SetCloseHandler(handler func()) {
	h.closeHandler = handler
}

func (h *Header) Check() *widget.Check {
	return h.check
}

func (h *Header) CloseButton() *widget.Button {
	return h.closeButton
}

func (h *Header) onLayoutModeChanged(enabled bool) {
	if h.syncing || h.layoutModeHandler == nil {
		return
	}
	h.layoutModeHandler(enabled)
}

func (h *Header) onClose() {
	if h.closeHandler != nil {
		h.closeHandler()
	}
}
