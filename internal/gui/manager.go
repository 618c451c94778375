package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"grid-launcher/internal/grid"
	"grid-launcher/internal/gui/components"
	"grid-launcher/internal/gui/layout"
	"grid-launcher/internal/logger"
	"grid-launcher/internal/models"
)

// IconSource supplies the image shown for a program path.
type IconSource interface {
	Resource(path string) fyne.Resource
}

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	icons      IconSource
	params     grid.Params
	isShutdown bool

	header        *components.Header
	cells         *fyne.Container
	mainContainer *fyne.Container

	current  grid.Grid
	programs int

	launchHandler     func(string)
	deleteHandler     func(string)
	reorderHandler    func(from, to int)
	addHandler        func()
	layoutModeHandler func(bool)
	closeHandler      func()

	dialogWindow func(title string) fyne.Window
}

func NewManager(window fyne.Window, icons IconSource, params grid.Params, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	gridLayout := layout.NewGridLayout(params)
	empty := grid.Compute(0, params)

	manager := &Manager{
		window:  window,
		logger:  log,
		icons:   icons,
		params:  empty.Params,
		header:  components.NewHeader(),
		cells:   container.New(gridLayout),
		current: empty,
	}

	manager.mainContainer = container.New(
		layout.NewFrameLayout(empty.HeaderHeight),
		manager.cells,
		manager.header.GetContainer(),
	)

	manager.header.SetLayoutModeHandler(manager.onLayoutModeChanged)
	manager.header.SetCloseHandler(manager.onClose)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"icon_size": empty.IconSize,
		"spacing":   empty.Spacing,
		"padding":   empty.Padding,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.mainContainer
}

// Grid is the geometry of the most recent render.
func (m *Manager) Grid() grid.Grid {
	return m.current
}

func (m *Manager) SetLaunchHandler(handler func(string)) {
	m.launchHandler = handler
}

func (m *Manager) SetDeleteHandler(handler func(string)) {
	m.deleteHandler = handler
}

func (m *Manager) SetReorderHandler(handler func(from, to int)) {
	m.reorderHandler = handler
}

func (m *Manager) SetAddHandler(handler func()) {
	m.addHandler = handler
}

func (m *Manager) SetLayoutModeHandler(handler func(bool)) {
	m.layoutModeHandler = handler
}

func (m *Manager) SetCloseHandler(handler func()) {
	m.closeHandler = handler
}

// Render rebuilds every cell from cfg and resizes the window to fit.
// Must run on the UI goroutine.
func (m *Manager) Render(cfg models.LauncherConfig) {
	if m.isShutdown {
		return
	}

	objects := make([]fyne.CanvasObject, 0, len(cfg.Programs)+1)
	for i, program := range cfg.Programs {
		button := components.NewProgramButton(i, program.Path, m.icons.Resource(program.Path))
		button.SetLayoutMode(cfg.LayoutModeEnabled)
		button.SetLaunchHandler(m.onLaunch)
		button.SetDeleteHandler(m.onDelete)
		button.SetDropHandler(m.onDrop)
		objects = append(objects, button)
	}
	if cfg.LayoutModeEnabled {
		objects = append(objects, components.NewAddButton(m.onAdd))
	}

	m.programs = len(cfg.Programs)
	m.current = grid.Compute(grid.ItemCount(m.programs, cfg.LayoutModeEnabled), m.params)

	m.cells.Objects = objects
	m.cells.Refresh()
	m.header.SetLayoutMode(cfg.LayoutModeEnabled)
	m.window.Resize(fyne.NewSize(m.current.Width, m.current.Height))

	m.logger.Debug("GUIManager", "grid rendered", map[string]interface{}{
		"programs":    m.programs,
		"layout_mode": cfg.LayoutModeEnabled,
		"columns":     m.current.Columns,
		"rows":        m.current.Rows,
		"width":       m.current.Width,
		"height":      m.current.Height,
	})
}

// SetDialogWindowFactory supplies a separate window to host dialogs. The
// launcher window is sized to its icons and is usually too small for them.
func (m *Manager) SetDialogWindowFactory(factory func(title string) fyne.Window) {
	m.dialogWindow = factory
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		parent := m.dialogParent(title)
		d := dialog.NewError(err, parent)
		m.showDialog(d, parent)
	})
}

// ShowFileOpen asks for a program file and passes its path to onPicked.
// Cancelling calls nothing.
func (m *Manager) ShowFileOpen(filter storage.FileFilter, onPicked func(path string)) {
	parent := m.dialogParent("Add program")
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError("File selection error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if closeErr := reader.Close(); closeErr != nil {
			m.logger.Warning("GUIManager", "closing picked file failed", map[string]interface{}{
				"path":  path,
				"error": closeErr.Error(),
			})
		}

		m.logger.Debug("GUIManager", "file picked", map[string]interface{}{
			"path": path,
		})
		onPicked(path)
	}, parent)

	if filter != nil {
		d.SetFilter(filter)
	}
	m.showDialog(d, parent)
}

func (m *Manager) dialogParent(title string) fyne.Window {
	if m.dialogWindow == nil {
		return m.window
	}
	return m.dialogWindow(title)
}

type closableDialog interface {
	Show()
	SetOnClosed(func())
}

func (m *Manager) showDialog(d closableDialog, parent fyne.Window) {
	if parent != m.window {
		d.SetOnClosed(parent.Close)
		parent.Show()
	}
	d.Show()
}

func (m *Manager) onLaunch(path string) {
	if m.launchHandler != nil {
		m.launchHandler(path)
	}
}

func (m *Manager) onDelete(path string) {
	m.logger.Debug("GUIManager", "delete requested", map[string]interface{}{
		"path": path,
	})
	if m.deleteHandler != nil {
		m.deleteHandler(path)
	}
}

// onDrop maps the dragged tile's center to a target cell. Drops on the add
// tile count as the last program slot.
func (m *Manager) onDrop(from int, center fyne.Position) {
	to := m.current.IndexAt(center.X, center.Y)
	if to >= m.programs {
		to = m.programs - 1
	}

	m.logger.Debug("GUIManager", "drop", map[string]interface{}{
		"from": from,
		"to":   to,
	})

	if to >= 0 && to != from && m.reorderHandler != nil {
		m.reorderHandler(from, to)
	}
	// snap the dragged tile back if nothing moved
	m.cells.Refresh()
}

func (m *Manager) onAdd() {
	if m.addHandler != nil {
		m.addHandler()
	}
}

func (m *Manager) onLayoutModeChanged(enabled bool) {
	if m.layoutModeHandler != nil {
		m.layoutModeHandler(enabled)
	}
}

func (m *Manager) onClose() {
	if m.closeHandler != nil {
		m.closeHandler()
		return
	}
	m.window.Close()
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
