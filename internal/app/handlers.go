package app

import (
	"runtime"

	"fyne.io/fyne/v2/storage"

	"grid-launcher/internal/gui"
	"grid-launcher/internal/icon"
	"grid-launcher/internal/launcher"
	"grid-launcher/internal/logger"
	"grid-launcher/internal/models"
)

// Handlers connects GUI events to launcher state. All methods run on the
// UI goroutine.
type Handlers struct {
	launcher   *launcher.Launcher
	guiManager *gui.Manager
	icons      *icon.Cache
	logger     logger.Logger
	quit       func()
}

func NewHandlers(l *launcher.Launcher, gm *gui.Manager, icons *icon.Cache, log logger.Logger, quit func()) *Handlers {
	return &Handlers{
		launcher:   l,
		guiManager: gm,
		icons:      icons,
		logger:     log,
		quit:       quit,
	}
}

func (h *Handlers) HandleAdd() {
	h.guiManager.ShowFileOpen(programFilter(runtime.GOOS), h.HandleAddPath)
}

func (h *Handlers) HandleAddPath(path string) {
	if !h.launcher.OnAddProgram(path) {
		h.logger.Debug("Handlers", "add ignored", map[string]interface{}{
			"path": path,
		})
	}
}

func (h *Handlers) HandleDelete(path string) {
	if h.launcher.OnDeleteProgram(path) > 0 {
		h.icons.Invalidate(path)
	}
}

func (h *Handlers) HandleToggleLayoutMode(enabled bool) {
	h.launcher.OnToggleLayoutMode(enabled)
}

func (h *Handlers) HandleReorder(from, to int) {
	h.launcher.OnReorder(from, to)
}

func (h *Handlers) HandleLaunch(path string) {
	if err := h.launcher.Launch(path); err != nil {
		h.guiManager.ShowError("Launch failed", err)
	}
}

// HandleReload adopts a config edited outside the window. Icons are
// reloaded too since files behind unchanged paths may have been replaced.
func (h *Handlers) HandleReload(cfg models.LauncherConfig) {
	if h.launcher.Snapshot().Equal(cfg) {
		return
	}
	h.icons.Clear()
	h.launcher.Replace(cfg)
}

func (h *Handlers) HandleClose() {
	if h.quit != nil {
		h.quit()
	}
}

// programFilter limits the picker to executables and shortcuts where those
// have a file extension.
func programFilter(goos string) storage.FileFilter {
	if goos != "windows" {
		return nil
	}
	return storage.NewExtensionFileFilter([]string{".exe", ".lnk", ".bat", ".cmd"})
}
