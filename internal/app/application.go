package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"grid-launcher/internal/config"
	"grid-launcher/internal/gui"
	"grid-launcher/internal/icon"
	"grid-launcher/internal/launcher"
	"grid-launcher/internal/logger"
	"grid-launcher/internal/models"
	"grid-launcher/internal/runner"
	"grid-launcher/internal/shutdown"
)

const (
	AppName    = "Grid Launcher"
	AppID      = "io.github.gridlauncher"
	AppVersion = "1.0.0"

	DialogWindowWidth  = 720
	DialogWindowHeight = 520
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	settings   config.Settings
	logger     logger.Logger
	store      *config.Store
	launcher   *launcher.Launcher
	icons      *icon.Cache
	guiManager *gui.Manager
	watcher    *config.Watcher
	handlers   *Handlers
	lifecycle  *Lifecycle
}

func NewApplication(settings config.Settings, log logger.Logger) (*Application, error) {
	return newApplication(fyneapp.NewWithID(AppID), settings, log)
}

func newApplication(fyneApp fyne.App, settings config.Settings, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version": AppVersion,
		"config":  settings.ConfigPath,
		"watch":   settings.Watch,
	})

	store := config.NewStore(settings.ConfigPath, log)
	state := launcher.New(store.Load(), store, runner.NewExecRunner(log), log)

	resolver := icon.NewResolver(log)
	icons := icon.NewCache(resolver.Load, log)

	window := newLauncherWindow(fyneApp)
	guiManager := gui.NewManager(window, icons, settings.GridParams(), log)
	guiManager.SetDialogWindowFactory(func(title string) fyne.Window {
		w := fyneApp.NewWindow(title)
		w.Resize(fyne.NewSize(DialogWindowWidth, DialogWindowHeight))
		w.CenterOnScreen()
		return w
	})

	lifecycle := NewLifecycle(log, shutdown.DefaultTimeout)
	lifecycle.Register("gui", guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		settings:   settings,
		logger:     log,
		store:      store,
		launcher:   state,
		icons:      icons,
		guiManager: guiManager,
		lifecycle:  lifecycle,
	}

	application.setupHandlers()

	if settings.Watch {
		watcher, err := config.NewWatcher(store, config.DefaultDebounce, application.onExternalChange, log)
		if err != nil {
			// the window still works without live reload
			log.Warning("Application", "config watcher unavailable", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			application.watcher = watcher
			lifecycle.Register("watcher", watcher)
		}
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"programs":    len(state.Programs()),
		"layout_mode": state.LayoutMode(),
	})
	return application, nil
}

// newLauncherWindow prefers a borderless splash window when the driver can
// make one.
func newLauncherWindow(fyneApp fyne.App) fyne.Window {
	var window fyne.Window
	if drv, ok := fyneApp.Driver().(desktop.Driver); ok {
		window = drv.CreateSplashWindow()
		window.SetTitle(AppName)
	} else {
		window = fyneApp.NewWindow(AppName)
	}

	window.SetPadded(false)
	window.SetFixedSize(true)
	window.SetMaster()
	return window
}

func (a *Application) setupHandlers() {
	a.handlers = NewHandlers(a.launcher, a.guiManager, a.icons, a.logger, a.quit)

	a.guiManager.SetLaunchHandler(a.handlers.HandleLaunch)
	a.guiManager.SetDeleteHandler(a.handlers.HandleDelete)
	a.guiManager.SetReorderHandler(a.handlers.HandleReorder)
	a.guiManager.SetAddHandler(a.handlers.HandleAdd)
	a.guiManager.SetLayoutModeHandler(a.handlers.HandleToggleLayoutMode)
	a.guiManager.SetCloseHandler(a.handlers.HandleClose)

	// every mutation happens on the UI goroutine, so render directly
	a.launcher.OnChange(a.guiManager.Render)
}

// onExternalChange runs on the watcher goroutine.
func (a *Application) onExternalChange(cfg models.LauncherConfig) {
	fyne.Do(func() {
		a.handlers.HandleReload(cfg)
	})
}

func (a *Application) quit() {
	a.logger.Info("Application", "quit requested", nil)
	a.lifecycle.Shutdown()
	a.fyneApp.Quit()
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.guiManager.Render(a.launcher.Snapshot())
	a.window.CenterOnScreen()
	a.window.Show()

	a.lifecycle.Start(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
