package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"grid-launcher/internal/logger"
	"grid-launcher/internal/models"
)

const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads the config file after it changes on disk. The directory
// is watched rather than the file so that editors which replace the file
// are still seen.
type Watcher struct {
	store    *Store
	target   string
	watcher  *fsnotify.Watcher
	logger   logger.Logger
	debounce time.Duration
	onReload func(models.LauncherConfig)

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewWatcher(store *Store, debounce time.Duration, onReload func(models.LauncherConfig), log logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	target, err := filepath.Abs(store.Path())
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		store:    store,
		target:   target,
		watcher:  fsw,
		logger:   log,
		debounce: debounce,
		onReload: onReload,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run()

	log.Info("ConfigWatcher", "watching config file", map[string]interface{}{
		"path": target,
	})
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warning("ConfigWatcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// reload reads the file itself instead of going through Store.Load: a
// half-written or invalid file must not replace the live state with the
// empty default.
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.target)
	if err != nil {
		// a deleted file is left alone; the next save recreates it
		w.logger.Debug("ConfigWatcher", "config file unreadable, skipping reload", map[string]interface{}{
			"path":  w.target,
			"error": err.Error(),
		})
		return
	}

	cfg, err := Decode(data, w.logger)
	if err != nil {
		w.logger.Warning("ConfigWatcher", "invalid config on disk, keeping current state", map[string]interface{}{
			"path":  w.target,
			"error": err.Error(),
		})
		return
	}

	w.logger.Debug("ConfigWatcher", "config changed on disk", map[string]interface{}{
		"programs": len(cfg.Programs),
	})
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) Shutdown() {
	if err := w.Close(); err != nil {
		w.logger.Warning("ConfigWatcher", "close failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
