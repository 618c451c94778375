// Package launcher holds the in-memory program list and the command handlers
// that mutate it. Every handler changes memory first and then persists the
// whole config as a separate step.
package launcher

import (
	"fmt"
	"strings"

	"grid-launcher/internal/grid"
	"grid-launcher/internal/logger"
	"grid-launcher/internal/models"
)

// Persister stores the full launcher config.
type Persister interface {
	Save(cfg models.LauncherConfig) error
}

// Runner starts a program without waiting for it.
type Runner interface {
	Run(path string) error
}

type ChangeListener func(cfg models.LauncherConfig)

// Launcher is not safe for concurrent use; callers drive it from the UI
// thread.
type Launcher struct {
	programs   []models.ProgramEntry
	layoutMode bool

	persister Persister
	runner    Runner
	logger    logger.Logger
	listeners []ChangeListener
	saveErr   error
}

func New(cfg models.LauncherConfig, persister Persister, runner Runner, log logger.Logger) *Launcher {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	initial := cfg.Clone()

	return &Launcher{
		programs:   initial.Programs,
		layoutMode: initial.LayoutModeEnabled,
		persister:  persister,
		runner:     runner,
		logger:     log,
	}
}

func (l *Launcher) OnChange(listener ChangeListener) {
	l.listeners = append(l.listeners, listener)
}

func (l *Launcher) Snapshot() models.LauncherConfig {
	return models.LauncherConfig{
		Programs:          l.Programs(),
		LayoutModeEnabled: l.layoutMode,
	}
}

func (l *Launcher) Programs() []models.ProgramEntry {
	out := make([]models.ProgramEntry, len(l.programs))
	copy(out, l.programs)
	return out
}

func (l *Launcher) LayoutMode() bool {
	return l.layoutMode
}

// ItemCount includes the add tile when layout mode is on.
func (l *Launcher) ItemCount() int {
	return grid.ItemCount(len(l.programs), l.layoutMode)
}

func (l *Launcher) Layout(params grid.Params) grid.Grid {
	return grid.Compute(l.ItemCount(), params)
}

// OnAddProgram appends path. An empty path means the picker was cancelled.
func (l *Launcher) OnAddProgram(path string) bool {
	if strings.TrimSpace(path) == "" {
		l.logger.Debug("Launcher", "add cancelled", nil)
		return false
	}

	l.programs = append(l.programs, models.ProgramEntry{Path: path})
	l.logger.Info("Launcher", "program added", map[string]interface{}{
		"path":  path,
		"count": len(l.programs),
	})

	l.commit()
	return true
}

// OnDeleteProgram removes every entry with exactly this path and returns how
// many were removed.
func (l *Launcher) OnDeleteProgram(path string) int {
	kept := make([]models.ProgramEntry, 0, len(l.programs))
	for _, p := range l.programs {
		if p.Path != path {
			kept = append(kept, p)
		}
	}
	removed := len(l.programs) - len(kept)
	l.programs = kept

	l.logger.Info("Launcher", "program deleted", map[string]interface{}{
		"path":    path,
		"removed": removed,
		"count":   len(l.programs),
	})

	l.commit()
	return removed
}

func (l *Launcher) OnToggleLayoutMode(enabled bool) {
	l.layoutMode = enabled
	l.logger.Info("Launcher", "layout mode changed", map[string]interface{}{
		"enabled": enabled,
	})

	l.commit()
}

// OnReorder moves the entry at from so that it ends up at index to.
func (l *Launcher) OnReorder(from, to int) bool {
	n := len(l.programs)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		l.logger.Debug("Launcher", "reorder ignored", map[string]interface{}{
			"from":  from,
			"to":    to,
			"count": n,
		})
		return false
	}

	moved := l.programs[from]
	reordered := make([]models.ProgramEntry, 0, n)
	reordered = append(reordered, l.programs[:from]...)
	reordered = append(reordered, l.programs[from+1:]...)
	reordered = append(reordered[:to], append([]models.ProgramEntry{moved}, reordered[to:]...)...)
	l.programs = reordered

	l.logger.Info("Launcher", "program moved", map[string]interface{}{
		"path": moved.Path,
		"from": from,
		"to":   to,
	})

	l.commit()
	return true
}

// Launch starts path. Failures are logged and returned; nothing is fatal.
func (l *Launcher) Launch(path string) error {
	l.logger.Info("Launcher", "starting program", map[string]interface{}{
		"path": path,
	})
	if l.runner == nil {
		err := fmt.Errorf("launch %s: no runner configured", path)
		l.logger.Error("Launcher", err, nil)
		return err
	}

	if err := l.runner.Run(path); err != nil {
		err = fmt.Errorf("launch %s: %w", path, err)
		l.logger.Error("Launcher", err, map[string]interface{}{
			"path": path,
		})
		return err
	}
	return nil
}

// Replace adopts a config loaded from elsewhere without writing it back.
func (l *Launcher) Replace(cfg models.LauncherConfig) bool {
	if l.Snapshot().Equal(cfg) {
		return false
	}

	next := cfg.Clone()
	l.programs = next.Programs
	l.layoutMode = next.LayoutModeEnabled

	l.logger.Info("Launcher", "config replaced", map[string]interface{}{
		"count":       len(l.programs),
		"layout_mode": l.layoutMode,
	})
	l.notify()
	return true
}

func (l *Launcher) commit() {
	l.save()
	l.notify()
}

func (l *Launcher) save() {
	if l.persister == nil {
		return
	}
	// best-effort: the store has already logged the failure
	l.saveErr = l.persister.Save(l.Snapshot())
}

// SaveError is the result of the most recent save. The window ignores it;
// one-shot callers such as the CLI report it.
func (l *Launcher) SaveError() error {
	return l.saveErr
}

func (l *Launcher) notify() {
	snapshot := l.Snapshot()
	for _, listener := range l.listeners {
		listener(snapshot.Clone())
	}
}
