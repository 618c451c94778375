package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"grid-launcher/internal/logger"
	"grid-launcher/internal/models"
)

const DefaultFileName = "launcher_config.json"

// On-disk shape. Written exactly like this; read through rawDocument so that
// each part can fail on its own.
type fileDocument struct {
	Programs []models.ProgramEntry `json:"programs"`
	Settings fileSettings          `json:"settings"`
}

type fileSettings struct {
	LayoutModeChecked bool `json:"layoutModeChecked"`
}

type rawDocument struct {
	Programs json.RawMessage `json:"programs"`
	Settings json.RawMessage `json:"settings"`
	// older files kept the flag at top level
	LegacyLayoutMode *bool `json:"layoutMode"`
}

type rawSettings struct {
	LayoutModeChecked *bool `json:"layoutModeChecked"`
}

type rawEntry struct {
	Path *string `json:"path"`
}

// Store reads and writes the launcher configuration file. Reads never fail
// and writes are best-effort.
type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted config, or the empty default when the file is
// missing or unreadable.
func (s *Store) Load() models.LauncherConfig {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("ConfigStore", "no config file, starting empty", map[string]interface{}{
				"path": s.path,
			})
		} else {
			s.logger.Error("ConfigStore", fmt.Errorf("read config: %w", err), map[string]interface{}{
				"path": s.path,
			})
		}
		return models.DefaultLauncherConfig()
	}

	cfg, err := Decode(data, s.logger)
	if err != nil {
		s.logger.Error("ConfigStore", err, map[string]interface{}{
			"path": s.path,
		})
		return models.DefaultLauncherConfig()
	}

	s.logger.Debug("ConfigStore", "config loaded", map[string]interface{}{
		"path":        s.path,
		"programs":    len(cfg.Programs),
		"layout_mode": cfg.LayoutModeEnabled,
	})
	return cfg
}

// Save overwrites the file with the full config. The error is returned for
// callers that care; it has already been logged.
func (s *Store) Save(cfg models.LauncherConfig) error {
	data, err := Encode(cfg)
	if err != nil {
		s.logger.Error("ConfigStore", err, map[string]interface{}{"path": s.path})
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			err = fmt.Errorf("create config dir: %w", err)
			s.logger.Error("ConfigStore", err, map[string]interface{}{"path": s.path})
			return err
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		err = fmt.Errorf("write config: %w", err)
		s.logger.Error("ConfigStore", err, map[string]interface{}{"path": s.path})
		return err
	}

	s.logger.Debug("ConfigStore", "config saved", map[string]interface{}{
		"path":        s.path,
		"programs":    len(cfg.Programs),
		"layout_mode": cfg.LayoutModeEnabled,
	})
	return nil
}

func Encode(cfg models.LauncherConfig) ([]byte, error) {
	doc := fileDocument{
		Programs: cfg.Programs,
		Settings: fileSettings{LayoutModeChecked: cfg.LayoutModeEnabled},
	}
	if doc.Programs == nil {
		doc.Programs = []models.ProgramEntry{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a config document. Only a top-level syntax error is
// returned; bad entries or sections are skipped with a warning.
func Decode(data []byte, log logger.Logger) (models.LauncherConfig, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	cfg := models.DefaultLauncherConfig()

	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Programs = decodePrograms(doc.Programs, log)

	layoutMode, found := decodeLayoutMode(doc.Settings, log)
	switch {
	case found:
		cfg.LayoutModeEnabled = layoutMode
	case doc.LegacyLayoutMode != nil:
		cfg.LayoutModeEnabled = *doc.LegacyLayoutMode
	}

	return cfg, nil
}

func decodePrograms(raw json.RawMessage, log logger.Logger) []models.ProgramEntry {
	programs := []models.ProgramEntry{}
	if isAbsent(raw) {
		return programs
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warning("ConfigStore", "programs is not a list, ignoring it", map[string]interface{}{
			"error": err.Error(),
		})
		return programs
	}

	for i, item := range items {
		var entry rawEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			log.Warning("ConfigStore", "skipping malformed program entry", map[string]interface{}{
				"index": i,
				"error": err.Error(),
			})
			continue
		}
		if entry.Path == nil || strings.TrimSpace(*entry.Path) == "" {
			log.Warning("ConfigStore", "skipping program entry without path", map[string]interface{}{
				"index": i,
			})
			continue
		}
		programs = append(programs, models.ProgramEntry{Path: *entry.Path})
	}

	return programs
}

func decodeLayoutMode(raw json.RawMessage, log logger.Logger) (bool, bool) {
	if isAbsent(raw) {
		return false, false
	}

	var settings rawSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Warning("ConfigStore", "settings is malformed, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return false, false
	}
	if settings.LayoutModeChecked == nil {
		return false, false
	}
	return *settings.LayoutModeChecked, true
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
