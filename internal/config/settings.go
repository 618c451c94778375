package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"

	"grid-launcher/internal/grid"
	"grid-launcher/internal/logger"
)

const (
	AppDirName = "grid-launcher"

	EnvConfigPath = "GRID_LAUNCHER_CONFIG"
	EnvLogLevel   = "GRID_LAUNCHER_LOG_LEVEL"
	EnvJSONLogs   = "GRID_LAUNCHER_JSON_LOGS"
	EnvIconSize   = "GRID_LAUNCHER_ICON_SIZE"
)

// Settings are process-level options. They are not persisted; the launcher
// state lives in the file at ConfigPath.
type Settings struct {
	ConfigPath string
	LogLevel   string
	JSONLogs   bool
	IconSize   float32
	Spacing    float32
	Padding    float32
	Watch      bool
}

func DefaultSettings() Settings {
	return Settings{
		ConfigPath: DefaultConfigPath(),
		LogLevel:   "info",
		JSONLogs:   false,
		IconSize:   grid.DefaultIconSize,
		Spacing:    grid.DefaultSpacing,
		Padding:    grid.DefaultPadding,
		Watch:      true,
	}
}

// DefaultConfigPath prefers the per-user config dir and falls back to the
// working directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultFileName
	}
	return filepath.Join(dir, AppDirName, DefaultFileName)
}

// ApplyEnv overrides fields from GRID_LAUNCHER_* variables. Invalid values
// are skipped and reported together.
func (s *Settings) ApplyEnv() error {
	var errs []error

	if v := os.Getenv(EnvConfigPath); v != "" {
		s.ConfigPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvJSONLogs); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvJSONLogs, err))
		} else {
			s.JSONLogs = b
		}
	}
	if v := os.Getenv(EnvIconSize); v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvIconSize, err))
		} else {
			s.IconSize = float32(f)
		}
	}

	return errors.Join(errs...)
}

// BindFlags registers flags whose defaults are the current field values, so
// call it after ApplyEnv.
func (s *Settings) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&s.ConfigPath, "config", "c", s.ConfigPath, "path to the launcher config file")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&s.JSONLogs, "json-logs", s.JSONLogs, "write logs as JSON instead of console text")
	fs.Float32Var(&s.IconSize, "icon-size", s.IconSize, "icon tile size in pixels")
	fs.Float32Var(&s.Spacing, "spacing", s.Spacing, "gap between tiles in pixels")
	fs.Float32Var(&s.Padding, "padding", s.Padding, "padding around the grid in pixels")
	fs.BoolVar(&s.Watch, "watch", s.Watch, "reload the window when the config file changes on disk")
}

func (s Settings) Validate() error {
	if s.ConfigPath == "" {
		return errors.New("config path is empty")
	}
	if s.IconSize <= 0 {
		return fmt.Errorf("icon size must be positive, got %v", s.IconSize)
	}
	if s.Spacing < 0 || s.Padding < 0 {
		return fmt.Errorf("spacing and padding must not be negative")
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

func (s Settings) GridParams() grid.Params {
	return grid.Params{
		IconSize:     s.IconSize,
		Spacing:      s.Spacing,
		Padding:      s.Padding,
		HeaderHeight: grid.DefaultHeaderHeight,
	}
}
