package models

// ProgramEntry is one launchable item: an executable or a shortcut file.
type ProgramEntry struct {
	Path string `json:"path"`
}

// LauncherConfig is the whole persisted state. Program order decides grid
// position and duplicates are allowed.
type LauncherConfig struct {
	Programs          []ProgramEntry
	LayoutModeEnabled bool
}

func DefaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		Programs:          []ProgramEntry{},
		LayoutModeEnabled: false,
	}
}

func (c LauncherConfig) Clone() LauncherConfig {
	programs := make([]ProgramEntry, len(c.Programs))
	copy(programs, c.Programs)

	return LauncherConfig{
		Programs:          programs,
		LayoutModeEnabled: c.LayoutModeEnabled,
	}
}

func (c LauncherConfig) Equal(other LauncherConfig) bool {
	if c.LayoutModeEnabled != other.LayoutModeEnabled {
		return false
	}
	if len(c.Programs) != len(other.Programs) {
		return false
	}
	for i := range c.Programs {
		if c.Programs[i] != other.Programs[i] {
			return false
		}
	}
	return true
}

func (c LauncherConfig) Paths() []string {
	paths := make([]string, len(c.Programs))
	for i, p := range c.Programs {
		paths[i] = p.Path
	}
	return paths
}
