package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLauncherConfig(t *testing.T) {
	cfg := DefaultLauncherConfig()

	assert.NotNil(t, cfg.Programs)
	assert.Empty(t, cfg.Programs)
	assert.False(t, cfg.LayoutModeEnabled)
}

func TestLauncherConfigCloneIsIndependent(t *testing.T) {
	original := LauncherConfig{
		Programs:          []ProgramEntry{{Path: "/bin/a"}, {Path: "/bin/b"}},
		LayoutModeEnabled: true,
	}

	clone := original.Clone()
	clone.Programs[0].Path = "/bin/changed"

	assert.Equal(t, "/bin/a", original.Programs[0].Path)
	assert.True(t, clone.LayoutModeEnabled)
}

func TestLauncherConfigEqual(t *testing.T) {
	base := LauncherConfig{Programs: []ProgramEntry{{Path: "a"}, {Path: "b"}}}

	tests := []struct {
		name  string
		other LauncherConfig
		want  bool
	}{
		{"identical", LauncherConfig{Programs: []ProgramEntry{{Path: "a"}, {Path: "b"}}}, true},
		{"order matters", LauncherConfig{Programs: []ProgramEntry{{Path: "b"}, {Path: "a"}}}, false},
		{"layout flag differs", LauncherConfig{Programs: []ProgramEntry{{Path: "a"}, {Path: "b"}}, LayoutModeEnabled: true}, false},
		{"length differs", LauncherConfig{Programs: []ProgramEntry{{Path: "a"}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
}

func TestNilAndEmptyProgramsAreEqual(t *testing.T) {
	assert.True(t, LauncherConfig{}.Equal(DefaultLauncherConfig()))
}

func TestPaths(t *testing.T) {
	cfg := LauncherConfig{Programs: []ProgramEntry{{Path: "x"}, {Path: "x"}, {Path: "y"}}}
	assert.Equal(t, []string{"x", "x", "y"}, cfg.Paths())
}
