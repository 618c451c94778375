package runner

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		path       string
		executable bool
		want       []string
	}{
		{"windows exe", "windows", `C:\Apps\app.exe`, true, []string{"cmd", "/C", "start", "", `C:\Apps\app.exe`}},
		{"windows shortcut", "windows", `C:\Desk\Game.lnk`, false, []string{"cmd", "/C", "start", "", `C:\Desk\Game.lnk`}},
		{"darwin", "darwin", "/Applications/Safari.app", false, []string{"open", "/Applications/Safari.app"}},
		{"linux binary", "linux", "/usr/bin/firefox", true, []string{"/usr/bin/firefox"}},
		{"linux document", "linux", "/home/me/notes.txt", false, []string{"xdg-open", "/home/me/notes.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Command(tt.goos, tt.path, tt.executable))
		})
	}
}

func newRecordingRunner(goos string, err error) (*ExecRunner, *[]*exec.Cmd) {
	var started []*exec.Cmd
	r := NewExecRunner(nil)
	r.goos = goos
	r.start = func(cmd *exec.Cmd) error {
		started = append(started, cmd)
		return err
	}
	return r, &started
}

func TestRunUsesProgramDirectory(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "tool.sh")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))

	r, started := newRecordingRunner("linux", nil)
	require.NoError(t, r.Run(bin))

	require.Len(t, *started, 1)
	cmd := (*started)[0]
	assert.Equal(t, []string{bin}, cmd.Args)
	assert.Equal(t, dir, cmd.Dir)
}

func TestRunNonExecutableUsesOpener(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "readme.txt")
	require.NoError(t, os.WriteFile(doc, []byte("hi"), 0o644))

	r, started := newRecordingRunner("linux", nil)
	require.NoError(t, r.Run(doc))

	assert.Equal(t, []string{"xdg-open", doc}, (*started)[0].Args)
}

func TestRunRejectsEmptyPath(t *testing.T) {
	r, started := newRecordingRunner("linux", nil)

	assert.ErrorIs(t, r.Run("  "), ErrEmptyPath)
	assert.Empty(t, *started)
}

func TestRunWrapsStartError(t *testing.T) {
	boom := errors.New("boom")
	r, _ := newRecordingRunner("linux", boom)

	err := r.Run("/does/not/exist")

	assert.ErrorIs(t, err, boom)
}

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "run")
	txt := filepath.Join(dir, "doc")
	require.NoError(t, os.WriteFile(exe, nil, 0o755))
	require.NoError(t, os.WriteFile(txt, nil, 0o644))

	assert.True(t, isExecutable(exe))
	assert.False(t, isExecutable(txt))
	assert.False(t, isExecutable(dir))
	assert.False(t, isExecutable(filepath.Join(dir, "missing")))
}
