package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grid-launcher/internal/config"
)

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configPath, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), config.DefaultFileName)
}

func TestListEmpty(t *testing.T) {
	out, err := run(t, tempConfig(t), "list")

	require.NoError(t, err)
	assert.Equal(t, "no programs configured\nlayout mode: off\n", out)
}

func TestAddMoveRemove(t *testing.T) {
	cfg := tempConfig(t)
	a, b := filepath.Join(t.TempDir(), "a"), filepath.Join(t.TempDir(), "b")

	_, err := run(t, cfg, "add", a)
	require.NoError(t, err)
	_, err = run(t, cfg, "add", b)
	require.NoError(t, err)
	_, err = run(t, cfg, "add", a)
	require.NoError(t, err)

	out, err := run(t, cfg, "move", "1", "0")
	require.NoError(t, err)
	assert.Equal(t, "moved 1 to 0\n", out)

	out, err = run(t, cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, "0\t"+b+"\n1\t"+a+"\n2\t"+a+"\nlayout mode: off\n", out)

	out, err = run(t, cfg, "remove", a)
	require.NoError(t, err)
	assert.Equal(t, "removed 2 entries\n", out)

	stored := config.NewStore(cfg, nil).Load()
	assert.Equal(t, []string{b}, stored.Paths())
}

func TestRemoveUnknownPathFails(t *testing.T) {
	_, err := run(t, tempConfig(t), "remove", "/nowhere")

	assert.Error(t, err)
}

func TestMoveValidatesIndexes(t *testing.T) {
	cfg := tempConfig(t)
	_, err := run(t, cfg, "add", "/bin/a")
	require.NoError(t, err)

	_, err = run(t, cfg, "move", "0", "5")
	assert.Error(t, err)

	_, err = run(t, cfg, "move", "x", "0")
	assert.Error(t, err)
}

func TestLayoutToggle(t *testing.T) {
	cfg := tempConfig(t)

	out, err := run(t, cfg, "layout", "on")
	require.NoError(t, err)
	assert.Equal(t, "layout mode: on\n", out)
	assert.True(t, config.NewStore(cfg, nil).Load().LayoutModeEnabled)

	_, err = run(t, cfg, "layout", "maybe")
	assert.Error(t, err)
}

func TestLaunchRejectsBadIndex(t *testing.T) {
	_, err := run(t, tempConfig(t), "launch", "0")

	assert.Error(t, err)
}

func TestPathHonoursEnvironment(t *testing.T) {
	want := filepath.Join(t.TempDir(), "from-env.json")
	t.Setenv(config.EnvConfigPath, want)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"path", "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, want+"\n", out.String())
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/from/env.json")
	want := tempConfig(t)

	out, err := run(t, want, "path")

	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestInvalidSettingsRejected(t *testing.T) {
	_, err := run(t, tempConfig(t), "list", "--icon-size", "0")

	assert.Error(t, err)
}

func TestAddReportsSaveFailure(t *testing.T) {
	// the config path's parent is a regular file, so the directory cannot be created
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	cfg := filepath.Join(blocker, config.DefaultFileName)

	out, err := run(t, cfg, "add", "/bin/a")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save config")
	assert.NotContains(t, out, "added")
}

func TestLayoutReportsSaveFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := run(t, filepath.Join(blocker, config.DefaultFileName), "layout", "on")

	assert.Error(t, err)
}
