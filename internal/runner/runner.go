// Package runner starts programs chosen in the launcher.
package runner

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"grid-launcher/internal/logger"
)

var ErrEmptyPath = errors.New("empty program path")

// ExecRunner starts a detached child process per launch and never waits for
// it to finish.
type ExecRunner struct {
	goos   string
	start  func(cmd *exec.Cmd) error
	logger logger.Logger
}

func NewExecRunner(log logger.Logger) *ExecRunner {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &ExecRunner{
		goos:   runtime.GOOS,
		start:  startDetached,
		logger: log,
	}
}

func (r *ExecRunner) Run(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrEmptyPath
	}

	args := Command(r.goos, path, isExecutable(path))
	cmd := exec.Command(args[0], args[1:]...)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			cmd.Dir = dir
		}
	}
	prepare(cmd)

	r.logger.Debug("Runner", "exec", map[string]interface{}{
		"args": args,
		"dir":  cmd.Dir,
	})

	if err := r.start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", args[0], err)
	}
	return nil
}

// Command returns the argv used to open path on goos. Shortcuts and
// documents go through the platform opener.
func Command(goos, path string, executable bool) []string {
	switch goos {
	case "windows":
		// the empty string is start's window title argument
		return []string{"cmd", "/C", "start", "", path}
	case "darwin":
		return []string{"open", path}
	default:
		if executable {
			return []string{path}
		}
		return []string{"xdg-open", path}
	}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap the child so it does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}
