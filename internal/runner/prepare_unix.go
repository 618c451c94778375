//go:build unix

package runner

import (
	"os/exec"
	"syscall"
)

// prepare puts the child in its own process group so closing the launcher
// does not take it down.
func prepare(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
