// ABOUTME: Unix process group handling for installer runs
// ABOUTME: Cancellation kills the whole group so npm's child scripts die with it

//go:build unix

package fetch

import (
	"os/exec"
	"syscall"
)

// setProcGroup runs cmd in its own process group and makes cancellation
// kill that group.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
