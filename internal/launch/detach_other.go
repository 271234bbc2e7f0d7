//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// detach puts the browser in its own process group so terminal signals
// sent to plinks do not reach it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
