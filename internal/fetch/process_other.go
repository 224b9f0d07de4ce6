// ABOUTME: Fallback process handling where process groups are unavailable
// ABOUTME: Cancellation kills only the installer process itself

//go:build !unix

package fetch

import "os/exec"

func setProcGroup(*exec.Cmd) {}
