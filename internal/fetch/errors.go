// ABOUTME: Error taxonomy for fetch operations: sentinel kinds plus a uniform wrapper
// ABOUTME: InstallError carries the installer's exit code and captured output

package fetch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArguments = errors.New("need to supply a target and destination")
	ErrInvalidSpecifier = errors.New("invalid package specifier")
	ErrNotInstalled     = errors.New("package not installed")
	ErrInstallFailed    = errors.New("install failed")
	ErrUninstallFailed  = errors.New("uninstall failed")

	ErrInstallerNotFound = errors.New("installer not found on PATH")
)

// Error is the single error type surfaced by Fetcher operations. Use
// errors.Is against the Err* sentinels to tell failure kinds apart.
type Error struct {
	Op     string // "fetch", "uninstall"
	Target string
	Err    error
}

func (e *Error) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrap lifts err into an *Error unless it already is one.
func wrap(op, target string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return &Error{Op: op, Target: target, Err: err}
}

// InstallError reports a non-zero exit from the installer process.
// ExitCode is -1 when the process could not be started at all.
type InstallError struct {
	Command  string
	Args     []string
	ExitCode int
	Output   string
	kind     error
	cause    error
}

func (e *InstallError) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	if e.cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.kind, cmdline, e.cause)
	}
	msg := fmt.Sprintf("%v: %s exited with code %d", e.kind, cmdline, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

// Unwrap exposes both the failure kind sentinel and any start-up cause.
func (e *InstallError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}
