// ABOUTME: Process spawners for the installer: captured (os/exec) and live (pty)
// ABOUTME: Non-zero exit is a result, not an error; errors mean the process never ran

package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/creack/pty"
)

const (
	maxInstallerOutput = 10 * 1024 * 1024 // 10MB

	// waitDelay bounds how long Wait keeps reading output after the
	// installer is killed.
	waitDelay = 2 * time.Second
)

// SpawnResult is the outcome of a finished process.
type SpawnResult struct {
	ExitCode int
	Output   string // combined stdout and stderr
}

// Spawner runs command with args in dir and waits for it to exit.
// It returns an error only when the process could not be run to completion
// (not found, could not start, cancelled); a non-zero exit is reported
// through SpawnResult.ExitCode.
type Spawner interface {
	Spawn(ctx context.Context, command string, args []string, dir string) (SpawnResult, error)
}

// SpawnFunc adapts a function to the Spawner interface.
type SpawnFunc func(ctx context.Context, command string, args []string, dir string) (SpawnResult, error)

// Spawn calls fn.
func (fn SpawnFunc) Spawn(ctx context.Context, command string, args []string, dir string) (SpawnResult, error) {
	return fn(ctx, command, args, dir)
}

// ExecSpawner runs the installer with os/exec, capturing combined output.
type ExecSpawner struct {
	Env []string // nil inherits the current environment
}

// Spawn implements Spawner.
func (s ExecSpawner) Spawn(ctx context.Context, command string, args []string, dir string) (SpawnResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Env = s.Env
	setProcGroup(cmd)
	cmd.WaitDelay = waitDelay

	cw := &cappedWriter{limit: maxInstallerOutput}
	cmd.Stdout = cw
	cmd.Stderr = cw

	err := cmd.Run()
	return exitResult(ctx, cw.String(), err)
}

// PTYSpawner runs the installer attached to a pseudo-terminal so it keeps
// its interactive progress output, teeing everything to Out while capturing.
type PTYSpawner struct {
	Out io.Writer
}

// Spawn implements Spawner.
func (s PTYSpawner) Spawn(ctx context.Context, command string, args []string, dir string) (SpawnResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir

	f, err := pty.Start(cmd)
	if err != nil {
		return SpawnResult{ExitCode: -1}, fmt.Errorf("starting %s: %w", command, err)
	}
	defer f.Close()

	cw := &cappedWriter{limit: maxInstallerOutput}
	var w io.Writer = cw
	if s.Out != nil {
		w = io.MultiWriter(cw, s.Out)
	}
	// Reading the pty master fails with EIO once the child exits.
	_, _ = io.Copy(w, f)

	err = cmd.Wait()
	return exitResult(ctx, cw.String(), err)
}

// exitResult converts a Run/Wait error into a SpawnResult.
func exitResult(ctx context.Context, output string, err error) (SpawnResult, error) {
	if err == nil {
		return SpawnResult{Output: output}, nil
	}
	if ctx.Err() != nil {
		return SpawnResult{ExitCode: -1, Output: output}, fmt.Errorf("installer interrupted: %w", ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return SpawnResult{ExitCode: exitErr.ExitCode(), Output: output}, nil
	}
	return SpawnResult{ExitCode: -1, Output: output}, err
}

// cappedWriter keeps the first limit bytes and silently drops the rest so a
// chatty installer never blocks on a full pipe.
type cappedWriter struct {
	buf       bytes.Buffer
	limit     int
	written   int
	truncated bool
}

func (c *cappedWriter) Write(p []byte) (int, error) {
	remaining := c.limit - c.written
	if remaining <= 0 {
		c.truncated = true
		return len(p), nil
	}
	chunk := p
	if len(chunk) > remaining {
		chunk = chunk[:remaining]
		c.truncated = true
	}
	n, _ := c.buf.Write(chunk)
	c.written += n
	return len(p), nil
}

// String returns the captured text, marking truncation.
func (c *cappedWriter) String() string {
	out := c.buf.String()
	if c.truncated {
		out += "\n... [output truncated: exceeded 10MB limit]"
	}
	return out
}
