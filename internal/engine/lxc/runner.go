package lxc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/alessio/shellescape"
	"github.com/irahardianto/lxcctl/internal/platform/logger"
)

// Output holds what a single command invocation produced.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether the command exited non-zero.
func (o Output) Failed() bool {
	return o.ExitCode != 0
}

// Runner executes an external command synchronously.
// A non-zero exit is reported through Output.ExitCode, not as an error;
// the error is reserved for commands that could not be run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// ExecCommandFunc creates the exec.Cmd for a command. Tests replace it.
type ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

// ExecRunner implements Runner with os/exec. Commands never go through a shell.
type ExecRunner struct {
	// Timeout bounds each command. Zero means no timeout.
	Timeout time.Duration

	execCommand ExecCommandFunc
}

// NewExecRunner creates an ExecRunner with the given per-command timeout.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout, execCommand: exec.CommandContext}
}

// WithExecCommand replaces the command constructor and returns the runner.
func (r *ExecRunner) WithExecCommand(fn ExecCommandFunc) *ExecRunner {
	r.execCommand = fn
	return r
}

// Run executes name with args and captures stdout, stderr and the exit code.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	line := CommandLine(name, args...)
	log := logger.FromContext(ctx)
	log.Debug("running command", "cmd", line)

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := r.execCommand(ctx, name, args...) // #nosec G204 -- argv is assembled by the facade and never passed to a shell

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, fmt.Errorf("%s: %w", line, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return out, fmt.Errorf("%s: %w", line, err)
		}
		out.ExitCode = exitErr.ExitCode()
	}

	log.Debug("command finished", "cmd", line, "exit_code", out.ExitCode, "duration", time.Since(start))
	return out, nil
}

// CommandLine renders argv as a shell-quoted string for logs and messages.
func CommandLine(name string, args ...string) string {
	return shellescape.QuoteCommand(append([]string{name}, args...))
}
