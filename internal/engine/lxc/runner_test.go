package lxc

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helperCommand returns an ExecCommandFunc that re-runs the test binary as
// TestHelperProcess, which prints the given output and exits with code.
func helperCommand(stdout, stderr string, code int, sleep time.Duration) ExecCommandFunc {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...) //nolint:gosec // test helper re-executes the test binary
		cmd.Env = []string{
			"GO_WANT_HELPER_PROCESS=1",
			"GO_HELPER_STDOUT=" + stdout,
			"GO_HELPER_STDERR=" + stderr,
			fmt.Sprintf("GO_HELPER_EXIT_CODE=%d", code),
			fmt.Sprintf("GO_HELPER_SLEEP=%s", sleep),
		}
		return cmd
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	if d, err := time.ParseDuration(os.Getenv("GO_HELPER_SLEEP")); err == nil && d > 0 {
		time.Sleep(d)
	}
	fmt.Fprint(os.Stdout, os.Getenv("GO_HELPER_STDOUT"))
	fmt.Fprint(os.Stderr, os.Getenv("GO_HELPER_STDERR"))
	code, _ := strconv.Atoi(os.Getenv("GO_HELPER_EXIT_CODE"))
	os.Exit(code)
}

func TestExecRunner_CapturesOutput(t *testing.T) {
	r := NewExecRunner(0).WithExecCommand(helperCommand("state: RUNNING\n", "warning\n", 0, 0))

	out, err := r.Run(context.Background(), "lxc-info", "-n", "web01")
	require.NoError(t, err)
	assert.Equal(t, "state: RUNNING\n", out.Stdout)
	assert.Equal(t, "warning\n", out.Stderr)
	assert.Equal(t, 0, out.ExitCode)
	assert.False(t, out.Failed())
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	r := NewExecRunner(0).WithExecCommand(helperCommand("", "no such container\n", 2, 0))

	out, err := r.Run(context.Background(), "lxc-info", "-n", "ghost")
	require.NoError(t, err)
	assert.Equal(t, 2, out.ExitCode)
	assert.True(t, out.Failed())
	assert.Equal(t, "no such container\n", out.Stderr)
}

func TestExecRunner_Timeout(t *testing.T) {
	r := NewExecRunner(50 * time.Millisecond).WithExecCommand(helperCommand("", "", 0, 5*time.Second))

	_, err := r.Run(context.Background(), "lxc-stop", "-n", "web01")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "lxc-stop -n web01")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner(0)

	_, err := r.Run(context.Background(), "lxc-definitely-not-installed")
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestCommandLine_QuotesArguments(t *testing.T) {
	assert.Equal(t, "lxc-ps -n web01 -- 'ps aux'", CommandLine("lxc-ps", "-n", "web01", "--", "ps aux"))
	assert.Equal(t, "/usr/bin/lxc-ls", CommandLine("/usr/bin/lxc-ls"))
}
