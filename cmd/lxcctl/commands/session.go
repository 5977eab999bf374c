package commands

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/irahardianto/lxcctl/internal/engine/config"
	"github.com/irahardianto/lxcctl/internal/engine/formatter"
	"github.com/irahardianto/lxcctl/internal/engine/lxc"
	"github.com/irahardianto/lxcctl/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Production dependencies, replaced in tests.
var (
	lookPath  lxc.LookPathFunc = exec.LookPath
	newRunner                  = func(timeout time.Duration) lxc.Runner { return lxc.NewExecRunner(timeout) }
)

// session bundles what a command needs to run one facade operation.
// This is the composition root: it instantiates production dependencies.
type session struct {
	cmd    *cobra.Command
	cfg    *config.GlobalConfig
	facade *lxc.Facade
}

// openSession loads configuration, checks the lxc tools and builds the facade.
// On failure the error is rendered as a Result for op before returning.
func openSession(cmd *cobra.Command, op, container string) (*session, error) {
	ctx := cmd.Context()
	s := &session{cmd: cmd}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, s.fail(op, container, err)
	}
	s.cfg = cfg

	lc := cfg.LXC()
	if err := lxc.CheckBinaries(lookPath, lc.Binaries); err != nil {
		return nil, s.fail(op, container, err)
	}

	s.facade = lxc.New(newRunner(cfg.CommandTimeout), lc)
	logger.FromContext(ctx).Debug("session ready", "op", op, "timeout", cfg.CommandTimeout)
	return s, nil
}

func loadConfig(ctx context.Context) (*config.GlobalConfig, error) {
	if flagConfig != "" {
		cfg, err := config.LoadGlobalConfigFrom(ctx, flagConfig)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadGlobalConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func (s *session) formatter() formatter.Formatter {
	if flagJSON {
		return formatter.NewJSONFormatter()
	}
	color, verbose := !flagNoColor, flagVerbose
	if s.cfg != nil {
		color = color && s.cfg.OutputColor
		verbose = verbose || s.cfg.OutputVerbose
	}
	return formatter.NewCLIFormatter(color, verbose)
}

// finish renders the outcome of an operation. A non-nil err is rendered as
// a failure and returned wrapped in errReported.
func (s *session) finish(res formatter.Result, err error) error {
	if err != nil {
		return s.fail(res.Op, res.Container, err)
	}
	res.OK = true
	s.write(s.cmd.OutOrStdout(), s.formatter().Format(res))
	logger.FromContext(s.cmd.Context()).Debug("command completed", "op", res.Op, "container", res.Container)
	return nil
}

func (s *session) fail(op, container string, err error) error {
	logger.FromContext(s.cmd.Context()).Debug("command failed", "op", op, "container", container, "error", err)

	out := s.formatter().Format(formatter.Failure(op, container, err))
	w := s.cmd.ErrOrStderr()
	if flagJSON {
		w = s.cmd.OutOrStdout()
	}
	s.write(w, out)
	return fmt.Errorf("%w: %w", errReported, err)
}

func (s *session) write(w io.Writer, out string) {
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out += "\n"
	}
	fmt.Fprint(w, out)
}
