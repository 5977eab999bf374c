package lxc

import (
	"context"

	"github.com/irahardianto/lxcctl/internal/platform/logger"
)

// Info returns the parsed lxc-info record for container.
func (f *Facade) Info(ctx context.Context, container string) (Info, error) {
	const op = "info"
	logger.FromContext(ctx).Debug("inspecting container", "container", container)

	out, err := f.runChecked(ctx, op, container, f.cfg.Binaries.Info, "-n", container)
	if err != nil {
		return nil, err
	}

	info, err := ParseInfo(out.Stdout)
	if err != nil {
		return nil, parseError(op, container, out.Stdout, err)
	}
	return info, nil
}

// Start starts a STOPPED container in the background and returns its
// info record as reported after the start command returned.
func (f *Facade) Start(ctx context.Context, container string) (Info, error) {
	return f.transition(ctx, transition{
		op:        "start",
		container: container,
		from:      StateStopped,
		wrongErr:  ErrNotStopped,
		wrongMsg:  "container %s is not stopped",
		binary:    f.cfg.Binaries.Start,
		args:      []string{"-d", "-n", container},
	})
}

// Stop stops a RUNNING container and returns its info record as reported
// after the stop command returned.
func (f *Facade) Stop(ctx context.Context, container string) (Info, error) {
	return f.transition(ctx, transition{
		op:        "stop",
		container: container,
		from:      StateRunning,
		wrongErr:  ErrNotRunning,
		wrongMsg:  "container %s is not running",
		binary:    f.cfg.Binaries.Stop,
		args:      []string{"-n", container},
	})
}

type transition struct {
	op        string
	container string
	from      string
	wrongErr  error
	wrongMsg  string
	binary    string
	args      []string
}

func (f *Facade) transition(ctx context.Context, t transition) (Info, error) {
	log := logger.FromContext(ctx)

	if err := f.requireExists(ctx, t.op, t.container); err != nil {
		return nil, err
	}

	info, err := f.Info(ctx, t.container)
	if err != nil {
		return nil, err
	}
	if state := info.State(); state != t.from {
		log.Debug("container in wrong state", "op", t.op, "container", t.container, "state", state)
		return nil, preconditionError(t.op, t.container, t.wrongErr, t.wrongMsg, t.container)
	}

	if _, err := f.runChecked(ctx, t.op, t.container, t.binary, t.args...); err != nil {
		return nil, err
	}
	log.Info("container "+t.op+" issued", "container", t.container)

	return f.Info(ctx, t.container)
}

// Delete destroys container. A RUNNING container is stopped first when
// stopIfRunning is set; the outcome of that stop is logged and otherwise
// ignored. Without stopIfRunning a RUNNING container is an error.
// The raw output of the destroy command is returned.
func (f *Facade) Delete(ctx context.Context, container string, stopIfRunning bool) (string, error) {
	const op = "delete"
	log := logger.FromContext(ctx)

	info, err := f.Info(ctx, container)
	if err != nil {
		return "", err
	}

	if info.State() == StateRunning {
		if !stopIfRunning {
			return "", preconditionError(op, container, ErrMustStop,
				"%s is running, you must stop it first", container)
		}
		if _, err := f.Stop(ctx, container); err != nil {
			log.Warn("stop before destroy failed, destroying anyway", "container", container, "error", err)
		}
	}

	out, err := f.runChecked(ctx, op, container, f.cfg.Binaries.Destroy, "-n", container)
	if err != nil {
		return "", err
	}
	log.Info("container destroyed", "container", container)
	return out.Stdout, nil
}
