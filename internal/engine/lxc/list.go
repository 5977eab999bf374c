package lxc

import (
	"context"
	"slices"
	"strings"

	"github.com/irahardianto/lxcctl/internal/platform/logger"
)

// ListContainers returns the raw output of the list binary.
func (f *Facade) ListContainers(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("listing containers")

	out, err := f.runChecked(ctx, "list", "", f.cfg.Binaries.List)
	if err != nil {
		return "", err
	}
	return out.Stdout, nil
}

// ContainerNames returns the container names in the list output. lxc-ls
// prints names one per line or in columns, so any whitespace separates.
func (f *Facade) ContainerNames(ctx context.Context) ([]string, error) {
	raw, err := f.ListContainers(ctx)
	if err != nil {
		return nil, err
	}
	return strings.Fields(raw), nil
}

// exists reports whether name is an exact entry of the container list.
func (f *Facade) exists(ctx context.Context, name string) (bool, error) {
	names, err := f.ContainerNames(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// requireExists returns a KindPrecondition error if container is not listed.
func (f *Facade) requireExists(ctx context.Context, op, container string) error {
	ok, err := f.exists(ctx, container)
	if err != nil {
		return err
	}
	if !ok {
		return preconditionError(op, container, ErrNotFound, "No such container %s", container)
	}
	return nil
}

// ListProcesses returns the processes running in container. Extra ps
// arguments are sanitized and passed after "--". The header row is
// included as the first record.
func (f *Facade) ListProcesses(ctx context.Context, container string, psargs ...string) ([]Process, error) {
	const op = "ps"
	log := logger.FromContext(ctx)
	log.Debug("listing container processes", "container", container)

	args := []string{"-n", container}
	if len(psargs) > 0 {
		if err := f.sanitize(op, psargs); err != nil {
			return nil, err
		}
		args = append(args, "--")
		args = append(args, psargs...)
	}

	if err := f.requireExists(ctx, op, container); err != nil {
		return nil, err
	}

	out, err := f.runChecked(ctx, op, container, f.cfg.Binaries.PS, args...)
	if err != nil {
		return nil, err
	}

	procs, err := ParseProcesses(out.Stdout, false)
	if err != nil {
		return nil, parseError(op, container, out.Stdout, err)
	}
	return procs, nil
}

// ListAllProcesses returns the processes of every container. Unlike
// ListProcesses, the header row is not emitted as a record.
func (f *Facade) ListAllProcesses(ctx context.Context, psargs ...string) ([]Process, error) {
	const op = "ps-all"
	logger.FromContext(ctx).Debug("listing processes of all containers")

	args := []string{"--lxc"}
	if len(psargs) > 0 {
		if err := f.sanitize(op, psargs); err != nil {
			return nil, err
		}
		args = append(args, "--")
		args = append(args, psargs...)
	}

	out, err := f.runChecked(ctx, op, "", f.cfg.Binaries.PS, args...)
	if err != nil {
		return nil, err
	}

	procs, err := ParseProcesses(out.Stdout, true)
	if err != nil {
		return nil, parseError(op, "", out.Stdout, err)
	}
	return procs, nil
}
