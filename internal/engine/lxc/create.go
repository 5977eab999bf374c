package lxc

import (
	"context"
	"fmt"
	"strings"

	"github.com/irahardianto/lxcctl/internal/platform/logger"
)

// CreateOptions describes a container to create. Empty BackingStore and
// VGName take the facade defaults. VGName is only passed for the lvm
// backing store.
type CreateOptions struct {
	Name         string
	Template     string
	DiskSize     string
	BackingStore string
	VGName       string
}

// CreateResult holds the output of a confirmed lxc-create run.
type CreateResult struct {
	Name   string
	Output string
}

// CreateArgs assembles the lxc-create arguments for opts after defaults
// have been applied.
func CreateArgs(opts CreateOptions) []string {
	args := []string{"-t", opts.Template, "--fssize", opts.DiskSize}
	if opts.BackingStore == defaultBackingStore {
		args = append(args, "--vgname", opts.VGName)
	}
	return append(args, "-B", opts.BackingStore, "-n", opts.Name)
}

// createdMarker is the text lxc-create prints when it succeeds.
func createdMarker(name string) string {
	return fmt.Sprintf("'%s' created", name)
}

// Create creates a container. Arguments are validated before any command
// runs. Creation succeeds only when lxc-create exits zero and its output
// contains the "'<name>' created" marker.
func (f *Facade) Create(ctx context.Context, opts CreateOptions) (*CreateResult, error) {
	const op = "create"
	log := logger.FromContext(ctx)

	if opts.Name == "" {
		return nil, validationError(op, "", ErrNameRequired, "container name is required")
	}
	if opts.BackingStore == "" {
		opts.BackingStore = f.cfg.BackingStore
	}
	if opts.VGName == "" {
		opts.VGName = f.cfg.VGName
	}

	if !f.templateAllowed(opts.Template) {
		return nil, validationError(op, opts.Template, ErrTemplateNotAllowed,
			"%q is not an allowed template", opts.Template)
	}
	if !isAlnum(opts.DiskSize) {
		return nil, validationError(op, opts.DiskSize, ErrBadDiskSize,
			"%q has disallowed characters", opts.DiskSize)
	}

	args := CreateArgs(opts)
	if err := f.sanitize(op, args); err != nil {
		return nil, err
	}

	exists, err := f.exists(ctx, opts.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, preconditionError(op, opts.Name, ErrAlreadyExists, "%s already exists", opts.Name)
	}

	log.Info("creating container", "container", opts.Name, "template", opts.Template,
		"backingstore", opts.BackingStore, "fssize", opts.DiskSize)

	out, err := f.runChecked(ctx, op, opts.Name, f.cfg.Binaries.Create, args...)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(out.Stdout, createdMarker(opts.Name)) {
		log.Warn("lxc-create did not confirm creation", "container", opts.Name)
		return nil, externalError(op, opts.Name, combined(out), ErrNotCreated,
			"%s did not report %s", f.cfg.Binaries.Create, createdMarker(opts.Name))
	}

	log.Info("container created", "container", opts.Name)
	return &CreateResult{Name: opts.Name, Output: out.Stdout}, nil
}
