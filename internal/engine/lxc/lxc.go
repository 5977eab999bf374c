// Package lxc drives LXC containers through the lxc-* command-line tools.
//
// Every Facade operation runs one or a few lxc binaries synchronously and
// parses their plain-text output. Failures are reported as *Error values
// carrying a Kind, so validation, precondition, external and parse
// failures can be told apart.
package lxc

import (
	"context"
	"errors"
	"slices"

	"github.com/irahardianto/lxcctl/internal/platform/logger"
)

// Container states recognized by the lifecycle guards.
const (
	StateStopped = "STOPPED"
	StateRunning = "RUNNING"
)

// Binaries names the lxc executables the facade invokes.
type Binaries struct {
	List    string
	PS      string
	Info    string
	Start   string
	Stop    string
	Create  string
	Destroy string
}

// DefaultBinaries returns the stock lxc tool names.
func DefaultBinaries() Binaries {
	return Binaries{
		List:    "/usr/bin/lxc-ls",
		PS:      "/usr/bin/lxc-ps",
		Info:    "lxc-info",
		Start:   "lxc-start",
		Stop:    "lxc-stop",
		Create:  "lxc-create",
		Destroy: "lxc-destroy",
	}
}

// All returns the configured binaries in a stable order.
func (b Binaries) All() []string {
	return []string{b.List, b.PS, b.Info, b.Start, b.Stop, b.Create, b.Destroy}
}

// withDefaults fills empty entries from DefaultBinaries.
func (b Binaries) withDefaults() Binaries {
	d := DefaultBinaries()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&b.List, d.List)
	fill(&b.PS, d.PS)
	fill(&b.Info, d.Info)
	fill(&b.Start, d.Start)
	fill(&b.Stop, d.Stop)
	fill(&b.Create, d.Create)
	fill(&b.Destroy, d.Destroy)
	return b
}

const (
	defaultTemplate     = "debian-wheezy"
	defaultBackingStore = "lvm"
	defaultVGName       = "containers"
)

// Config holds facade settings. Zero fields take their defaults in New.
type Config struct {
	Binaries         Binaries
	AllowedTemplates []string
	BackingStore     string
	VGName           string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Binaries:         DefaultBinaries(),
		AllowedTemplates: []string{defaultTemplate},
		BackingStore:     defaultBackingStore,
		VGName:           defaultVGName,
	}
}

// Facade exposes container operations on top of a Runner.
type Facade struct {
	runner    Runner
	cfg       Config
	sanitizer *Sanitizer
}

// New creates a Facade. Empty Config fields are filled from DefaultConfig.
func New(runner Runner, cfg Config) *Facade {
	def := DefaultConfig()
	cfg.Binaries = cfg.Binaries.withDefaults()
	if len(cfg.AllowedTemplates) == 0 {
		cfg.AllowedTemplates = def.AllowedTemplates
	}
	if cfg.BackingStore == "" {
		cfg.BackingStore = def.BackingStore
	}
	if cfg.VGName == "" {
		cfg.VGName = def.VGName
	}
	return &Facade{
		runner:    runner,
		cfg:       cfg,
		sanitizer: NewSanitizer(),
	}
}

// Config returns the effective configuration.
func (f *Facade) Config() Config {
	return f.cfg
}

// run executes a binary and maps spawn failures to KindExternal.
func (f *Facade) run(ctx context.Context, op, container, name string, args ...string) (Output, error) {
	out, err := f.runner.Run(ctx, name, args...)
	if err != nil {
		logger.FromContext(ctx).Warn("command could not be run", "op", op, "cmd", CommandLine(name, args...), "error", err)
		return out, externalError(op, container, out.Stderr, err, "running %s: %v", name, err)
	}
	return out, nil
}

// runChecked is run plus a KindExternal error on non-zero exit.
func (f *Facade) runChecked(ctx context.Context, op, container, name string, args ...string) (Output, error) {
	out, err := f.run(ctx, op, container, name, args...)
	if err != nil {
		return out, err
	}
	if out.Failed() {
		logger.FromContext(ctx).Warn("command failed",
			"op", op, "cmd", CommandLine(name, args...), "exit_code", out.ExitCode, "stderr", out.Stderr)
		return out, externalError(op, container, combined(out), ErrCommandFailed,
			"%s exited with status %d", name, out.ExitCode)
	}
	return out, nil
}

// sanitize tags a Sanitizer failure with the operation name.
func (f *Facade) sanitize(op string, args []string) error {
	if err := f.sanitizer.Check(args); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op = op
		}
		return err
	}
	return nil
}

func (f *Facade) templateAllowed(template string) bool {
	return slices.Contains(f.cfg.AllowedTemplates, template)
}

func combined(out Output) string {
	switch {
	case out.Stderr == "":
		return out.Stdout
	case out.Stdout == "":
		return out.Stderr
	default:
		return out.Stdout + out.Stderr
	}
}
