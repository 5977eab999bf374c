// Package config loads user-level lxcctl settings.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/irahardianto/lxcctl/internal/engine/lxc"
	"github.com/irahardianto/lxcctl/internal/platform/logger"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrNegativeTimeout is returned when command_timeout is below zero.
var ErrNegativeTimeout = errors.New("command_timeout must not be negative")

// GlobalConfig holds user-level settings that persist across invocations.
type GlobalConfig struct {
	Binaries         BinariesConfig `yaml:"binaries"`
	AllowedTemplates []string       `yaml:"allowed_templates"`
	BackingStore     string         `yaml:"backingstore"`
	VGName           string         `yaml:"vgname"`
	CommandTimeout   time.Duration  `yaml:"command_timeout"`
	OutputColor      bool           `yaml:"-"` // derived from Output.Color
	OutputVerbose    bool           `yaml:"-"` // derived from Output.Verbose
	Output           OutputConfig   `yaml:"output"`
}

// BinariesConfig overrides the paths of individual lxc tools.
type BinariesConfig struct {
	List    string `yaml:"list"`
	PS      string `yaml:"ps"`
	Info    string `yaml:"info"`
	Start   string `yaml:"start"`
	Stop    string `yaml:"stop"`
	Create  string `yaml:"create"`
	Destroy string `yaml:"destroy"`
}

// OutputConfig holds output-related user preferences.
type OutputConfig struct {
	Color   *bool `yaml:"color"`
	Verbose *bool `yaml:"verbose"`
}

// LXC converts the settings into a facade configuration. Empty values are
// left for lxc.New to default.
func (c *GlobalConfig) LXC() lxc.Config {
	return lxc.Config{
		Binaries: lxc.Binaries{
			List:    c.Binaries.List,
			PS:      c.Binaries.PS,
			Info:    c.Binaries.Info,
			Start:   c.Binaries.Start,
			Stop:    c.Binaries.Stop,
			Create:  c.Binaries.Create,
			Destroy: c.Binaries.Destroy,
		},
		AllowedTemplates: c.AllowedTemplates,
		BackingStore:     c.BackingStore,
		VGName:           c.VGName,
	}
}

// Loader reads configuration through an afero file system.
type Loader struct {
	fs      afero.Fs
	getenv  func(string) string
	homeDir func() (string, error)
}

// NewLoader creates a Loader on the given file system.
// Uses os.Getenv and os.UserHomeDir by default.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv, homeDir: os.UserHomeDir}
}

// NewLoaderWithEnv creates a Loader with a custom getenv function for testability.
func NewLoaderWithEnv(fs afero.Fs, getenv func(string) string) *Loader {
	l := NewLoader(fs)
	l.getenv = getenv
	return l
}

// DefaultPath returns ~/.config/lxcctl/config.yaml.
func (l *Loader) DefaultPath() (string, error) {
	home, err := l.homeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lxcctl", "config.yaml"), nil
}

// LoadGlobalConfig reads configuration from DefaultPath.
// If the home directory cannot be determined, defaults are used.
func (l *Loader) LoadGlobalConfig(ctx context.Context) (*GlobalConfig, error) {
	path, err := l.DefaultPath()
	if err != nil {
		log := logger.FromContext(ctx)
		log.Debug("no home directory, using default config", "error", err)
		cfg := defaultGlobalConfig()
		applyEnvOverrides(cfg, l.getenv, log)
		return cfg, nil
	}
	return l.LoadGlobalConfigFrom(ctx, path)
}

// LoadGlobalConfigFrom reads configuration from a specific path.
// If the file does not exist, default values are returned (not an error).
// Environment variables override file values.
func (l *Loader) LoadGlobalConfigFrom(ctx context.Context, path string) (*GlobalConfig, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading global config", "path", path)
	cfg := defaultGlobalConfig()

	path = filepath.Clean(path)

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			applyEnvOverrides(cfg, l.getenv, log)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.Output.Color != nil {
		cfg.OutputColor = *cfg.Output.Color
	}
	if cfg.Output.Verbose != nil {
		cfg.OutputVerbose = *cfg.Output.Verbose
	}

	applyEnvOverrides(cfg, l.getenv, log)

	if cfg.CommandTimeout < 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNegativeTimeout)
	}
	return cfg, nil
}

// LoadGlobalConfig reads user-level configuration using the OS file system.
func LoadGlobalConfig(ctx context.Context) (*GlobalConfig, error) {
	return NewLoader(afero.NewOsFs()).LoadGlobalConfig(ctx)
}

// LoadGlobalConfigFrom reads user-level configuration from a specific path using the OS file system.
func LoadGlobalConfigFrom(ctx context.Context, path string) (*GlobalConfig, error) {
	return NewLoader(afero.NewOsFs()).LoadGlobalConfigFrom(ctx, path)
}

func defaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		OutputColor: true,
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
// The getenv parameter abstracts os.Getenv for testability.
func applyEnvOverrides(cfg *GlobalConfig, getenv func(string) string, log *slog.Logger) {
	if timeout := getenv("LXCCTL_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d < 0 {
			log.Warn("invalid LXCCTL_TIMEOUT value, ignoring", "value", timeout, "error", err)
		} else {
			cfg.CommandTimeout = d
		}
	}

	if store := getenv("LXCCTL_BACKINGSTORE"); store != "" {
		cfg.BackingStore = store
	}

	if vg := getenv("LXCCTL_VGNAME"); vg != "" {
		cfg.VGName = vg
	}

	if templates := getenv("LXCCTL_TEMPLATES"); templates != "" {
		var list []string
		for _, t := range strings.Split(templates, ",") {
			if t = strings.TrimSpace(t); t != "" {
				list = append(list, t)
			}
		}
		if len(list) > 0 {
			cfg.AllowedTemplates = list
		}
	}

	if noColor := getenv("LXCCTL_NO_COLOR"); noColor != "" {
		// Any truthy value disables color.
		noColor = strings.ToLower(noColor)
		if noColor == "1" || noColor == "true" || noColor == "yes" {
			cfg.OutputColor = false
		}
	}
}
