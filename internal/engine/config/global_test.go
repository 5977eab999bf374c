package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoadGlobalConfig_ValidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/config.yaml"
	writeFile(t, fs, path, `
binaries:
  list: /opt/lxc/bin/lxc-ls
allowed_templates: [debian-wheezy, alpine]
backingstore: dir
vgname: fastdisk
command_timeout: 2m
output:
  color: false
  verbose: true
`)

	cfg, err := NewLoaderWithEnv(fs, noEnv).LoadGlobalConfigFrom(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/lxc/bin/lxc-ls", cfg.Binaries.List)
	assert.Equal(t, []string{"debian-wheezy", "alpine"}, cfg.AllowedTemplates)
	assert.Equal(t, "dir", cfg.BackingStore)
	assert.Equal(t, "fastdisk", cfg.VGName)
	assert.Equal(t, 2*time.Minute, cfg.CommandTimeout)
	assert.False(t, cfg.OutputColor)
	assert.True(t, cfg.OutputVerbose)
}

func TestLoadGlobalConfig_MissingFile(t *testing.T) {
	loader := NewLoaderWithEnv(afero.NewMemMapFs(), noEnv)

	cfg, err := loader.LoadGlobalConfigFrom(context.Background(), "/nonexistent/path/config.yaml")
	require.NoError(t, err, "missing file should not error")
	assert.Zero(t, cfg.CommandTimeout)
	assert.True(t, cfg.OutputColor)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/config.yaml", "binaries: [unterminated")

	_, err := NewLoaderWithEnv(fs, noEnv).LoadGlobalConfigFrom(context.Background(), "/config.yaml")
	assert.Error(t, err)
}

func TestLoadGlobalConfig_NegativeTimeout(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/config.yaml", "command_timeout: -5s\n")

	_, err := NewLoaderWithEnv(fs, noEnv).LoadGlobalConfigFrom(context.Background(), "/config.yaml")
	assert.ErrorIs(t, err, ErrNegativeTimeout)
}

func TestLoadGlobalConfig_EnvOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/config.yaml", `
backingstore: dir
command_timeout: 10m
`)

	env := envMap(map[string]string{
		"LXCCTL_TIMEOUT":      "30s",
		"LXCCTL_BACKINGSTORE": "lvm",
		"LXCCTL_VGNAME":       "vg0",
		"LXCCTL_TEMPLATES":    "alpine, debian-bookworm ,",
		"LXCCTL_NO_COLOR":     "yes",
	})

	cfg, err := NewLoaderWithEnv(fs, env).LoadGlobalConfigFrom(context.Background(), "/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.CommandTimeout)
	assert.Equal(t, "lvm", cfg.BackingStore)
	assert.Equal(t, "vg0", cfg.VGName)
	assert.Equal(t, []string{"alpine", "debian-bookworm"}, cfg.AllowedTemplates)
	assert.False(t, cfg.OutputColor, "LXCCTL_NO_COLOR should disable color")
}

func TestLoadGlobalConfig_InvalidEnvTimeoutIgnored(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/config.yaml", "command_timeout: 1m\n")

	env := envMap(map[string]string{"LXCCTL_TIMEOUT": "soon"})
	cfg, err := NewLoaderWithEnv(fs, env).LoadGlobalConfigFrom(context.Background(), "/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.CommandTimeout, "file timeout should survive an invalid env value")
}

func TestLoadGlobalConfig_DefaultPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/home/ops/.config/lxcctl/config.yaml", "vgname: fromhome\n")

	loader := NewLoaderWithEnv(fs, noEnv)
	loader.homeDir = func() (string, error) { return "/home/ops", nil }

	cfg, err := loader.LoadGlobalConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fromhome", cfg.VGName)
}

func TestLoadGlobalConfig_NoHomeDir(t *testing.T) {
	loader := NewLoaderWithEnv(afero.NewMemMapFs(), envMap(map[string]string{"LXCCTL_VGNAME": "vg1"}))
	loader.homeDir = func() (string, error) { return "", errors.New("no home") }

	cfg, err := loader.LoadGlobalConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "vg1", cfg.VGName)
}

func TestGlobalConfig_LXC(t *testing.T) {
	cfg := &GlobalConfig{
		Binaries:         BinariesConfig{Destroy: "/sbin/lxc-destroy"},
		AllowedTemplates: []string{"alpine"},
		BackingStore:     "btrfs",
		VGName:           "vg0",
	}

	lc := cfg.LXC()
	assert.Equal(t, "/sbin/lxc-destroy", lc.Binaries.Destroy)
	assert.Empty(t, lc.Binaries.List, "unset binaries stay empty for lxc.New defaults")
	assert.Equal(t, "btrfs", lc.BackingStore)
	assert.Equal(t, "vg0", lc.VGName)
	assert.Equal(t, []string{"alpine"}, lc.AllowedTemplates)
}
