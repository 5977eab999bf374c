package lxc

import (
	"errors"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBinaries_AllPresent(t *testing.T) {
	var looked []string
	lookPath := func(file string) (string, error) {
		looked = append(looked, file)
		return file, nil
	}

	require.NoError(t, CheckBinaries(lookPath, Binaries{}))
	assert.Equal(t, DefaultBinaries().All(), looked)
}

func TestCheckBinaries_Missing(t *testing.T) {
	lookPath := func(file string) (string, error) {
		if file == "lxc-create" {
			return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
		}
		return file, nil
	}

	err := CheckBinaries(lookPath, DefaultBinaries())
	require.Error(t, err)

	var pe *PreflightError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "lxc-create", pe.Binary)
	assert.Contains(t, pe.Hint, "apt install lxc")
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestClassifyLookupError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"permission", &exec.Error{Name: "lxc-ls", Err: fs.ErrPermission}, "not executable"},
		{"not exist", &exec.Error{Name: "/usr/bin/lxc-ls", Err: fs.ErrNotExist}, "required but not found"},
		{"other", errors.New("weird failure"), "cannot be used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pe := classifyLookupError("lxc-ls", tt.err)
			assert.Contains(t, pe.Hint, tt.want)
			assert.Contains(t, pe.Error(), "❌")
			assert.ErrorIs(t, pe, tt.err)
		})
	}
}
