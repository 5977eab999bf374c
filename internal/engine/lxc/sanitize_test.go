package lxc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizer_Check_RejectsEachDenylistedCharacter(t *testing.T) {
	s := NewSanitizer()
	for _, ch := range []string{"/", ";", ":", "%", "^", "$", "#", "@", "!", "`", "'", `"`, "*", "(", ")", `\`} {
		t.Run(ch, func(t *testing.T) {
			bad := "aux" + ch + "x"
			err := s.Check([]string{"-n", "web01", bad})
			require.Error(t, err)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, KindValidation, e.Kind)
			assert.Equal(t, bad, e.Arg)
			assert.Contains(t, err.Error(), bad)
			assert.ErrorIs(t, err, ErrBadCharacters)
		})
	}
}

func TestSanitizer_Check_ReportsFirstOffendingToken(t *testing.T) {
	err := NewSanitizer().Check([]string{"ok", "a;b", "c/d"})
	require.Error(t, err)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "a;b", e.Arg)
}

func TestSanitizer_Check_CleanArgs(t *testing.T) {
	s := NewSanitizer()
	assert.NoError(t, s.Check(nil))
	assert.NoError(t, s.Check([]string{"-t", "debian-wheezy", "--fssize", "10G", "-B", "lvm", "-n", "web_01.example"}))
}
