package lxc

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// LookPathFunc resolves an executable name, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// PreflightError wraps a missing or unusable lxc binary with a user-facing hint.
type PreflightError struct {
	Binary string
	Hint   string
	Cause  error
}

func (e *PreflightError) Error() string {
	return fmt.Sprintf("❌ %s", e.Hint)
}

func (e *PreflightError) Unwrap() error {
	return e.Cause
}

// CheckBinaries verifies that every configured lxc binary can be resolved.
// It must run before any facade operation so a missing tool is reported
// as such instead of as an empty container list.
func CheckBinaries(lookPath LookPathFunc, bins Binaries) error {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, bin := range bins.withDefaults().All() {
		if _, err := lookPath(bin); err != nil {
			return classifyLookupError(bin, err)
		}
	}
	return nil
}

// classifyLookupError inspects the lookup error to produce actionable hints.
func classifyLookupError(bin string, err error) *PreflightError {
	msg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, fs.ErrPermission) || strings.Contains(msg, "permission denied"):
		return &PreflightError{
			Binary: bin,
			Hint:   fmt.Sprintf("%s is not executable by the current user. Check its permissions or run as root.", bin),
			Cause:  err,
		}
	case errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || strings.Contains(msg, "not found"):
		return &PreflightError{
			Binary: bin,
			Hint:   fmt.Sprintf("%s is required but not found. Install the lxc tools (e.g. apt install lxc) or set its path in the config file.", bin),
			Cause:  err,
		}
	default:
		return &PreflightError{
			Binary: bin,
			Hint:   fmt.Sprintf("%s cannot be used: %v", bin, err),
			Cause:  err,
		}
	}
}
