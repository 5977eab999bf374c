// Package formatter renders facade results for the terminal or as JSON.
package formatter

import (
	"errors"

	"github.com/irahardianto/lxcctl/internal/engine/lxc"
)

// KindPreflight marks errors raised before any lxc command ran because a
// tool is missing. KindInternal marks errors that carry no facade kind.
const (
	KindPreflight lxc.Kind = "preflight"
	KindInternal  lxc.Kind = "internal"
)

// Result is the outcome of one lxcctl command.
type Result struct {
	Op        string        `json:"op"`
	Container string        `json:"container,omitempty"`
	OK        bool          `json:"ok"`
	Names     []string      `json:"containers,omitzero"`
	Info      lxc.Info      `json:"info,omitempty"`
	Processes []lxc.Process `json:"processes,omitempty"`
	Output    string        `json:"output,omitempty"`
	Error     *ErrorDetail  `json:"error,omitempty"`
}

// ErrorDetail describes a failed command.
type ErrorDetail struct {
	Kind    lxc.Kind `json:"kind"`
	Message string   `json:"message"`
	Arg     string   `json:"arg,omitempty"`
	Output  string   `json:"output,omitempty"`
}

// Formatter formats a Result into a human-readable or machine-readable string.
type Formatter interface {
	Format(result Result) string
}

// Failure builds the Result for a failed operation.
func Failure(op, container string, err error) Result {
	return Result{
		Op:        op,
		Container: container,
		Error:     Detail(err),
	}
}

// Detail classifies err into an ErrorDetail.
func Detail(err error) *ErrorDetail {
	var e *lxc.Error
	if errors.As(err, &e) {
		return &ErrorDetail{Kind: e.Kind, Message: e.Error(), Arg: e.Arg, Output: e.Output}
	}
	var pe *lxc.PreflightError
	if errors.As(err, &pe) {
		return &ErrorDetail{Kind: KindPreflight, Message: pe.Hint}
	}
	return &ErrorDetail{Kind: KindInternal, Message: err.Error()}
}
