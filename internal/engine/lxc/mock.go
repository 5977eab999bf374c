package lxc

import (
	"context"
	"fmt"
	"slices"
)

// MockResponse is one scripted reply of a MockRunner.
type MockResponse struct {
	Output Output
	Err    error
}

// Stdout is a successful response printing s.
func Stdout(s string) MockResponse {
	return MockResponse{Output: Output{Stdout: s}}
}

// Exit is a response exiting with code after printing stdout and stderr.
func Exit(code int, stdout, stderr string) MockResponse {
	return MockResponse{Output: Output{Stdout: stdout, Stderr: stderr, ExitCode: code}}
}

// MockInvocation records one call to MockRunner.Run.
type MockInvocation struct {
	Name string
	Args []string
}

// MockRunner is a test double for Runner. Responses are scripted per binary
// and consumed in order; the last response of a binary repeats.
type MockRunner struct {
	Responses   map[string][]MockResponse
	Invocations []MockInvocation
}

// NewMockRunner creates an empty MockRunner.
func NewMockRunner() *MockRunner {
	return &MockRunner{Responses: make(map[string][]MockResponse)}
}

// On appends responses for the binary name and returns the runner.
func (m *MockRunner) On(name string, responses ...MockResponse) *MockRunner {
	m.Responses[name] = append(m.Responses[name], responses...)
	return m
}

// Run records the invocation and returns the next scripted response.
// Unscripted binaries fail so tests notice unexpected commands.
func (m *MockRunner) Run(_ context.Context, name string, args ...string) (Output, error) {
	m.Invocations = append(m.Invocations, MockInvocation{Name: name, Args: slices.Clone(args)})

	queue := m.Responses[name]
	if len(queue) == 0 {
		return Output{}, fmt.Errorf("mock runner: unexpected command %s", CommandLine(name, args...))
	}
	resp := queue[0]
	if len(queue) > 1 {
		m.Responses[name] = queue[1:]
	}
	return resp.Output, resp.Err
}

// Calls returns the invocations of the binary name.
func (m *MockRunner) Calls(name string) []MockInvocation {
	var calls []MockInvocation
	for _, inv := range m.Invocations {
		if inv.Name == name {
			calls = append(calls, inv)
		}
	}
	return calls
}

// Names returns the binary names in invocation order.
func (m *MockRunner) Names() []string {
	names := make([]string, 0, len(m.Invocations))
	for _, inv := range m.Invocations {
		names = append(names, inv.Name)
	}
	return names
}
