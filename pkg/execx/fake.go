// pkg/execx/fake.go
package execx

import (
	"context"
	"strings"
	"sync"
)

// FakeResult is one canned response of a FakeRunner.
type FakeResult struct {
	Stdout string
	Err    error
}

// FakeRunner is a Runner for tests. Responses are keyed by the full command
// line ("path arg1 arg2"); unmatched commands fail with *SpawnError.
type FakeRunner struct {
	mu        sync.Mutex
	Responses map[string]FakeResult
	Paths     map[string]string // LookPath results: name -> path
	Calls     []CommandSpec     // every Run invocation, in order
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Responses: make(map[string]FakeResult),
		Paths:     make(map[string]string),
	}
}

// Respond registers a canned stdout for a command line.
func (f *FakeRunner) Respond(line, stdout string) {
	f.Responses[line] = FakeResult{Stdout: stdout}
}

// Fail registers a canned error for a command line.
func (f *FakeRunner) Fail(line string, err error) {
	f.Responses[line] = FakeResult{Err: err}
}

func (f *FakeRunner) Run(_ context.Context, spec CommandSpec) (string, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, spec)
	f.mu.Unlock()

	if res, ok := f.Responses[spec.String()]; ok {
		return res.Stdout, res.Err
	}
	return "", &SpawnError{Path: spec.Path, Err: errUnexpectedCommand(spec.String())}
}

func (f *FakeRunner) LookPath(name string) (string, error) {
	if path, ok := f.Paths[name]; ok {
		return path, nil
	}
	return "", &SpawnError{Path: name, Err: errUnexpectedCommand(name)}
}

// CallLines returns the command lines of all recorded calls.
func (f *FakeRunner) CallLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, c.String())
	}
	return lines
}

type errUnexpectedCommand string

func (e errUnexpectedCommand) Error() string {
	return "no fake response for: " + strings.TrimSpace(string(e))
}
