// pkg/execx/runner.go
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"runtime"
	"strings"
)

// CommandSpec describes a single external process invocation.
type CommandSpec struct {
	Path  string   // Executable path or bare command name
	Args  []string // Arguments, not including the command itself
	Dir   string   // Optional working root (empty = inherit)
	Shell bool     // Run through the platform shell instead of directly
}

func (s CommandSpec) String() string {
	if len(s.Args) == 0 {
		return s.Path
	}
	return s.Path + " " + strings.Join(s.Args, " ")
}

// Sink receives one diagnostic entry per external-process event.
// Entries are ordered and append-only; the sink is never parsed back.
type Sink interface {
	Append(entry string)
}

// Runner executes external commands. The interface exists so callers can
// substitute a fake in tests instead of spawning real processes.
type Runner interface {
	// Run executes the command and returns its stdout on success.
	// Non-zero exit yields *ExecutionError, failure to start *SpawnError.
	// No retries and no timeout are applied at this layer.
	Run(ctx context.Context, spec CommandSpec) (string, error)

	// LookPath searches the platform executable lookup for a command name.
	LookPath(name string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	sink   Sink
	logger *log.Logger
}

// NewRunner creates an ExecRunner. Both arguments are optional.
func NewRunner(sink Sink, logger *log.Logger) *ExecRunner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ExecRunner{sink: sink, logger: logger}
}

// Run executes the command described by spec.
func (r *ExecRunner) Run(ctx context.Context, spec CommandSpec) (string, error) {
	r.appendDiag("$ " + spec.String())

	cmd := r.build(ctx, spec)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if out := strings.TrimRight(stdout.String(), "\n"); out != "" {
		r.appendDiag(out)
	}
	if errText := strings.TrimRight(stderr.String(), "\n"); errText != "" {
		r.appendDiag(errText)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr := &ExecutionError{
				Path:     spec.Path,
				Args:     spec.Args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
			r.appendDiag(fmt.Sprintf("error: %v", execErr))
			return "", execErr
		}
		spawnErr := &SpawnError{Path: spec.Path, Err: err}
		r.appendDiag(fmt.Sprintf("error: %v", spawnErr))
		return "", spawnErr
	}

	return stdout.String(), nil
}

// LookPath searches PATH (or the Windows equivalent) for name.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) build(ctx context.Context, spec CommandSpec) *exec.Cmd {
	var cmd *exec.Cmd
	if spec.Shell {
		if runtime.GOOS == "windows" {
			args := append([]string{"/c", spec.Path}, spec.Args...)
			cmd = exec.CommandContext(ctx, "cmd", args...)
		} else {
			line := spec.String()
			cmd = exec.CommandContext(ctx, "/bin/sh", "-c", line)
		}
	} else {
		cmd = exec.CommandContext(ctx, spec.Path, spec.Args...)
	}
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	return cmd
}

func (r *ExecRunner) appendDiag(entry string) {
	r.logger.Printf("%s", entry)
	if r.sink != nil {
		r.sink.Append(entry)
	}
}
