// pkg/execx/errors.go
package execx

import "fmt"

// SpawnError indicates the process could not be started at all
// (executable missing, permission denied). It is never retried here.
type SpawnError struct {
	Path string // Executable that failed to start
	Err  error  // Underlying error from the OS
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExecutionError indicates the process ran but exited non-zero.
// Stderr carries the diagnostic payload; callers surface it through the
// diagnostic log rather than user-facing messages.
type ExecutionError struct {
	Path     string   // Executable that was run
	Args     []string // Arguments it was run with
	ExitCode int      // Process exit code
	Stderr   string   // Captured stderr text
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Path, e.ExitCode)
}
