// pkg/python/resolver.go

// Package python locates a usable Python interpreter on the host.
package python

import (
	"context"
	"io"
	"log"
	"runtime"
	"strings"

	"github.com/Navot/piping/pkg/execx"
)

// runtimeName must appear in `<candidate> --version` output for the
// candidate to be accepted. The check is a loose case-insensitive
// substring match so version-string formatting drift doesn't break it.
const runtimeName = "python"

// candidateNames returns the ordered command names probed when no
// configured path is set.
func candidateNames(goos string) []string {
	if goos == "windows" {
		return []string{"py", "python", "python3"}
	}
	return []string{"python3", "python"}
}

// Resolver finds a Python interpreter. A configured path (the host
// settings override) is tried first, then platform command names via the
// executable lookup. The first candidate that validates wins; there is no
// version scoring.
type Resolver struct {
	runner     execx.Runner
	configured string
	logger     *log.Logger
}

// NewResolver creates a Resolver. configured may be empty; logger may be nil.
func NewResolver(runner execx.Runner, configured string, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{runner: runner, configured: configured, logger: logger}
}

// Resolve returns the path of the first validated interpreter, or a
// *NotFoundError once every candidate is exhausted.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	var tried []string

	if r.configured != "" {
		tried = append(tried, r.configured)
		if r.validate(ctx, r.configured) {
			return r.configured, nil
		}
		r.logger.Printf("configured interpreter %s failed validation", r.configured)
	}

	for _, name := range candidateNames(runtime.GOOS) {
		path, err := r.runner.LookPath(name)
		if err != nil {
			continue
		}
		tried = append(tried, path)
		if r.validate(ctx, path) {
			return path, nil
		}
		r.logger.Printf("interpreter candidate %s failed validation", path)
	}

	return "", &NotFoundError{Tried: tried}
}

// validate runs `<path> --version` and checks the output names the runtime.
func (r *Resolver) validate(ctx context.Context, path string) bool {
	out, err := r.runner.Run(ctx, execx.CommandSpec{Path: path, Args: []string{"--version"}})
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(out), runtimeName)
}
