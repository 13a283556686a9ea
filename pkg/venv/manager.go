// pkg/venv/manager.go

// Package venv enumerates, creates and selects Python virtual environments
// under a set of workspace roots.
package venv

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/Navot/piping/pkg/execx"
)

// InterpreterResolver locates the host Python used to create environments.
type InterpreterResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Config configures the environment manager.
type Config struct {
	Roots          []string // Workspace roots to scan; empty yields no results
	CandidateNames []string // Directory names to probe (default DefaultCandidateNames)
	Runner         execx.Runner
	Interpreter    InterpreterResolver
	Logger         *log.Logger
}

// Manager owns environment discovery and the single "current environment"
// slot. The slot is written only by SetActive/ClearActive and read by the
// pip locator through CurrentPath.
type Manager struct {
	roots       []string
	candidates  []string
	runner      execx.Runner
	interpreter InterpreterResolver
	logger      *log.Logger

	mu      sync.Mutex
	envs    []Environment // last scan result
	current *Environment  // selected environment, nil if none
}

// NewManager creates an environment manager.
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	candidates := cfg.CandidateNames
	if len(candidates) == 0 {
		candidates = DefaultCandidateNames
	}
	return &Manager{
		roots:       cfg.Roots,
		candidates:  candidates,
		runner:      cfg.Runner,
		interpreter: cfg.Interpreter,
		logger:      logger,
	}
}

// List scans every workspace root for candidate directories and returns the
// ones that contain an interpreter executable. A directory named like an
// environment but missing the interior interpreter is skipped. No roots
// means an empty result, not an error.
func (m *Manager) List() []Environment {
	var found []Environment
	for _, root := range m.roots {
		for _, name := range m.candidates {
			path := filepath.Join(root, name)
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
			if !execx.IsExecutable(execx.JoinExecutable(path, interpreterCommand)) {
				m.logger.Printf("skipping %s: no interpreter inside", path)
				continue
			}
			found = append(found, Environment{Name: name, Path: path})
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range found {
		found[i].Active = m.current != nil && found[i].Path == m.current.Path
	}
	m.envs = found

	out := make([]Environment, len(found))
	copy(out, found)
	return out
}

// Create resolves the interpreter and runs its venv subcommand targeting
// <firstRoot>/<name>. The returned environment is not active; callers
// select it explicitly with SetActive.
func (m *Manager) Create(ctx context.Context, name string) (Environment, error) {
	if len(m.roots) == 0 {
		return Environment{}, fmt.Errorf("no workspace root open; cannot create environment %q", name)
	}
	if name == "" {
		return Environment{}, fmt.Errorf("environment name is required")
	}

	py, err := m.interpreter.Resolve(ctx)
	if err != nil {
		return Environment{}, err
	}

	path := filepath.Join(m.roots[0], name)
	m.logger.Printf("creating environment at %s", path)
	_, err = m.runner.Run(ctx, execx.CommandSpec{
		Path: py,
		Args: []string{"-m", venvModule, path},
	})
	if err != nil {
		return Environment{}, fmt.Errorf("creating environment %q: %w", name, err)
	}

	return Environment{Name: name, Path: path}, nil
}

// SetActive clears the active flag on every held record and sets it on the
// first record matching name. Ambiguous names are accepted, not resolved.
// Calling it twice with the same name leaves exactly one record active.
func (m *Manager) SetActive(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var match *Environment
	for i := range m.envs {
		m.envs[i].Active = false
		if match == nil && m.envs[i].Name == name {
			match = &m.envs[i]
		}
	}
	if match == nil {
		return fmt.Errorf("no environment named %q", name)
	}
	match.Active = true
	selected := *match
	m.current = &selected
	return nil
}

// ClearActive deselects any current environment.
func (m *Manager) ClearActive() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.envs {
		m.envs[i].Active = false
	}
	m.current = nil
}

// Current returns the selected environment, if any.
func (m *Manager) Current() (Environment, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Environment{}, false
	}
	return *m.current, true
}

// CurrentPath reports the selected environment root for the pip locator.
func (m *Manager) CurrentPath() (string, bool) {
	env, ok := m.Current()
	return env.Path, ok
}

// Restore re-selects an environment by path, used to carry the selection
// across process restarts. The path is accepted only if it still holds an
// interpreter.
func (m *Manager) Restore(path string) bool {
	if path == "" {
		return false
	}
	if !execx.IsExecutable(execx.JoinExecutable(path, interpreterCommand)) {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = &Environment{Name: filepath.Base(path), Path: path, Active: true}
	return true
}
