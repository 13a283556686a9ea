// piping.go
package piping

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Navot/piping/pkg/core"
	"github.com/Navot/piping/pkg/diag"
	"github.com/Navot/piping/pkg/execx"
	"github.com/Navot/piping/pkg/pip"
	"github.com/Navot/piping/pkg/python"
	"github.com/Navot/piping/pkg/venv"
)

// Re-export the data types front-ends consume
type (
	Package     = pip.Package
	BatchResult = pip.BatchResult
	Environment = venv.Environment
)

// Sort orders package records update-pending-first, then by name.
func Sort(pkgs []Package) { pip.Sort(pkgs) }

// App wires the runner, interpreter resolver, environment manager and pip
// manager together behind the operations the presentation layer calls.
// Front-ends own all formatting and subscription; they never reach the
// process layer directly and never reimplement the fallback or merge logic.
type App struct {
	Config   *core.Config
	Envs     *venv.Manager
	Packages *pip.Manager

	sink   *diag.Sink
	logger *log.Logger
}

// New builds an App from configuration. The diagnostic log sink is opened
// eagerly; a previously selected environment is restored from the config
// when it still exists.
func New(cfg *core.Config) (*App, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	sink, err := diag.Open(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("opening diagnostic log: %w", err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "[piping] ", log.LstdFlags)
	}

	runner := execx.NewRunner(sink, logger)
	resolver := python.NewResolver(runner, cfg.InterpreterPath, logger)

	names := venv.DefaultCandidateNames
	if len(cfg.EnvNames) > 0 {
		names = append(append([]string{}, names...), cfg.EnvNames...)
	}
	envs := venv.NewManager(&venv.Config{
		Roots:          cfg.WorkspaceRoots,
		CandidateNames: names,
		Runner:         runner,
		Interpreter:    resolver,
		Logger:         logger,
	})
	if cfg.ActiveEnv != "" && !envs.Restore(cfg.ActiveEnv) {
		logger.Printf("stored environment %s is gone, ignoring", cfg.ActiveEnv)
	}

	packages := pip.NewManager(&pip.Config{
		Runner:      runner,
		Interpreter: resolver,
		Envs:        envs,
		Logger:      logger,
	})

	return &App{
		Config:   cfg,
		Envs:     envs,
		Packages: packages,
		sink:     sink,
		logger:   logger,
	}, nil
}

// ListPackages returns the reconciled package records for the active
// environment (or the host interpreter when none is selected).
func (a *App) ListPackages(ctx context.Context) ([]Package, error) {
	return a.Packages.ListPackages(ctx)
}

// ListEnvironments scans the workspace roots for virtual environments.
func (a *App) ListEnvironments() []Environment {
	return a.Envs.List()
}

// CreateEnvironment creates a new virtual environment under the first
// workspace root. The result is not active until SetActive is called.
func (a *App) CreateEnvironment(ctx context.Context, name string) (Environment, error) {
	return a.Envs.Create(ctx, name)
}

// SetActive selects the named environment and returns it. Subsequent
// package operations target it.
func (a *App) SetActive(name string) (Environment, error) {
	if err := a.Envs.SetActive(name); err != nil {
		return Environment{}, err
	}
	env, _ := a.Envs.Current()
	return env, nil
}

// InstallPackage installs name, optionally pinned to version.
func (a *App) InstallPackage(ctx context.Context, name, version string) error {
	return a.Packages.Install(ctx, name, version)
}

// UninstallPackage removes name.
func (a *App) UninstallPackage(ctx context.Context, name string) error {
	return a.Packages.Uninstall(ctx, name)
}

// UpdatePackage upgrades name to its latest version.
func (a *App) UpdatePackage(ctx context.Context, name string) error {
	return a.Packages.Update(ctx, name)
}

// UpdateMany upgrades the named packages, reporting partial failure
// instead of aborting on the first bad one.
func (a *App) UpdateMany(ctx context.Context, names []string) BatchResult {
	return a.Packages.UpdateMany(ctx, names)
}

// ShowPackage returns the raw detail block for one package.
func (a *App) ShowPackage(ctx context.Context, name string) (string, error) {
	return a.Packages.Show(ctx, name)
}

// LogPath returns the diagnostic log location for "see the log" hints.
func (a *App) LogPath() string {
	return a.sink.Path()
}

// Close releases the diagnostic log sink.
func (a *App) Close() error {
	return a.sink.Close()
}
