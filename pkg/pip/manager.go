// pkg/pip/manager.go

// Package pip drives the external pip binary: it resolves which invocation
// to use for the active environment, reconciles installed-vs-outdated
// package data and runs install/uninstall/upgrade operations.
package pip

import (
	"context"
	"io"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Navot/piping/pkg/execx"
)

// InterpreterResolver locates the interpreter used for the `-m pip`
// fallback invocation.
type InterpreterResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// Config configures the pip manager.
type Config struct {
	Runner          execx.Runner
	Interpreter     InterpreterResolver
	Envs            EnvSource // Optional; nil means no environment selection
	Logger          *log.Logger
	ShowConcurrency int  // Parallel description fetches (default DefaultShowConcurrency)
	SkipDetails     bool // Skip per-package description fetches entirely
}

// Manager handles pip package operations.
type Manager struct {
	runner          execx.Runner
	interpreter     InterpreterResolver
	envs            EnvSource
	logger          *log.Logger
	showConcurrency int
	skipDetails     bool
}

// NewManager creates a pip manager.
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	concurrency := cfg.ShowConcurrency
	if concurrency <= 0 {
		concurrency = DefaultShowConcurrency
	}
	return &Manager{
		runner:          cfg.Runner,
		interpreter:     cfg.Interpreter,
		envs:            cfg.Envs,
		logger:          logger,
		showConcurrency: concurrency,
		skipDetails:     cfg.SkipDetails,
	}
}

// SkipDetails toggles per-package description fetching for subsequent
// listings. Used by front-ends that render no description column.
func (m *Manager) SkipDetails(skip bool) {
	m.skipDetails = skip
}

// ListPackages reconciles installed and outdated package data into one
// record per installed package. The installed query must succeed; an
// outdated-query failure degrades to "nothing outdated" and description
// failures degrade to empty descriptions, so an update-check outage never
// blocks seeing what is installed. Record order is unspecified; callers
// sort with Sort.
func (m *Manager) ListPackages(ctx context.Context) ([]Package, error) {
	inv, err := m.resolveInvocation(ctx)
	if err != nil {
		return nil, err
	}

	out, err := m.runner.Run(ctx, inv.spec("list", jsonFormatFlag))
	if err != nil {
		return nil, err
	}
	installed, err := parseInstalled(out)
	if err != nil {
		return nil, err
	}

	latest := m.fetchOutdated(ctx, inv)

	pkgs := make([]Package, len(installed))
	for i, entry := range installed {
		latestVersion, hit := latest[strings.ToLower(entry.Name)]
		pkgs[i] = Package{
			Name:      entry.Name,
			Version:   entry.Version,
			Latest:    latestVersion,
			HasUpdate: hit,
		}
	}

	if !m.skipDetails {
		m.fetchDescriptions(ctx, inv, pkgs)
	}
	return pkgs, nil
}

// fetchOutdated queries the outdated set. Any failure here yields an empty
// lookup: secondary data must never block the primary listing.
func (m *Manager) fetchOutdated(ctx context.Context, inv Invocation) map[string]string {
	out, err := m.runner.Run(ctx, inv.spec("list", "--outdated", jsonFormatFlag))
	if err != nil {
		m.logger.Printf("outdated check failed, assuming nothing outdated: %v", err)
		return map[string]string{}
	}
	latest, err := parseOutdated(out)
	if err != nil {
		m.logger.Printf("outdated check unparseable, assuming nothing outdated: %v", err)
		return map[string]string{}
	}
	return latest
}

// fetchDescriptions fills in one-line summaries via per-package `pip show`
// queries, bounded-parallel. Each fetch is independent and best-effort; a
// failure leaves that record's description empty and touches nothing else.
func (m *Manager) fetchDescriptions(ctx context.Context, inv Invocation, pkgs []Package) {
	var g errgroup.Group
	g.SetLimit(m.showConcurrency)
	for i := range pkgs {
		i := i
		g.Go(func() error {
			out, err := m.runner.Run(ctx, inv.spec("show", pkgs[i].Name))
			if err != nil {
				m.logger.Printf("description fetch for %s failed: %v", pkgs[i].Name, err)
				return nil
			}
			pkgs[i].Description = parseSummary(out)
			return nil
		})
	}
	g.Wait()
}

// Show returns the raw `pip show` detail block for one package.
func (m *Manager) Show(ctx context.Context, name string) (string, error) {
	inv, err := m.resolveInvocation(ctx)
	if err != nil {
		return "", err
	}
	return m.runner.Run(ctx, inv.spec("show", name))
}

// Install installs a package, optionally pinned to a version.
func (m *Manager) Install(ctx context.Context, name, version string) error {
	inv, err := m.resolveInvocation(ctx)
	if err != nil {
		return err
	}
	target := name
	if version != "" {
		target = name + "==" + version
	}
	_, err = m.runner.Run(ctx, inv.spec("install", target))
	return err
}

// Uninstall removes a package without prompting.
func (m *Manager) Uninstall(ctx context.Context, name string) error {
	inv, err := m.resolveInvocation(ctx)
	if err != nil {
		return err
	}
	_, err = m.runner.Run(ctx, inv.spec("uninstall", "-y", name))
	return err
}

// Update upgrades a single package to its latest version.
func (m *Manager) Update(ctx context.Context, name string) error {
	inv, err := m.resolveInvocation(ctx)
	if err != nil {
		return err
	}
	_, err = m.runner.Run(ctx, inv.spec("install", "--upgrade", name))
	return err
}
