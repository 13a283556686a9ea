// internal/tui/model.go

// Package tui renders the dashboard: an environment pane on the left and
// the reconciled package table on the right. It is a thin shell over the
// piping App; all fallback and merge logic stays in the core.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	piping "github.com/Navot/piping"
)

type pane int

const (
	paneEnvs pane = iota
	panePackages
)

type packagesMsg struct {
	pkgs []piping.Package
	err  error
}

type envsMsg struct {
	envs []piping.Environment
}

type batchMsg struct {
	result piping.BatchResult
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	app *piping.App

	focus   pane
	envs    []piping.Environment
	pkgs    []piping.Package
	envCur  int
	pkgCur  int
	loading bool
	status  string
	err     error
	width   int
	height  int
}

// New creates the dashboard model.
func New(app *piping.App) *Model {
	return &Model{app: app, focus: panePackages, loading: true, status: "loading..."}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadEnvs(), m.loadPackages())
}

func (m *Model) loadEnvs() tea.Cmd {
	return func() tea.Msg {
		return envsMsg{envs: m.app.ListEnvironments()}
	}
}

func (m *Model) loadPackages() tea.Cmd {
	return func() tea.Msg {
		pkgs, err := m.app.ListPackages(context.Background())
		piping.Sort(pkgs)
		return packagesMsg{pkgs: pkgs, err: err}
	}
}

func (m *Model) updateAll() tea.Cmd {
	var names []string
	for _, pkg := range m.pkgs {
		if pkg.HasUpdate {
			names = append(names, pkg.Name)
		}
	}
	return func() tea.Msg {
		return batchMsg{result: m.app.UpdateMany(context.Background(), names)}
	}
}

func (m *Model) updateSelected() tea.Cmd {
	if m.pkgCur >= len(m.pkgs) {
		return nil
	}
	name := m.pkgs[m.pkgCur].Name
	return func() tea.Msg {
		return batchMsg{result: m.app.UpdateMany(context.Background(), []string{name})}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case envsMsg:
		m.envs = msg.envs
		if m.envCur >= len(m.envs) {
			m.envCur = 0
		}
		return m, nil

	case packagesMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.pkgs = msg.pkgs
			m.status = ""
		} else {
			m.status = "load failed"
		}
		if m.pkgCur >= len(m.pkgs) {
			m.pkgCur = 0
		}
		return m, nil

	case batchMsg:
		m.status = batchStatus(msg.result)
		m.loading = true
		return m, m.loadPackages()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.focus == paneEnvs {
			m.focus = panePackages
		} else {
			m.focus = paneEnvs
		}
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "r":
		m.loading = true
		m.status = "refreshing..."
		return m, tea.Batch(m.loadEnvs(), m.loadPackages())
	case "u":
		if m.focus == panePackages && !m.loading {
			m.status = "upgrading..."
			return m, m.updateSelected()
		}
	case "U":
		if !m.loading {
			m.status = "upgrading all..."
			return m, m.updateAll()
		}
	case "enter":
		if m.focus == paneEnvs && m.envCur < len(m.envs) {
			if _, err := m.app.SetActive(m.envs[m.envCur].Name); err == nil {
				m.loading = true
				m.status = "switching environment..."
				return m, tea.Batch(m.loadEnvs(), m.loadPackages())
			}
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.focus == paneEnvs {
		m.envCur = clamp(m.envCur+delta, len(m.envs))
	} else {
		m.pkgCur = clamp(m.pkgCur+delta, len(m.pkgs))
	}
}

func clamp(v, n int) int {
	if n == 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
