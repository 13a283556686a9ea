// internal/tui/view.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	piping "github.com/Navot/piping"
)

const envPaneWidth = 32

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	focusedStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
	blurredStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	updateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m *Model) View() string {
	envPane := m.viewEnvs()
	pkgPane := m.viewPackages()

	left := paneStyle(m.focus == paneEnvs).Width(envPaneWidth).Render(envPane)
	right := paneStyle(m.focus == panePackages).Render(pkgPane)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return body + "\n" + m.viewFooter()
}

func paneStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedStyle
	}
	return blurredStyle
}

func (m *Model) viewEnvs() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Environments"))
	b.WriteString("\n\n")

	if len(m.envs) == 0 {
		b.WriteString(dimStyle.Render("none found"))
		return b.String()
	}

	for i, env := range m.envs {
		marker := "  "
		if env.Active {
			marker = "* "
		}
		line := marker + env.Name
		if m.focus == paneEnvs && i == m.envCur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewPackages() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Packages"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(dimStyle.Render("loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString("could not load packages\n")
		b.WriteString(dimStyle.Render("see " + m.app.LogPath()))
		return b.String()
	}
	if len(m.pkgs) == 0 {
		b.WriteString(dimStyle.Render("no packages installed"))
		return b.String()
	}

	for i, pkg := range m.pkgs {
		line := formatPackage(pkg)
		if pkg.HasUpdate {
			line = updateStyle.Render(line)
		}
		if m.focus == panePackages && i == m.pkgCur {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func formatPackage(pkg piping.Package) string {
	version := pkg.Version
	if pkg.HasUpdate {
		version = fmt.Sprintf("%s → %s", pkg.Version, pkg.Latest)
	}
	line := fmt.Sprintf("%-24s %-20s", pkg.Name, version)
	if pkg.Description != "" {
		line += " " + pkg.Description
	}
	return line
}

func (m *Model) viewFooter() string {
	help := "tab: switch pane  enter: select env  r: refresh  u: upgrade  U: upgrade all  q: quit"
	if m.status != "" {
		return dimStyle.Render(m.status+"  ·  "+help)
	}
	return dimStyle.Render(help)
}

func batchStatus(result piping.BatchResult) string {
	if len(result.Failed) == 0 {
		return fmt.Sprintf("upgraded %d package(s)", len(result.Succeeded))
	}
	return fmt.Sprintf("upgraded %d, %d failed", len(result.Succeeded), len(result.Failed))
}
