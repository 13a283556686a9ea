// pkg/pip/types.go
package pip

import (
	"sort"
	"strings"

	"github.com/Navot/piping/pkg/execx"
)

// Package is the merged per-package record produced by a reconciliation
// pass: installed version plus update availability and a best-effort
// description. Records are rebuilt wholesale on every pass.
type Package struct {
	Name        string // Distribution name (unique per environment, case-insensitive)
	Version     string // Installed version
	Latest      string // Latest available version; empty when up to date
	HasUpdate   bool   // True iff Latest is set and differs from Version
	Description string // One-line summary, empty when the detail fetch failed
}

// Invocation is the resolved pip command for one logical operation:
// either the environment's own pip executable, or the interpreter with a
// `-m pip` prefix. It is recomputed per operation, never cached across an
// environment switch.
type Invocation struct {
	Path      string   // Executable to spawn
	ArgPrefix []string // Arguments preceding the pip subcommand
	Dir       string   // Optional working root
}

// spec builds the CommandSpec for a pip subcommand.
func (inv Invocation) spec(args ...string) execx.CommandSpec {
	argv := make([]string, 0, len(inv.ArgPrefix)+len(args))
	argv = append(argv, inv.ArgPrefix...)
	argv = append(argv, args...)
	return execx.CommandSpec{Path: inv.Path, Args: argv, Dir: inv.Dir}
}

// BatchResult reports the outcome of a batch update: which names
// succeeded and which failed. The two sets partition the input.
type BatchResult struct {
	Succeeded []string
	Failed    []string
}

// Sort orders records update-pending-first, then lexicographically by
// lowercased name. Reconciliation itself promises no order; this is the
// display order the front-ends use.
func Sort(pkgs []Package) {
	sort.SliceStable(pkgs, func(i, j int) bool {
		if pkgs[i].HasUpdate != pkgs[j].HasUpdate {
			return pkgs[i].HasUpdate
		}
		return strings.ToLower(pkgs[i].Name) < strings.ToLower(pkgs[j].Name)
	})
}

// listEntry matches one element of `pip list --format=json`.
type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// outdatedEntry matches one element of `pip list --outdated --format=json`.
type outdatedEntry struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	LatestVersion string `json:"latest_version"`
}
