// pkg/venv/types.go
package venv

// Environment represents one discovered virtual environment. Identity is
// the (Name, Path) pair; names alone repeat across workspace roots.
type Environment struct {
	Name   string // Directory name, e.g. ".venv"
	Path   string // Absolute filesystem root of the environment
	Active bool   // True for the currently selected environment, if any
}
