// pkg/venv/constants.go
package venv

// DefaultCandidateNames are the directory names probed under every
// workspace root when enumerating environments. Includes historical
// aliases still common in older projects.
var DefaultCandidateNames = []string{
	".venv",
	"venv",
	"env",
	".env",
	"virtualenv",
	".virtualenv",
}

// interpreterCommand is the executable checked for inside a candidate
// directory; a directory without it is not an environment.
const interpreterCommand = "python"

// venvModule is the interpreter subcommand used to create environments.
const venvModule = "venv"
