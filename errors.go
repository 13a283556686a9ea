// errors.go
package piping

import (
	"github.com/Navot/piping/pkg/execx"
	"github.com/Navot/piping/pkg/pip"
	"github.com/Navot/piping/pkg/python"
)

// Re-export the error taxonomy so front-ends can branch on failure kind
// without importing the internal packages.
type (
	// SpawnError: the external executable could not be started at all.
	SpawnError = execx.SpawnError
	// ExecutionError: the process ran but exited non-zero.
	ExecutionError = execx.ExecutionError
	// NotFoundError: no usable Python interpreter could be located.
	NotFoundError = python.NotFoundError
	// ParseError: the primary structured query returned unusable output.
	ParseError = pip.ParseError
)
