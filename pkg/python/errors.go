// pkg/python/errors.go
package python

import (
	"fmt"
	"strings"
)

// NotFoundError indicates no candidate interpreter validated. The message
// names the configuration key so the user can set a path manually.
type NotFoundError struct {
	Tried []string // Candidate paths that were probed, in order
}

func (e *NotFoundError) Error() string {
	msg := "no usable Python interpreter found; set interpreter_path in the piping config to point at one"
	if len(e.Tried) > 0 {
		msg += fmt.Sprintf(" (tried: %s)", strings.Join(e.Tried, ", "))
	}
	return msg
}
