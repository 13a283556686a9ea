// pkg/pip/errors.go
package pip

import "fmt"

// ParseError indicates structured pip output did not match the expected
// shape. It is raised only for the primary installed-list query; secondary
// consumers degrade to empty results instead.
type ParseError struct {
	Op  string // Query whose output failed to parse, e.g. "list installed"
	Err error  // Underlying decode error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s output: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
