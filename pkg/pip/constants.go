// pkg/pip/constants.go
package pip

const (
	// managerCommand is the executable name looked for inside an active
	// environment's Scripts/bin directory.
	managerCommand = "pip"

	// managerModule is the module run through the interpreter when no
	// direct executable is available: `python -m pip ...`.
	managerModule = "pip"

	// jsonFormatFlag asks pip for machine-parseable list output.
	jsonFormatFlag = "--format=json"

	// summaryPrefix marks the description line in `pip show` output.
	summaryPrefix = "Summary:"
)

// DefaultShowConcurrency bounds the parallel per-package description
// fetches during reconciliation.
const DefaultShowConcurrency = 4
