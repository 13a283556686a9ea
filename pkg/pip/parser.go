// pkg/pip/parser.go
package pip

import (
	"bufio"
	"encoding/json"
	"strings"
)

// parseInstalled decodes `pip list --format=json` output.
func parseInstalled(out string) ([]listEntry, error) {
	var entries []listEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		return nil, &ParseError{Op: "list installed", Err: err}
	}
	return entries, nil
}

// parseOutdated decodes `pip list --outdated --format=json` output into a
// name -> latest-version lookup. Names are lowercased so the lookup is
// case-insensitive per package-index convention.
func parseOutdated(out string) (map[string]string, error) {
	var entries []outdatedEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		return nil, &ParseError{Op: "list outdated", Err: err}
	}
	latest := make(map[string]string, len(entries))
	for _, e := range entries {
		latest[strings.ToLower(e.Name)] = e.LatestVersion
	}
	return latest, nil
}

// parseSummary extracts the Summary line from a `pip show` key-value block.
// Returns "" when no such line exists.
func parseSummary(out string) string {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, summaryPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, summaryPrefix))
		}
	}
	return ""
}
