// pkg/pip/parser_test.go
package pip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSummary(t *testing.T) {
	out := "Name: requests\nVersion: 2.28.0\nSummary: Python HTTP for Humans.\nHome-page: https://requests.readthedocs.io\n"
	require.Equal(t, "Python HTTP for Humans.", parseSummary(out))
}

func TestParseSummaryMissing(t *testing.T) {
	require.Equal(t, "", parseSummary("Name: requests\nVersion: 2.28.0\n"))
}

func TestParseOutdatedLowercasesNames(t *testing.T) {
	latest, err := parseOutdated(`[{"name":"Django","version":"4.0","latest_version":"5.0"}]`)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"django": "5.0"}, latest)
}

func TestParseInstalledBadJSON(t *testing.T) {
	_, err := parseInstalled("ERROR: pip exploded")
	require.Error(t, err)

	parseErr, ok := err.(*ParseError)
	require.True(t, ok)
	require.Equal(t, "list installed", parseErr.Op)
}
