// pkg/diag/sink_test.go
package diag_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/Navot/piping/pkg/diag"
)

func TestAppendIsOrderedAndAppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piping.log")

	sink, err := diag.Open(path)
	require.NoError(t, err)
	sink.Append("$ pip list --format=json")
	sink.Append("[]")
	require.NoError(t, sink.Close())

	// Reopening appends, never truncates.
	sink, err = diag.Open(path)
	require.NoError(t, err)
	sink.Append("error: pip exited with code 1")
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "$ pip list --format=json")
	require.Contains(t, lines[1], "[]")
	require.Contains(t, lines[2], "error: pip exited with code 1")
}

func TestRotationCompressesOldSegment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piping.log")

	sink, err := diag.OpenWithMaxSize(path, 128)
	require.NoError(t, err)
	for i := 0; i < 32; i++ {
		sink.Append("a fairly long diagnostic entry to push past the limit")
	}
	sink.Append("after rotation")
	require.NoError(t, sink.Close())

	f, err := os.Open(path + ".1.xz")
	require.NoError(t, err)
	defer f.Close()

	// The rotated segment must be a readable xz stream.
	xr, err := xz.NewReader(f)
	require.NoError(t, err)
	buf := make([]byte, 64)
	_, err = xr.Read(buf)
	require.NoError(t, err)
	require.Contains(t, string(buf), "2") // timestamp year prefix

	// The active segment keeps growing after rotation.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
