// pkg/pip/manager_test.go
package pip_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Navot/piping/pkg/execx"
	"github.com/Navot/piping/pkg/pip"
)

const py = "/usr/bin/python3"

type stubResolver struct {
	path string
	err  error
}

func (s stubResolver) Resolve(context.Context) (string, error) {
	return s.path, s.err
}

type stubEnv struct {
	path string
	ok   bool
}

func (s stubEnv) CurrentPath() (string, bool) {
	return s.path, s.ok
}

func newManager(r *execx.FakeRunner) *pip.Manager {
	return pip.NewManager(&pip.Config{
		Runner:      r,
		Interpreter: stubResolver{path: py},
		Envs:        stubEnv{},
		SkipDetails: true,
	})
}

func TestListPackagesMergesOutdated(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip list --format=json",
		`[{"name":"requests","version":"2.28.0"},{"name":"flask","version":"3.0.0"}]`)
	r.Respond(py+" -m pip list --outdated --format=json",
		`[{"name":"requests","version":"2.28.0","latest_version":"2.31.0"}]`)

	pkgs, err := newManager(r).ListPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 2)

	byName := map[string]pip.Package{}
	for _, p := range pkgs {
		byName[p.Name] = p
	}

	requests := byName["requests"]
	require.Equal(t, "2.28.0", requests.Version)
	require.Equal(t, "2.31.0", requests.Latest)
	require.True(t, requests.HasUpdate)

	flask := byName["flask"]
	require.False(t, flask.HasUpdate)
	require.Empty(t, flask.Latest)
}

func TestListPackagesOutdatedLookupIsCaseInsensitive(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip list --format=json", `[{"name":"Django","version":"4.0"}]`)
	r.Respond(py+" -m pip list --outdated --format=json",
		`[{"name":"django","version":"4.0","latest_version":"5.0"}]`)

	pkgs, err := newManager(r).ListPackages(context.Background())
	require.NoError(t, err)
	require.True(t, pkgs[0].HasUpdate)
	require.Equal(t, "5.0", pkgs[0].Latest)
}

func TestListPackagesOutdatedFailureDegrades(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip list --format=json",
		`[{"name":"requests","version":"2.28.0"},{"name":"flask","version":"3.0.0"}]`)
	r.Fail(py+" -m pip list --outdated --format=json",
		&execx.ExecutionError{Path: py, ExitCode: 1, Stderr: "network down"})

	pkgs, err := newManager(r).ListPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, pkgs, 2)
	for _, p := range pkgs {
		require.False(t, p.HasUpdate)
		require.Empty(t, p.Latest)
	}
}

func TestListPackagesOutdatedUnparseableDegrades(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip list --format=json", `[{"name":"requests","version":"2.28.0"}]`)
	r.Respond(py+" -m pip list --outdated --format=json", "WARNING: not json")

	pkgs, err := newManager(r).ListPackages(context.Background())
	require.NoError(t, err)
	require.False(t, pkgs[0].HasUpdate)
}

func TestListPackagesInstalledFailurePropagates(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Fail(py+" -m pip list --format=json",
		&execx.ExecutionError{Path: py, ExitCode: 2, Stderr: "broken"})

	pkgs, err := newManager(r).ListPackages(context.Background())
	require.Error(t, err)
	require.Nil(t, pkgs)

	var execErr *execx.ExecutionError
	require.True(t, errors.As(err, &execErr))
	require.Equal(t, 2, execErr.ExitCode)
}

func TestListPackagesInstalledUnparseablePropagates(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip list --format=json", "this is not json")

	pkgs, err := newManager(r).ListPackages(context.Background())
	require.Error(t, err)
	require.Nil(t, pkgs)

	var parseErr *pip.ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestListPackagesDescriptionsAreBestEffort(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip list --format=json",
		`[{"name":"requests","version":"2.28.0"},{"name":"flask","version":"3.0.0"}]`)
	r.Respond(py+" -m pip list --outdated --format=json", `[]`)
	r.Respond(py+" -m pip show requests",
		"Name: requests\nVersion: 2.28.0\nSummary: Python HTTP for Humans.\nLicense: Apache 2.0")
	// No response registered for "show flask": the fetch fails and the
	// record keeps an empty description without affecting requests.

	m := pip.NewManager(&pip.Config{
		Runner:      r,
		Interpreter: stubResolver{path: py},
		Envs:        stubEnv{},
	})
	pkgs, err := m.ListPackages(context.Background())
	require.NoError(t, err)

	byName := map[string]pip.Package{}
	for _, p := range pkgs {
		byName[p.Name] = p
	}
	require.Equal(t, "Python HTTP for Humans.", byName["requests"].Description)
	require.Empty(t, byName["flask"].Description)
}

func TestInstallPinsVersion(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip install requests==2.31.0", "")

	err := newManager(r).Install(context.Background(), "requests", "2.31.0")
	require.NoError(t, err)
	require.Equal(t, []string{py + " -m pip install requests==2.31.0"}, r.CallLines())
}

func TestUninstallPassesYes(t *testing.T) {
	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip uninstall -y requests", "")

	err := newManager(r).Uninstall(context.Background(), "requests")
	require.NoError(t, err)
}

func TestSortUpdatesFirstThenName(t *testing.T) {
	pkgs := []pip.Package{
		{Name: "zlib-wrapper"},
		{Name: "Beta", HasUpdate: true},
		{Name: "alpha"},
		{Name: "charlie", HasUpdate: true},
	}
	pip.Sort(pkgs)

	require.Equal(t, "Beta", pkgs[0].Name)
	require.Equal(t, "charlie", pkgs[1].Name)
	require.Equal(t, "alpha", pkgs[2].Name)
	require.Equal(t, "zlib-wrapper", pkgs[3].Name)
}
