// pkg/pip/locator_test.go
package pip_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Navot/piping/pkg/execx"
	"github.com/Navot/piping/pkg/pip"
)

// writeExecutable drops an executable stand-in for pip/python at the
// platform-specific interior path of root.
func writeExecutable(t *testing.T, root, name string) string {
	t.Helper()
	path := execx.JoinExecutable(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	return path
}

func TestLocatorUsesEnvPipDirectly(t *testing.T) {
	root := t.TempDir()
	pipPath := writeExecutable(t, root, "pip")

	r := execx.NewFakeRunner()
	r.Respond(pipPath+" list --format=json", `[]`)
	r.Respond(pipPath+" list --outdated --format=json", `[]`)

	m := pip.NewManager(&pip.Config{
		Runner:      r,
		Interpreter: stubResolver{err: errors.New("should not be consulted")},
		Envs:        stubEnv{path: root, ok: true},
		SkipDetails: true,
	})

	pkgs, err := m.ListPackages(context.Background())
	require.NoError(t, err)
	require.Empty(t, pkgs)
	require.Equal(t, pipPath, r.Calls[0].Path)
	require.Equal(t, []string{"list", "--format=json"}, r.Calls[0].Args)
}

func TestLocatorFallsBackWhenEnvPipMissing(t *testing.T) {
	root := t.TempDir() // no pip inside

	r := execx.NewFakeRunner()
	r.Respond(py+" -m pip list --format=json", `[]`)
	r.Respond(py+" -m pip list --outdated --format=json", `[]`)

	m := pip.NewManager(&pip.Config{
		Runner:      r,
		Interpreter: stubResolver{path: py},
		Envs:        stubEnv{path: root, ok: true},
		SkipDetails: true,
	})

	_, err := m.ListPackages(context.Background())
	require.NoError(t, err)
	require.Equal(t, py, r.Calls[0].Path)
	require.Equal(t, []string{"-m", "pip", "list", "--format=json"}, r.Calls[0].Args)
}

func TestLocatorPropagatesInterpreterFailure(t *testing.T) {
	r := execx.NewFakeRunner()
	resolveErr := errors.New("nothing validates")

	m := pip.NewManager(&pip.Config{
		Runner:      r,
		Interpreter: stubResolver{err: resolveErr},
		Envs:        stubEnv{},
		SkipDetails: true,
	})

	_, err := m.ListPackages(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, resolveErr)
	require.Empty(t, r.Calls)
}
