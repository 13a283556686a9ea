// pkg/venv/manager_test.go
package venv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Navot/piping/pkg/execx"
	"github.com/Navot/piping/pkg/venv"
)

type stubResolver struct {
	path string
	err  error
}

func (s stubResolver) Resolve(context.Context) (string, error) {
	return s.path, s.err
}

// makeEnv creates <root>/<name> with an interpreter inside.
func makeEnv(t *testing.T, root, name string) string {
	t.Helper()
	path := filepath.Join(root, name)
	interpreter := execx.JoinExecutable(path, "python")
	require.NoError(t, os.MkdirAll(filepath.Dir(interpreter), 0755))
	require.NoError(t, os.WriteFile(interpreter, []byte("#!/bin/sh\n"), 0755))
	return path
}

func newTestManager(roots []string) *venv.Manager {
	return venv.NewManager(&venv.Config{
		Roots:       roots,
		Runner:      execx.NewFakeRunner(),
		Interpreter: stubResolver{path: "/usr/bin/python3"},
	})
}

func TestListFindsOnlyRealEnvironments(t *testing.T) {
	root := t.TempDir()
	venvPath := makeEnv(t, root, ".venv")
	// A directory named like an environment but with no interpreter.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "venv"), 0755))
	// And a plain file with a candidate name.
	require.NoError(t, os.WriteFile(filepath.Join(root, "env"), []byte("x"), 0644))

	envs := newTestManager([]string{root}).List()
	require.Len(t, envs, 1)
	require.Equal(t, ".venv", envs[0].Name)
	require.Equal(t, venvPath, envs[0].Path)
	require.False(t, envs[0].Active)
}

func TestListScansAllRoots(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	makeEnv(t, rootA, "venv")
	makeEnv(t, rootB, "venv")

	envs := newTestManager([]string{rootA, rootB}).List()
	require.Len(t, envs, 2)
	// Same name twice is fine; paths distinguish them.
	require.NotEqual(t, envs[0].Path, envs[1].Path)
}

func TestListNoRootsYieldsEmpty(t *testing.T) {
	envs := newTestManager(nil).List()
	require.Empty(t, envs)
}

func TestSetActiveIsIdempotent(t *testing.T) {
	root := t.TempDir()
	makeEnv(t, root, ".venv")
	makeEnv(t, root, "venv")

	m := newTestManager([]string{root})
	m.List()

	require.NoError(t, m.SetActive("venv"))
	require.NoError(t, m.SetActive("venv"))

	active := 0
	for _, env := range m.List() {
		if env.Active {
			active++
			require.Equal(t, "venv", env.Name)
		}
	}
	require.Equal(t, 1, active)
}

func TestSetActiveSwitchesSelection(t *testing.T) {
	root := t.TempDir()
	makeEnv(t, root, ".venv")
	makeEnv(t, root, "venv")

	m := newTestManager([]string{root})
	m.List()

	require.NoError(t, m.SetActive(".venv"))
	require.NoError(t, m.SetActive("venv"))

	path, ok := m.CurrentPath()
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "venv"), path)
}

func TestSetActiveUnknownName(t *testing.T) {
	root := t.TempDir()
	makeEnv(t, root, ".venv")

	m := newTestManager([]string{root})
	m.List()
	require.Error(t, m.SetActive("nope"))

	_, ok := m.Current()
	require.False(t, ok)
}

func TestCreateRunsVenvModule(t *testing.T) {
	root := t.TempDir()
	r := execx.NewFakeRunner()
	target := filepath.Join(root, "fresh")
	r.Respond("/usr/bin/python3 -m venv "+target, "")

	m := venv.NewManager(&venv.Config{
		Roots:       []string{root},
		Runner:      r,
		Interpreter: stubResolver{path: "/usr/bin/python3"},
	})

	env, err := m.Create(context.Background(), "fresh")
	require.NoError(t, err)
	require.Equal(t, "fresh", env.Name)
	require.Equal(t, target, env.Path)
	require.False(t, env.Active)
}

func TestCreateWithoutWorkspaceRoot(t *testing.T) {
	m := venv.NewManager(&venv.Config{
		Runner:      execx.NewFakeRunner(),
		Interpreter: stubResolver{path: "/usr/bin/python3"},
	})

	_, err := m.Create(context.Background(), "fresh")
	require.Error(t, err)
	require.Contains(t, err.Error(), "workspace root")
}

func TestCreatePropagatesCommandFailure(t *testing.T) {
	root := t.TempDir()
	r := execx.NewFakeRunner()
	target := filepath.Join(root, "fresh")
	r.Fail("/usr/bin/python3 -m venv "+target,
		&execx.ExecutionError{Path: "/usr/bin/python3", ExitCode: 1, Stderr: "disk full"})

	m := venv.NewManager(&venv.Config{
		Roots:       []string{root},
		Runner:      r,
		Interpreter: stubResolver{path: "/usr/bin/python3"},
	})

	_, err := m.Create(context.Background(), "fresh")
	require.Error(t, err)

	var execErr *execx.ExecutionError
	require.True(t, errors.As(err, &execErr))
}

func TestRestoreRequiresInterpreter(t *testing.T) {
	root := t.TempDir()
	good := makeEnv(t, root, ".venv")
	bad := filepath.Join(root, "venv")
	require.NoError(t, os.MkdirAll(bad, 0755))

	m := newTestManager([]string{root})
	require.False(t, m.Restore(bad))
	require.True(t, m.Restore(good))

	path, ok := m.CurrentPath()
	require.True(t, ok)
	require.Equal(t, good, path)
}
