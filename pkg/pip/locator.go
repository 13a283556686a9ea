// pkg/pip/locator.go
package pip

import (
	"context"
	"fmt"

	"github.com/Navot/piping/pkg/execx"
)

// EnvSource reports the currently selected virtual environment root, if
// any. The venv manager implements it; the indirection keeps the locator
// reading the single shared current-environment slot instead of holding a
// copy that could go stale.
type EnvSource interface {
	CurrentPath() (string, bool)
}

// resolveInvocation determines the concrete pip invocation for one logical
// operation. Two tiers: the active environment's own pip executable when
// present, otherwise the resolved interpreter with a `-m pip` prefix. The
// decision is made fresh on every call because the active environment can
// change between operations.
func (m *Manager) resolveInvocation(ctx context.Context) (Invocation, error) {
	if m.envs != nil {
		if root, ok := m.envs.CurrentPath(); ok {
			direct := execx.JoinExecutable(root, managerCommand)
			if execx.IsExecutable(direct) {
				return Invocation{Path: direct}, nil
			}
			m.logger.Printf("no pip executable in %s, falling back to interpreter module", root)
		}
	}

	py, err := m.interpreter.Resolve(ctx)
	if err != nil {
		return Invocation{}, fmt.Errorf("resolving package manager: %w", err)
	}
	return Invocation{Path: py, ArgPrefix: []string{"-m", managerModule}}, nil
}
