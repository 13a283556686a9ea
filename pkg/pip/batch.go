// pkg/pip/batch.go
package pip

import "context"

// UpdateMany upgrades a set of packages with a two-tier strategy: one
// combined `install --upgrade` listing every name first, then sequential
// per-name attempts when the combined call fails. A zero-exit combined
// call reports every requested name as succeeded; a package already at its
// latest version is indistinguishable from an upgraded one, which is an
// accepted approximation of the contract. When no invocation can be
// resolved at all, every name is reported failed. Empty input returns an
// empty result without spawning anything.
func (m *Manager) UpdateMany(ctx context.Context, names []string) BatchResult {
	if len(names) == 0 {
		return BatchResult{}
	}

	inv, err := m.resolveInvocation(ctx)
	if err != nil {
		m.logger.Printf("batch update failed to resolve pip: %v", err)
		return BatchResult{Failed: append([]string(nil), names...)}
	}

	args := append([]string{"install", "--upgrade"}, names...)
	_, combinedErr := m.runner.Run(ctx, inv.spec(args...))
	if combinedErr == nil {
		return BatchResult{Succeeded: append([]string(nil), names...)}
	}
	m.logger.Printf("combined upgrade failed, retrying per package: %v", combinedErr)

	var result BatchResult
	for _, name := range names {
		if _, err := m.runner.Run(ctx, inv.spec("install", "--upgrade", name)); err != nil {
			m.logger.Printf("upgrade of %s failed: %v", name, err)
			result.Failed = append(result.Failed, name)
			continue
		}
		result.Succeeded = append(result.Succeeded, name)
	}
	return result
}
