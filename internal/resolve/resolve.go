// Package resolve fills placeholder targets from the network snapshot
// before any probe runs. It is a pure step: the input list is never
// mutated, and re-applying the same snapshot is a no-op.
package resolve

import "github.com/esuntp/network-test/internal/domain"

// Apply returns a new target list in which every placeholder entry either
// carries its discovered address or is marked unresolved. Entries that are
// not placeholders pass through unchanged.
func Apply(targets []domain.TargetDescriptor, snap domain.NetworkSnapshot) []domain.TargetDescriptor {
	resolved := make([]domain.TargetDescriptor, len(targets))
	for i, t := range targets {
		resolved[i] = resolveOne(t, snap)
	}
	return resolved
}

func resolveOne(t domain.TargetDescriptor, snap domain.NetworkSnapshot) domain.TargetDescriptor {
	if !t.IsPlaceholder() {
		return t
	}

	switch t.Name {
	case domain.DefaultGatewayName:
		if snap.DefaultGateway != "" {
			t.Address = snap.DefaultGateway
			return t
		}
	case domain.PrimaryDNSServerName:
		if snap.PrimaryDNSServer != "" {
			t.Address = snap.PrimaryDNSServer
			return t
		}
	}

	t.Unresolved = true
	return t
}
