package resolve

import (
	"testing"

	"github.com/esuntp/network-test/internal/domain"
)

func placeholders() []domain.TargetDescriptor {
	return []domain.TargetDescriptor{
		{Name: domain.DefaultGatewayName, Address: domain.PlaceholderAddress, Kind: domain.PingTarget},
		{Name: domain.PrimaryDNSServerName, Address: domain.PlaceholderAddress, Kind: domain.PingTarget},
	}
}

func TestApply_FillsGatewayMarksDNSUnresolved(t *testing.T) {
	snap := domain.NetworkSnapshot{DefaultGateway: "10.0.0.1"}

	resolved := Apply(placeholders(), snap)

	if resolved[0].Address != "10.0.0.1" || resolved[0].Unresolved {
		t.Fatalf("want gateway resolved to 10.0.0.1, got %+v", resolved[0])
	}
	if !resolved[1].Unresolved {
		t.Fatalf("want DNS server target marked unresolved, got %+v", resolved[1])
	}
}

func TestApply_FullSnapshot(t *testing.T) {
	snap := domain.NetworkSnapshot{DefaultGateway: "192.168.1.1", PrimaryDNSServer: "192.168.1.53"}

	resolved := Apply(placeholders(), snap)
	if resolved[0].Address != "192.168.1.1" {
		t.Fatalf("gateway: got %+v", resolved[0])
	}
	if resolved[1].Address != "192.168.1.53" || resolved[1].Unresolved {
		t.Fatalf("dns server: got %+v", resolved[1])
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	targets := placeholders()
	Apply(targets, domain.NetworkSnapshot{DefaultGateway: "10.0.0.1"})

	if targets[0].Address != domain.PlaceholderAddress {
		t.Fatalf("input list was mutated: %+v", targets[0])
	}
}

func TestApply_Idempotent(t *testing.T) {
	snap := domain.NetworkSnapshot{DefaultGateway: "10.0.0.1", PrimaryDNSServer: "10.0.0.53"}

	once := Apply(placeholders(), snap)
	twice := Apply(once, snap)

	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("re-applying the same snapshot changed entry %d: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestApply_StaticTargetsPassThrough(t *testing.T) {
	targets := []domain.TargetDescriptor{
		{Name: "File Server", Address: "10.0.0.20", Kind: domain.PingTarget},
	}

	resolved := Apply(targets, domain.NetworkSnapshot{})
	if resolved[0] != targets[0] {
		t.Fatalf("static target must pass through unchanged, got %+v", resolved[0])
	}
}
