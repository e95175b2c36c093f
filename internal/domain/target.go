package domain

type TargetKind string

const (
	PingTarget TargetKind = "ping"
	WebTarget  TargetKind = "web"
)

type TargetGroup string

const (
	GroupLocal        TargetGroup = "local"
	GroupInternalWeb  TargetGroup = "internal_web"
	GroupExternalWeb  TargetGroup = "external_web"
	GroupInternalPing TargetGroup = "internal_ping"
	GroupExternalPing TargetGroup = "external_ping"
)

// PlaceholderAddress marks a target whose address is filled in from the
// network snapshot before any probe runs.
const PlaceholderAddress = "<discover>"

// Reserved names of the two placeholder targets in the local group.
const (
	DefaultGatewayName   = "Default Gateway"
	PrimaryDNSServerName = "Primary DNS Server"
)

// TargetDescriptor identifies one probe target. Name is unique within its
// group. A descriptor is immutable once resolved; Unresolved is set when a
// placeholder address could not be filled from the snapshot, in which case
// the target is excluded from all probing.
type TargetDescriptor struct {
	Name       string
	Address    string
	Kind       TargetKind
	Unresolved bool
}

func (t TargetDescriptor) IsPlaceholder() bool {
	return t.Address == PlaceholderAddress
}
