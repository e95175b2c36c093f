package domain

// NetworkSnapshot carries runtime-discovered network state used to fill
// placeholder targets. An empty field means the value could not be
// discovered.
type NetworkSnapshot struct {
	DefaultGateway   string
	PrimaryDNSServer string
}
