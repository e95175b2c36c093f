package domain

import "time"

type PingEntry struct {
	Target TargetDescriptor
	Group  TargetGroup
	Result PingResult
	Tag    ClassificationTag
}

type DNSEntry struct {
	Target TargetDescriptor
	Group  TargetGroup
	Result DNSResult
	Tag    ClassificationTag
}

type WebEntry struct {
	Target TargetDescriptor
	Group  TargetGroup
	Result HTTPResult
	Tag    ClassificationTag
}

// SkippedTarget records a target excluded from probing, with the reason.
// A skip is an absence, not a failure; skipped targets never count toward
// totals or roll-ups.
type SkippedTarget struct {
	Target TargetDescriptor
	Group  TargetGroup
	Reason string
}

// ResultSet is the full outcome of one diagnostic run. Ping, DNS and Web
// are separate name namespaces; entries keep the fixed category/declaration
// order the orchestrator probed them in, which is also the render order.
type ResultSet struct {
	RunID     string
	StartedAt time.Time
	Elapsed   time.Duration

	Ping    []PingEntry
	DNS     []DNSEntry
	Web     []WebEntry
	Skipped []SkippedTarget

	LocalNetworkOK     bool
	InternalServicesOK bool
	InternetServicesOK bool
}

// PingByName returns the ping entry for name, if present.
func (rs *ResultSet) PingByName(name string) (PingEntry, bool) {
	for _, e := range rs.Ping {
		if e.Target.Name == name {
			return e, true
		}
	}
	return PingEntry{}, false
}

// DNSByName returns the DNS entry for name, if present.
func (rs *ResultSet) DNSByName(name string) (DNSEntry, bool) {
	for _, e := range rs.DNS {
		if e.Target.Name == name {
			return e, true
		}
	}
	return DNSEntry{}, false
}

// WebByName returns the web entry for name, if present.
func (rs *ResultSet) WebByName(name string) (WebEntry, bool) {
	for _, e := range rs.Web {
		if e.Target.Name == name {
			return e, true
		}
	}
	return WebEntry{}, false
}

// FailCount counts FAIL tags across all categories.
func (rs *ResultSet) FailCount() int {
	n := 0
	for _, e := range rs.Ping {
		if e.Tag.Severity == SeverityFail {
			n++
		}
	}
	for _, e := range rs.DNS {
		if e.Tag.Severity == SeverityFail {
			n++
		}
	}
	for _, e := range rs.Web {
		if e.Tag.Severity == SeverityFail {
			n++
		}
	}
	return n
}
