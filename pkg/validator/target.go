package validator

import (
	"net"
	"net/url"
	"strings"
)

// ValidateAddress reports whether address can be probed: a literal IP, a
// bare hostname, or an http(s) URL.
func ValidateAddress(address string) bool {
	if address == "" {
		return false
	}

	if net.ParseIP(address) != nil {
		return true
	}

	if u, err := url.Parse(address); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return true
	}

	// bare hostname like intranet.example.com
	if !strings.Contains(address, "://") {
		return true
	}

	return false
}

// IsLiteralIP reports whether address parses as an IP literal.
func IsLiteralIP(address string) bool {
	return net.ParseIP(address) != nil
}

// HostOf extracts the hostname from a URL, or returns the input unchanged
// when it is not a URL.
func HostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}
