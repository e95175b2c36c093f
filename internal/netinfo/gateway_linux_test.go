//go:build linux

package netinfo

import "testing"

func TestParseHexIPv4(t *testing.T) {
	// /proc/net/route stores addresses little-endian: 0102A8C0 is 192.168.2.1
	got, err := parseHexIPv4("0102A8C0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != "192.168.2.1" {
		t.Fatalf("want 192.168.2.1, got %s", got)
	}

	if _, err := parseHexIPv4("nothex"); err == nil {
		t.Fatalf("want error for invalid hex")
	}
}
