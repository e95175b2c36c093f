package validator

import "testing"

func TestValidateAddress(t *testing.T) {
	valid := []string{"192.168.1.1", "2001:db8::1", "intranet.corp", "http://example.com", "https://example.com/health"}
	for _, addr := range valid {
		if !ValidateAddress(addr) {
			t.Errorf("want %q valid", addr)
		}
	}

	invalid := []string{"", "ftp://example.com", "http://"}
	for _, addr := range invalid {
		if ValidateAddress(addr) {
			t.Errorf("want %q invalid", addr)
		}
	}
}

func TestIsLiteralIP(t *testing.T) {
	if !IsLiteralIP("10.0.0.1") || !IsLiteralIP("::1") {
		t.Fatalf("IP literals not recognized")
	}
	if IsLiteralIP("example.com") {
		t.Fatalf("hostname misclassified as IP")
	}
}

func TestHostOf(t *testing.T) {
	cases := map[string]string{
		"https://portal.corp/login": "portal.corp",
		"http://10.0.0.5:8080":      "10.0.0.5",
		"portal.corp":               "portal.corp",
	}
	for in, want := range cases {
		if got := HostOf(in); got != want {
			t.Errorf("HostOf(%q) = %q, want %q", in, got, want)
		}
	}
}
