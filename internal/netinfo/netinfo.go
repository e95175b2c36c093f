// Package netinfo discovers local network state: the default gateway and
// the primary DNS server. Either may be undiscoverable; callers treat an
// empty field as absent.
package netinfo

import (
	"fmt"
	"log/slog"

	"github.com/miekg/dns"

	"github.com/esuntp/network-test/internal/domain"
)

const resolvConfPath = "/etc/resolv.conf"

// Collect builds a snapshot of the local network state. Discovery failures
// are logged and leave the field empty; they never abort the run.
func Collect(logger *slog.Logger) domain.NetworkSnapshot {
	var snap domain.NetworkSnapshot

	gw, err := defaultGateway()
	if err != nil {
		logger.Warn("default gateway not discovered", "error", err.Error())
	} else {
		snap.DefaultGateway = gw
	}

	server, err := primaryDNSServer()
	if err != nil {
		logger.Warn("primary DNS server not discovered", "error", err.Error())
	} else {
		snap.PrimaryDNSServer = server
	}

	return snap
}

func primaryDNSServer() (string, error) {
	cfg, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", resolvConfPath, err)
	}
	if len(cfg.Servers) == 0 {
		return "", fmt.Errorf("no nameservers in %s", resolvConfPath)
	}
	return cfg.Servers[0], nil
}
