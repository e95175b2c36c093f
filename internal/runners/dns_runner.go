package runner

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/esuntp/network-test/internal/domain"
)

const defaultDNSServer = "8.8.8.8:53"

// DNSRunner resolves hostnames against a single DNS server, normally the
// one discovered from the local network state.
type DNSRunner struct {
	server  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewDNSRunner builds a runner querying server (host or host:port). An
// empty server falls back to a public resolver.
func NewDNSRunner(server string, timeout time.Duration, logger *slog.Logger) *DNSRunner {
	if server == "" {
		server = defaultDNSServer
	} else if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}
	return &DNSRunner{
		server:  server,
		timeout: timeout,
		logger:  logger,
	}
}

// Run looks up the A and AAAA records for hostname. On success the result
// carries at least one address, in resolver order. On failure the result
// carries the underlying error text verbatim; Run never returns an error.
// Callers skip this probe for literal IP addresses.
func (r *DNSRunner) Run(ctx context.Context, hostname string) domain.DNSResult {
	var addrs []string
	var firstErr error

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		records, err := r.query(ctx, hostname, qtype)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		addrs = append(addrs, records...)
	}

	if len(addrs) == 0 {
		if firstErr == nil {
			firstErr = fmt.Errorf("no address records for %s", hostname)
		}
		r.logger.Debug("dns lookup failed", "hostname", hostname, "error", firstErr.Error())
		return domain.DNSResult{Success: false, ErrorMessage: firstErr.Error()}
	}

	r.logger.Debug("dns lookup ok", "hostname", hostname, "addresses", len(addrs))
	return domain.DNSResult{Success: true, Addresses: addrs}
}

func (r *DNSRunner) query(ctx context.Context, hostname string, qtype uint16) ([]string, error) {
	client := &dns.Client{Timeout: r.timeout}

	msg := dns.Msg{}
	msg.SetQuestion(dns.Fqdn(hostname), qtype)

	response, _, err := client.ExchangeContext(ctx, &msg, r.server)
	if err != nil {
		return nil, fmt.Errorf("DNS query failed: %w", err)
	}
	if response.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("DNS error: %s", dns.RcodeToString[response.Rcode])
	}

	records := make([]string, 0, len(response.Answer))
	for _, answer := range response.Answer {
		switch rr := answer.(type) {
		case *dns.A:
			records = append(records, rr.A.String())
		case *dns.AAAA:
			records = append(records, rr.AAAA.String())
		}
	}
	return records, nil
}
