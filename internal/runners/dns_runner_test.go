package runner

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
)

func startDNSServer(t *testing.T, handler dns.Handler) string {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := &dns.Server{PacketConn: pc, Handler: handler}
	go srv.ActivateAndServe()
	t.Cleanup(func() { srv.Shutdown() })

	return pc.LocalAddr().String()
}

func TestDNSRunner_ResolvesA(t *testing.T) {
	addr := startDNSServer(t, dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		if r.Question[0].Qtype == dns.TypeA {
			rr, _ := dns.NewRR(r.Question[0].Name + " 60 IN A 93.184.216.34")
			m.Answer = append(m.Answer, rr)
		}
		w.WriteMsg(m)
	}))

	r := NewDNSRunner(addr, time.Second, testLogger())
	out := r.Run(context.Background(), "www.example.com")
	if !out.Success {
		t.Fatalf("want success, got %+v", out)
	}
	if len(out.Addresses) != 1 || out.Addresses[0] != "93.184.216.34" {
		t.Fatalf("want [93.184.216.34], got %v", out.Addresses)
	}
	if out.ErrorMessage != "" {
		t.Fatalf("error message must be empty on success, got %q", out.ErrorMessage)
	}
}

func TestDNSRunner_NXDomain(t *testing.T) {
	addr := startDNSServer(t, dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetRcode(r, dns.RcodeNameError)
		w.WriteMsg(m)
	}))

	r := NewDNSRunner(addr, time.Second, testLogger())
	out := r.Run(context.Background(), "nonexistent.invalid")
	if out.Success {
		t.Fatalf("want failure, got %+v", out)
	}
	if len(out.Addresses) != 0 {
		t.Fatalf("want no addresses, got %v", out.Addresses)
	}
	if out.ErrorMessage == "" {
		t.Fatalf("want the resolver error captured")
	}
}

func TestDNSRunner_EmptyAnswerIsFailure(t *testing.T) {
	addr := startDNSServer(t, dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(r)
		w.WriteMsg(m)
	}))

	r := NewDNSRunner(addr, time.Second, testLogger())
	out := r.Run(context.Background(), "empty.example.com")
	if out.Success {
		t.Fatalf("zero address records must not count as success, got %+v", out)
	}
	if out.ErrorMessage == "" {
		t.Fatalf("want non-empty error message")
	}
}

func TestNewDNSRunner_ServerDefaults(t *testing.T) {
	r := NewDNSRunner("", time.Second, testLogger())
	if r.server != defaultDNSServer {
		t.Fatalf("want fallback server %q, got %q", defaultDNSServer, r.server)
	}

	r = NewDNSRunner("192.168.1.53", time.Second, testLogger())
	if r.server != "192.168.1.53:53" {
		t.Fatalf("want port 53 appended, got %q", r.server)
	}

	r = NewDNSRunner("192.168.1.53:5353", time.Second, testLogger())
	if r.server != "192.168.1.53:5353" {
		t.Fatalf("explicit port must be kept, got %q", r.server)
	}
}
