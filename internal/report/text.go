// Package report renders a ResultSet as a plain-text report partitioned
// by audience. Rendering is a pure function of the result set; it never
// recomputes classification.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/esuntp/network-test/internal/domain"
)

var rule = strings.Repeat("=", 60)

var groupLabels = map[domain.TargetGroup]string{
	domain.GroupLocal:        "local",
	domain.GroupInternalWeb:  "internal web",
	domain.GroupExternalWeb:  "external web",
	domain.GroupInternalPing: "internal ping",
	domain.GroupExternalPing: "external ping",
}

// Render produces the full report: end-user summary, helpdesk summary,
// engineer detail.
func Render(rs *domain.ResultSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Network Diagnostic Report\n")
	fmt.Fprintf(&b, "Run ID: %s\n", rs.RunID)
	fmt.Fprintf(&b, "Generated: %s\n", rs.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Elapsed: %s\n", rs.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(&b, rule)

	writeEndUserSummary(&b, rs)
	fmt.Fprintln(&b, rule)
	writeHelpdeskSummary(&b, rs)
	fmt.Fprintln(&b, rule)
	writeEngineerDetail(&b, rs)
	fmt.Fprintln(&b, rule)

	return b.String()
}

func writeEndUserSummary(b *strings.Builder, rs *domain.ResultSet) {
	fmt.Fprintf(b, "\nEND-USER SUMMARY\n\n")
	fmt.Fprintf(b, "  Local network:      %s\n", verdict(rs.LocalNetworkOK))
	fmt.Fprintf(b, "  Internal services:  %s\n", verdict(rs.InternalServicesOK))
	fmt.Fprintf(b, "  Internet access:    %s\n", verdict(rs.InternetServicesOK))
	fmt.Fprintln(b)

	if rs.LocalNetworkOK && rs.InternalServicesOK && rs.InternetServicesOK {
		fmt.Fprintf(b, "  Everything looks good from this computer.\n\n")
	} else {
		fmt.Fprintf(b, "  Problems were found. Please pass the sections below to\n")
		fmt.Fprintf(b, "  your support contact.\n\n")
	}
}

func writeHelpdeskSummary(b *strings.Builder, rs *domain.ResultSet) {
	fmt.Fprintf(b, "\nHELPDESK SUMMARY\n\n")

	for _, e := range rs.Ping {
		writeSummaryLine(b, e.Tag.Severity, "ping", e.Target.Name, e.Tag.Reason)
	}
	for _, e := range rs.DNS {
		writeSummaryLine(b, e.Tag.Severity, "dns", e.Target.Name, e.Tag.Reason)
	}
	for _, e := range rs.Web {
		writeSummaryLine(b, e.Tag.Severity, "web", e.Target.Name, e.Tag.Reason)
	}
	for _, s := range rs.Skipped {
		fmt.Fprintf(b, "  [SKIP] %-4s %-24s %s\n", string(s.Target.Kind), s.Target.Name, s.Reason)
	}
	fmt.Fprintln(b)
}

func writeSummaryLine(b *strings.Builder, sev domain.Severity, category, name, reason string) {
	fmt.Fprintf(b, "  [%-4s] %-4s %-24s %s\n", string(sev), category, name, reason)
}

func writeEngineerDetail(b *strings.Builder, rs *domain.ResultSet) {
	fmt.Fprintf(b, "\nENGINEER DETAIL\n")

	if len(rs.Ping) > 0 {
		fmt.Fprintf(b, "\nPING\n")
		for _, e := range rs.Ping {
			fmt.Fprintf(b, "  %s (%s) [%s] %s\n",
				e.Target.Name, e.Target.Address, groupLabels[e.Group], e.Tag.Severity)
			fmt.Fprintf(b, "    sent %d, received %d, loss %d%%\n",
				e.Result.Sent, e.Result.Received, e.Result.LossPct)
			if e.Result.HasLatency() {
				fmt.Fprintf(b, "    avg %.1f ms, min %.1f ms, max %.1f ms, jitter %.1f ms\n",
					e.Result.AvgMs, e.Result.MinMs, e.Result.MaxMs, e.Result.JitterMs)
			}
		}
	}

	if len(rs.DNS) > 0 {
		fmt.Fprintf(b, "\nDNS\n")
		for _, e := range rs.DNS {
			fmt.Fprintf(b, "  %s (%s) [%s] %s\n",
				e.Target.Name, e.Target.Address, groupLabels[e.Group], e.Tag.Severity)
			if e.Result.Success {
				fmt.Fprintf(b, "    resolved: %s\n", strings.Join(e.Result.Addresses, ", "))
			} else {
				fmt.Fprintf(b, "    error: %s\n", e.Result.ErrorMessage)
			}
		}
	}

	if len(rs.Web) > 0 {
		fmt.Fprintf(b, "\nWEB\n")
		for _, e := range rs.Web {
			fmt.Fprintf(b, "  %s (%s) [%s] %s\n",
				e.Target.Name, e.Target.Address, groupLabels[e.Group], e.Tag.Severity)
			if e.Result.StatusCode > 0 {
				fmt.Fprintf(b, "    status %d, %d ms\n", e.Result.StatusCode, e.Result.ElapsedMs)
			}
			if e.Result.ErrorMessage != "" {
				fmt.Fprintf(b, "    error: %s\n", e.Result.ErrorMessage)
			}
		}
	}

	if len(rs.Skipped) > 0 {
		fmt.Fprintf(b, "\nSKIPPED\n")
		for _, s := range rs.Skipped {
			fmt.Fprintf(b, "  %s [%s]: %s\n", s.Target.Name, groupLabels[s.Group], s.Reason)
		}
	}
	fmt.Fprintln(b)
}

func verdict(ok bool) string {
	if ok {
		return "OK"
	}
	return "PROBLEM"
}
