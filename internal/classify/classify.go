// Package classify turns probe results into severity tags using the
// configured thresholds. Evaluation order is fixed: all FAIL conditions
// before any WARN condition, latency before loss before jitter, first
// match wins.
package classify

import (
	"fmt"

	"github.com/esuntp/network-test/internal/domain"
)

// Ping classifies an aggregate ping result.
func Ping(result domain.PingResult, t domain.ThresholdConfig) domain.ClassificationTag {
	if !result.Reachable {
		return domain.ClassificationTag{Severity: domain.SeverityFail, Reason: "unreachable"}
	}

	switch {
	case t.PingAvgFailMs > 0 && result.HasLatency() && result.AvgMs >= t.PingAvgFailMs:
		return failTag("average latency %.1f ms reached fail threshold %.0f ms",
			result.AvgMs, t.PingAvgFailMs)
	case t.LossFailPct > 0 && result.LossPct >= t.LossFailPct:
		return failTag("packet loss %d%% reached fail threshold %d%%",
			result.LossPct, t.LossFailPct)
	case t.JitterFailMs > 0 && result.HasLatency() && result.JitterMs >= t.JitterFailMs:
		return failTag("jitter %.1f ms reached fail threshold %.0f ms",
			result.JitterMs, t.JitterFailMs)
	case t.PingAvgWarnMs > 0 && result.HasLatency() && result.AvgMs >= t.PingAvgWarnMs:
		return warnTag("average latency %.1f ms reached warn threshold %.0f ms",
			result.AvgMs, t.PingAvgWarnMs)
	case t.LossWarnPct > 0 && result.LossPct >= t.LossWarnPct:
		return warnTag("packet loss %d%% reached warn threshold %d%%",
			result.LossPct, t.LossWarnPct)
	case t.JitterWarnMs > 0 && result.HasLatency() && result.JitterMs >= t.JitterWarnMs:
		return warnTag("jitter %.1f ms reached warn threshold %.0f ms",
			result.JitterMs, t.JitterWarnMs)
	}

	return domain.OKTag()
}

// Web classifies an HTTP fetch result. A nil result means the probe never
// ran and counts as a failure.
func Web(result *domain.HTTPResult, t domain.ThresholdConfig) domain.ClassificationTag {
	if result == nil {
		return domain.ClassificationTag{Severity: domain.SeverityFail, Reason: "no result"}
	}

	if !result.Success {
		reason := result.ErrorMessage
		if reason == "" {
			reason = "no response"
		}
		return domain.ClassificationTag{Severity: domain.SeverityFail, Reason: reason}
	}

	switch {
	case t.WebFailMs > 0 && result.ElapsedMs >= t.WebFailMs:
		return failTag("response time %d ms reached fail threshold %d ms",
			result.ElapsedMs, t.WebFailMs)
	case t.WebWarnMs > 0 && result.ElapsedMs >= t.WebWarnMs:
		return warnTag("response time %d ms reached warn threshold %d ms",
			result.ElapsedMs, t.WebWarnMs)
	}

	return domain.OKTag()
}

// DNS tags a resolution result. There are no thresholds for DNS; it either
// resolved or it did not.
func DNS(result domain.DNSResult) domain.ClassificationTag {
	if !result.Success {
		reason := result.ErrorMessage
		if reason == "" {
			reason = "resolution failed"
		}
		return domain.ClassificationTag{Severity: domain.SeverityFail, Reason: reason}
	}
	return domain.ClassificationTag{
		Severity: domain.SeverityOK,
		Reason:   fmt.Sprintf("resolved %d address(es)", len(result.Addresses)),
	}
}

func failTag(format string, args ...any) domain.ClassificationTag {
	return domain.ClassificationTag{
		Severity: domain.SeverityFail,
		Reason:   fmt.Sprintf(format, args...),
	}
}

func warnTag(format string, args ...any) domain.ClassificationTag {
	return domain.ClassificationTag{
		Severity: domain.SeverityWarn,
		Reason:   fmt.Sprintf(format, args...),
	}
}
