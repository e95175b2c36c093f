// Package orchestrator drives one full diagnostic run: local-network
// checks first, then internal web, external web, internal ping and
// external ping targets, strictly in declaration order. Probes run one at
// a time; a failing target never stops the run.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/esuntp/network-test/internal/classify"
	"github.com/esuntp/network-test/internal/domain"
	runner "github.com/esuntp/network-test/internal/runners"
	"github.com/esuntp/network-test/pkg/validator"
)

// Plan is everything one run needs: resolved target lists, probe tuning
// and thresholds. Local holds the gateway and DNS-server ping targets,
// already passed through the target resolver.
type Plan struct {
	PingCount      int
	PingTimeout    time.Duration
	DNSProbeDomain string
	Thresholds     domain.ThresholdConfig

	Local        []domain.TargetDescriptor
	InternalWeb  []domain.TargetDescriptor
	ExternalWeb  []domain.TargetDescriptor
	InternalPing []domain.TargetDescriptor
	ExternalPing []domain.TargetDescriptor
}

// ProgressFunc is called after each completed probe step with the number
// of completed steps and the fixed total. Completed is strictly
// increasing and reaches total when the run finishes.
type ProgressFunc func(completed, total int)

const dnsSmokeTestName = "DNS Resolution"

type Orchestrator struct {
	ping     runner.PingProber
	dns      runner.DNSProber
	web      runner.WebProber
	logger   *slog.Logger
	progress ProgressFunc
}

// New wires an orchestrator. progress may be nil.
func New(ping runner.PingProber, dns runner.DNSProber, web runner.WebProber, logger *slog.Logger, progress ProgressFunc) *Orchestrator {
	return &Orchestrator{
		ping:     ping,
		dns:      dns,
		web:      web,
		logger:   logger,
		progress: progress,
	}
}

// Run executes the plan front to back and always returns a complete
// ResultSet. Unresolved targets are skipped and excluded from totals.
func (o *Orchestrator) Run(ctx context.Context, plan Plan) *domain.ResultSet {
	rs := &domain.ResultSet{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
	}

	total := countSteps(plan)
	completed := 0
	step := func() {
		completed++
		if o.progress != nil {
			o.progress(completed, total)
		}
	}

	o.logger.Info("diagnostic run started", "run_id", rs.RunID, "steps", total)

	o.runLocal(ctx, plan, rs, step)
	o.runWebGroup(ctx, plan, rs, plan.InternalWeb, domain.GroupInternalWeb, step)
	o.runWebGroup(ctx, plan, rs, plan.ExternalWeb, domain.GroupExternalWeb, step)
	o.runPingGroup(ctx, plan, rs, plan.InternalPing, domain.GroupInternalPing, step)
	o.runPingGroup(ctx, plan, rs, plan.ExternalPing, domain.GroupExternalPing, step)

	rs.InternalServicesOK = o.internalServicesOK(rs)
	rs.InternetServicesOK = o.internetServicesOK(rs)
	rs.Elapsed = time.Since(rs.StartedAt)

	o.logger.Info("diagnostic run complete",
		"run_id", rs.RunID,
		"elapsed", rs.Elapsed.Round(time.Millisecond).String(),
		"fails", rs.FailCount(),
		"skipped", len(rs.Skipped),
	)
	return rs
}

// runLocal pings the gateway and the DNS server, then resolves the smoke
// test domain. LocalNetworkOK covers the local checks that actually ran;
// a skipped check is an absence, not a failure.
func (o *Orchestrator) runLocal(ctx context.Context, plan Plan, rs *domain.ResultSet, step func()) {
	allOK := true
	ran := 0

	for _, t := range plan.Local {
		if t.Unresolved {
			o.skip(rs, t, domain.GroupLocal)
			continue
		}
		result := o.ping.Run(ctx, t.Address, plan.PingCount, plan.PingTimeout)
		rs.Ping = append(rs.Ping, domain.PingEntry{
			Target: t,
			Group:  domain.GroupLocal,
			Result: result,
			Tag:    classify.Ping(result, plan.Thresholds),
		})
		ran++
		if !result.Reachable {
			allOK = false
		}
		step()
	}

	if plan.DNSProbeDomain != "" {
		smoke := domain.TargetDescriptor{
			Name:    dnsSmokeTestName,
			Address: plan.DNSProbeDomain,
		}
		result := o.dns.Run(ctx, plan.DNSProbeDomain)
		rs.DNS = append(rs.DNS, domain.DNSEntry{
			Target: smoke,
			Group:  domain.GroupLocal,
			Result: result,
			Tag:    classify.DNS(result),
		})
		ran++
		if !result.Success {
			allOK = false
		}
		step()
	}

	rs.LocalNetworkOK = ran > 0 && allOK
}

// runWebGroup fetches each web target and pairs it with a DNS probe of its
// hostname, unless the hostname is a literal IP.
func (o *Orchestrator) runWebGroup(ctx context.Context, plan Plan, rs *domain.ResultSet, targets []domain.TargetDescriptor, group domain.TargetGroup, step func()) {
	for _, t := range targets {
		if t.Unresolved {
			o.skip(rs, t, group)
			continue
		}

		result := o.web.Run(ctx, t.Address)
		rs.Web = append(rs.Web, domain.WebEntry{
			Target: t,
			Group:  group,
			Result: result,
			Tag:    classify.Web(&result, plan.Thresholds),
		})
		step()

		host := validator.HostOf(t.Address)
		if validator.IsLiteralIP(host) {
			continue
		}
		dnsResult := o.dns.Run(ctx, host)
		rs.DNS = append(rs.DNS, domain.DNSEntry{
			Target: t,
			Group:  group,
			Result: dnsResult,
			Tag:    classify.DNS(dnsResult),
		})
		step()
	}
}

func (o *Orchestrator) runPingGroup(ctx context.Context, plan Plan, rs *domain.ResultSet, targets []domain.TargetDescriptor, group domain.TargetGroup, step func()) {
	for _, t := range targets {
		if t.Unresolved {
			o.skip(rs, t, group)
			continue
		}
		result := o.ping.Run(ctx, t.Address, plan.PingCount, plan.PingTimeout)
		rs.Ping = append(rs.Ping, domain.PingEntry{
			Target: t,
			Group:  group,
			Result: result,
			Tag:    classify.Ping(result, plan.Thresholds),
		})
		step()
	}
}

func (o *Orchestrator) skip(rs *domain.ResultSet, t domain.TargetDescriptor, group domain.TargetGroup) {
	o.logger.Warn("target skipped", "target", t.Name, "group", string(group))
	rs.Skipped = append(rs.Skipped, domain.SkippedTarget{
		Target: t,
		Group:  group,
		Reason: "address not discovered",
	})
}

// internalServicesOK: at least one internal probe of either kind succeeded.
func (o *Orchestrator) internalServicesOK(rs *domain.ResultSet) bool {
	for _, e := range rs.Web {
		if e.Group == domain.GroupInternalWeb && e.Result.Success {
			return true
		}
	}
	for _, e := range rs.DNS {
		if e.Group == domain.GroupInternalWeb && e.Result.Success {
			return true
		}
	}
	for _, e := range rs.Ping {
		if e.Group == domain.GroupInternalPing && e.Result.Reachable {
			return true
		}
	}
	return false
}

// internetServicesOK: at least one external web fetch succeeded.
func (o *Orchestrator) internetServicesOK(rs *domain.ResultSet) bool {
	for _, e := range rs.Web {
		if e.Group == domain.GroupExternalWeb && e.Result.Success {
			return true
		}
	}
	return false
}

// countSteps computes the fixed step total before anything runs, mirroring
// the skip rules of the run itself.
func countSteps(plan Plan) int {
	total := 0
	for _, t := range plan.Local {
		if !t.Unresolved {
			total++
		}
	}
	if plan.DNSProbeDomain != "" {
		total++
	}
	for _, targets := range [][]domain.TargetDescriptor{plan.InternalWeb, plan.ExternalWeb} {
		for _, t := range targets {
			if t.Unresolved {
				continue
			}
			total++
			if !validator.IsLiteralIP(validator.HostOf(t.Address)) {
				total++
			}
		}
	}
	for _, targets := range [][]domain.TargetDescriptor{plan.InternalPing, plan.ExternalPing} {
		for _, t := range targets {
			if !t.Unresolved {
				total++
			}
		}
	}
	return total
}
