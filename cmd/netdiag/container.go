package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/esuntp/network-test/internal/config"
	"github.com/esuntp/network-test/internal/domain"
	"github.com/esuntp/network-test/internal/netinfo"
	"github.com/esuntp/network-test/internal/orchestrator"
	"github.com/esuntp/network-test/internal/resolve"
	runner "github.com/esuntp/network-test/internal/runners"
)

type Container struct {
	Config       *config.Config
	Logger       *slog.Logger
	Snapshot     domain.NetworkSnapshot
	Orchestrator *orchestrator.Orchestrator
}

func BuildContainer(configDir string) (*Container, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	c.initLogger()
	c.initSnapshot()
	c.initOrchestrator()
	return c, nil
}

func (c *Container) initLogger() {
	level := slog.LevelInfo
	switch c.Config.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	// report goes to stdout, logs stay on stderr
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if c.Config.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	c.Logger = slog.New(handler)
}

func (c *Container) initSnapshot() {
	c.Snapshot = netinfo.Collect(c.Logger)
}

func (c *Container) initOrchestrator() {
	pingRunner := runner.NewPingRunner(c.Logger)
	dnsRunner := runner.NewDNSRunner(c.Snapshot.PrimaryDNSServer, c.Config.DNSTimeout(), c.Logger)
	httpRunner := runner.NewHTTPRunner(c.Config.WebTimeout(), c.Logger)

	progress := func(completed, total int) {
		c.Logger.Info("progress",
			"completed", completed,
			"total", total,
			"percent", completed*100/total,
		)
	}

	c.Orchestrator = orchestrator.New(pingRunner, dnsRunner, httpRunner, c.Logger, progress)
}

// BuildPlan resolves placeholder targets against the snapshot and lays out
// the run.
func (c *Container) BuildPlan() orchestrator.Plan {
	cfg := c.Config
	return orchestrator.Plan{
		PingCount:      cfg.Ping.Count,
		PingTimeout:    time.Duration(cfg.Ping.TimeoutMs) * time.Millisecond,
		DNSProbeDomain: cfg.DNS.ProbeDomain,
		Thresholds:     cfg.ToThresholds(),
		Local:          resolve.Apply(config.LocalTargets(), c.Snapshot),
		InternalWeb:    config.Descriptors(cfg.Targets.InternalWeb, domain.WebTarget),
		ExternalWeb:    config.Descriptors(cfg.Targets.ExternalWeb, domain.WebTarget),
		InternalPing:   config.Descriptors(cfg.Targets.InternalPing, domain.PingTarget),
		ExternalPing:   config.Descriptors(cfg.Targets.ExternalPing, domain.PingTarget),
	}
}
