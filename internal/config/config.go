package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/esuntp/network-test/internal/domain"
	"github.com/esuntp/network-test/pkg/validator"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Ping       PingConfig       `mapstructure:"ping"`
	Web        WebConfig        `mapstructure:"web"`
	DNS        DNSConfig        `mapstructure:"dns"`
	Thresholds ThresholdsConfig `mapstructure:"thresholds"`
	Targets    TargetsConfig    `mapstructure:"targets"`
	Report     ReportConfig     `mapstructure:"report"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

type PingConfig struct {
	Count     int `mapstructure:"count"`
	TimeoutMs int `mapstructure:"timeout_ms"`
}

type WebConfig struct {
	TimeoutS int `mapstructure:"timeout_s"`
}

type DNSConfig struct {
	ProbeDomain string `mapstructure:"probe_domain"`
	TimeoutMs   int    `mapstructure:"timeout_ms"`
}

type ThresholdsConfig struct {
	PingAvgWarnMs float64 `mapstructure:"ping_avg_warn_ms"`
	PingAvgFailMs float64 `mapstructure:"ping_avg_fail_ms"`
	LossWarnPct   int     `mapstructure:"loss_warn_pct"`
	LossFailPct   int     `mapstructure:"loss_fail_pct"`
	JitterWarnMs  float64 `mapstructure:"jitter_warn_ms"`
	JitterFailMs  float64 `mapstructure:"jitter_fail_ms"`
	WebWarnMs     int     `mapstructure:"web_warn_ms"`
	WebFailMs     int     `mapstructure:"web_fail_ms"`
}

type TargetEntry struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

type TargetsConfig struct {
	InternalPing []TargetEntry `mapstructure:"internal_ping"`
	ExternalPing []TargetEntry `mapstructure:"external_ping"`
	InternalWeb  []TargetEntry `mapstructure:"internal_web"`
	ExternalWeb  []TargetEntry `mapstructure:"external_web"`
}

type ReportConfig struct {
	Dir string `mapstructure:"dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads config.yaml from dir. A missing file is fine, defaults apply;
// an unreadable or invalid file is not.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "netdiag")
	v.SetDefault("app.version", "1.0")

	v.SetDefault("ping.count", 4)
	v.SetDefault("ping.timeout_ms", 1000)

	v.SetDefault("web.timeout_s", 10)

	v.SetDefault("dns.probe_domain", "www.google.com")
	v.SetDefault("dns.timeout_ms", 3000)

	def := domain.DefaultThresholds()
	v.SetDefault("thresholds.ping_avg_warn_ms", def.PingAvgWarnMs)
	v.SetDefault("thresholds.ping_avg_fail_ms", def.PingAvgFailMs)
	v.SetDefault("thresholds.loss_warn_pct", def.LossWarnPct)
	v.SetDefault("thresholds.loss_fail_pct", def.LossFailPct)
	v.SetDefault("thresholds.jitter_warn_ms", def.JitterWarnMs)
	v.SetDefault("thresholds.jitter_fail_ms", def.JitterFailMs)
	v.SetDefault("thresholds.web_warn_ms", def.WebWarnMs)
	v.SetDefault("thresholds.web_fail_ms", def.WebFailMs)

	v.SetDefault("report.dir", "reports")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

func validateConfig(cfg *Config) error {
	if cfg.Ping.Count < 1 {
		return fmt.Errorf("ping count must be at least 1, got %d", cfg.Ping.Count)
	}
	if cfg.Ping.TimeoutMs < 1 {
		return fmt.Errorf("ping timeout must be positive, got %d ms", cfg.Ping.TimeoutMs)
	}
	if cfg.Web.TimeoutS < 1 {
		return fmt.Errorf("web timeout must be positive, got %d s", cfg.Web.TimeoutS)
	}
	if cfg.DNS.TimeoutMs < 1 {
		return fmt.Errorf("dns timeout must be positive, got %d ms", cfg.DNS.TimeoutMs)
	}

	t := cfg.Thresholds
	for name, value := range map[string]float64{
		"ping_avg_warn_ms": t.PingAvgWarnMs,
		"ping_avg_fail_ms": t.PingAvgFailMs,
		"loss_warn_pct":    float64(t.LossWarnPct),
		"loss_fail_pct":    float64(t.LossFailPct),
		"jitter_warn_ms":   t.JitterWarnMs,
		"jitter_fail_ms":   t.JitterFailMs,
		"web_warn_ms":      float64(t.WebWarnMs),
		"web_fail_ms":      float64(t.WebFailMs),
	} {
		if value < 0 {
			return fmt.Errorf("threshold %s must not be negative", name)
		}
	}

	for group, entries := range map[string][]TargetEntry{
		"internal_ping": cfg.Targets.InternalPing,
		"external_ping": cfg.Targets.ExternalPing,
		"internal_web":  cfg.Targets.InternalWeb,
		"external_web":  cfg.Targets.ExternalWeb,
	} {
		if err := validateGroup(group, entries); err != nil {
			return err
		}
	}

	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("invalid logging format %q", cfg.Logging.Format)
	}

	return nil
}

func validateGroup(group string, entries []TargetEntry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("target group %s: target name is required", group)
		}
		if e.Name == domain.DefaultGatewayName || e.Name == domain.PrimaryDNSServerName {
			return fmt.Errorf("target group %s: name %q is reserved", group, e.Name)
		}
		if seen[e.Name] {
			return fmt.Errorf("target group %s: duplicate target name %q", group, e.Name)
		}
		seen[e.Name] = true
		if !validator.ValidateAddress(e.Address) {
			return fmt.Errorf("target group %s: invalid address %q for %q", group, e.Address, e.Name)
		}
	}
	return nil
}

// ToThresholds converts the config block into the classification limits.
func (c *Config) ToThresholds() domain.ThresholdConfig {
	return domain.ThresholdConfig{
		PingAvgWarnMs: c.Thresholds.PingAvgWarnMs,
		PingAvgFailMs: c.Thresholds.PingAvgFailMs,
		LossWarnPct:   c.Thresholds.LossWarnPct,
		LossFailPct:   c.Thresholds.LossFailPct,
		JitterWarnMs:  c.Thresholds.JitterWarnMs,
		JitterFailMs:  c.Thresholds.JitterFailMs,
		WebWarnMs:     c.Thresholds.WebWarnMs,
		WebFailMs:     c.Thresholds.WebFailMs,
	}
}

func (c *Config) PingTimeout() time.Duration {
	return time.Duration(c.Ping.TimeoutMs) * time.Millisecond
}

func (c *Config) WebTimeout() time.Duration {
	return time.Duration(c.Web.TimeoutS) * time.Second
}

func (c *Config) DNSTimeout() time.Duration {
	return time.Duration(c.DNS.TimeoutMs) * time.Millisecond
}

// LocalTargets returns the two placeholder targets filled in from the
// network snapshot before probing.
func LocalTargets() []domain.TargetDescriptor {
	return []domain.TargetDescriptor{
		{Name: domain.DefaultGatewayName, Address: domain.PlaceholderAddress, Kind: domain.PingTarget},
		{Name: domain.PrimaryDNSServerName, Address: domain.PlaceholderAddress, Kind: domain.PingTarget},
	}
}

// Descriptors converts a target group into probe descriptors of the given
// kind, preserving declaration order.
func Descriptors(entries []TargetEntry, kind domain.TargetKind) []domain.TargetDescriptor {
	out := make([]domain.TargetDescriptor, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.TargetDescriptor{
			Name:    e.Name,
			Address: e.Address,
			Kind:    kind,
		})
	}
	return out
}
