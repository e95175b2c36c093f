package domain

// ThresholdConfig holds the classification limits. A value of 0 disables
// that check.
type ThresholdConfig struct {
	PingAvgWarnMs float64
	PingAvgFailMs float64
	LossWarnPct   int
	LossFailPct   int
	JitterWarnMs  float64
	JitterFailMs  float64
	WebWarnMs     int
	WebFailMs     int
}

func DefaultThresholds() ThresholdConfig {
	return ThresholdConfig{
		PingAvgWarnMs: 50,
		PingAvgFailMs: 150,
		LossWarnPct:   5,
		LossFailPct:   10,
		JitterWarnMs:  30,
		JitterFailMs:  100,
		WebWarnMs:     2000,
		WebFailMs:     5000,
	}
}
