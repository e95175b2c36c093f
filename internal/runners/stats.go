package runner

import (
	"math"

	"github.com/esuntp/network-test/internal/domain"
)

// Aggregate folds a sequence of successful round-trip samples (ms) into a
// PingResult. sent is the number of echo requests issued, so
// sent-len(samples) packets were lost. All rounding is half away from zero;
// latency values keep one decimal. Jitter is the mean absolute difference
// of consecutive samples, 0 with fewer than two.
func Aggregate(samples []float64, sent int) domain.PingResult {
	if sent < 1 {
		sent = 1
	}

	if len(samples) == 0 {
		return domain.PingResult{
			Reachable: false,
			Sent:      sent,
			Received:  0,
			LossPct:   100,
		}
	}

	sum := samples[0]
	min := samples[0]
	max := samples[0]
	for _, s := range samples[1:] {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	jitter := 0.0
	if len(samples) >= 2 {
		var deltas float64
		for i := 1; i < len(samples); i++ {
			deltas += math.Abs(samples[i] - samples[i-1])
		}
		jitter = deltas / float64(len(samples)-1)
	}

	loss := int(math.Round(float64(sent-len(samples)) / float64(sent) * 100))

	return domain.PingResult{
		Reachable: true,
		Sent:      sent,
		Received:  len(samples),
		LossPct:   loss,
		AvgMs:     round1(sum / float64(len(samples))),
		MinMs:     round1(min),
		MaxMs:     round1(max),
		JitterMs:  round1(jitter),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
