package runner

import (
	"context"
	"log/slog"
	"math"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"time"

	"github.com/esuntp/network-test/internal/domain"
)

// PingRunner sends sequential ICMP echo requests through the platform ping
// binary, one packet per invocation. Raw ICMP sockets need elevated
// privileges; the system binary does not.
type PingRunner struct {
	logger *slog.Logger
}

func NewPingRunner(logger *slog.Logger) *PingRunner {
	return &PingRunner{logger: logger}
}

var rttPatterns = []*regexp.Regexp{
	regexp.MustCompile(`time[=<]([0-9.]+)\s*ms`),
	regexp.MustCompile(`round-trip min/avg/max = [0-9.]+/([0-9.]+)/`),
}

// Run issues count echo requests one after another, each with its own
// timeout. A failed packet (timeout, unreachable, any transport error) is
// counted as loss and the loop continues; Run never returns an error.
func (r *PingRunner) Run(ctx context.Context, address string, count int, timeout time.Duration) domain.PingResult {
	if count < 1 {
		count = 1
	}

	samples := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		rtt, ok := r.pingOnce(ctx, address, timeout)
		if ok {
			samples = append(samples, rtt)
		}
	}

	result := Aggregate(samples, count)
	r.logger.Debug("ping complete",
		"address", address,
		"sent", result.Sent,
		"received", result.Received,
		"loss_pct", result.LossPct,
	)
	return result
}

func (r *PingRunner) pingOnce(ctx context.Context, address string, timeout time.Duration) (float64, bool) {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "ping", "-n", "1",
			"-w", strconv.Itoa(int(timeout.Milliseconds())), address)
	} else {
		// Linux -W takes whole seconds
		secs := int(math.Ceil(timeout.Seconds()))
		if secs < 1 {
			secs = 1
		}
		cmd = exec.CommandContext(ctx, "ping", "-c", "1",
			"-W", strconv.Itoa(secs), address)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, false
	}
	return parseRTT(string(output)), true
}

// parseRTT pulls the round-trip time out of ping output. Exit status zero
// with no parsable time still counts as a reply; the sample is then 0.
func parseRTT(output string) float64 {
	for _, re := range rttPatterns {
		matches := re.FindStringSubmatch(output)
		if len(matches) > 1 {
			if rtt, err := strconv.ParseFloat(matches[1], 64); err == nil {
				return rtt
			}
		}
	}
	return 0
}
