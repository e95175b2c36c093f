package domain

// PingResult holds the aggregate outcome of a sequential ping run.
// AvgMs, MinMs, MaxMs and JitterMs are meaningful only when Received > 0.
type PingResult struct {
	Reachable bool
	Sent      int
	Received  int
	LossPct   int
	AvgMs     float64
	MinMs     float64
	MaxMs     float64
	JitterMs  float64
}

// HasLatency reports whether the latency fields carry data.
func (r PingResult) HasLatency() bool {
	return r.Received > 0
}

// DNSResult holds the outcome of a single name resolution.
// ErrorMessage is empty iff Success; Addresses preserve resolver order.
type DNSResult struct {
	Success      bool
	Addresses    []string
	ErrorMessage string
}

// HTTPResult holds the outcome of a single GET. StatusCode is 0 when no
// response was received; ElapsedMs is wall-clock time to response or failure.
type HTTPResult struct {
	Success      bool
	StatusCode   int
	ElapsedMs    int
	ErrorMessage string
}

type Severity string

const (
	SeverityOK   Severity = "OK"
	SeverityWarn Severity = "WARN"
	SeverityFail Severity = "FAIL"
)

// ClassificationTag pairs a severity with an operator-readable reason.
type ClassificationTag struct {
	Severity Severity
	Reason   string
}

func OKTag() ClassificationTag {
	return ClassificationTag{Severity: SeverityOK, Reason: "within thresholds"}
}
