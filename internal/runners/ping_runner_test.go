package runner

import "testing"

func TestParseRTT(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   float64
	}{
		{
			name:   "linux reply",
			output: "64 bytes from 192.168.1.1: icmp_seq=1 ttl=64 time=12.4 ms",
			want:   12.4,
		},
		{
			name:   "windows sub-millisecond",
			output: "Reply from 192.168.1.1: bytes=32 time<1ms TTL=64",
			want:   1,
		},
		{
			name:   "round-trip summary line",
			output: "round-trip min/avg/max = 10.1/15.7/22.0 ms",
			want:   15.7,
		},
		{
			name:   "no time in output",
			output: "Request timeout for icmp_seq 0",
			want:   0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseRTT(tc.output)
			if got != tc.want {
				t.Fatalf("parseRTT(%q) = %f, want %f", tc.output, got, tc.want)
			}
		})
	}
}
