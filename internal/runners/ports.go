package runner

import (
	"context"
	"time"

	"github.com/esuntp/network-test/internal/domain"
)

type PingProber interface {
	Run(ctx context.Context, address string, count int, timeout time.Duration) domain.PingResult
}

type DNSProber interface {
	Run(ctx context.Context, hostname string) domain.DNSResult
}

type WebProber interface {
	Run(ctx context.Context, url string) domain.HTTPResult
}
