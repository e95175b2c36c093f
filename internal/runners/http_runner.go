package runner

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/esuntp/network-test/internal/domain"
)

const userAgent = "netdiag/1.0"

// HTTPRunner fetches a URL with GET, following redirects, and reports
// reachability. Any response with a status code below 500 means the server
// answered, which is what a diagnostic cares about; 4xx still proves the
// path works.
type HTTPRunner struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPRunner(timeout time.Duration, logger *slog.Logger) *HTTPRunner {
	return &HTTPRunner{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		logger: logger,
	}
}

// Run GETs target and measures wall-clock time to response or failure.
// StatusCode stays 0 when no response was received; ElapsedMs stays 0 when
// the request never left. Run never returns an error.
func (r *HTTPRunner) Run(ctx context.Context, target string) domain.HTTPResult {
	fullURL, err := normalizeURL(target)
	if err != nil {
		return domain.HTTPResult{ErrorMessage: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.HTTPResult{ErrorMessage: fmt.Sprintf("invalid request: %v", err)}
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := r.client.Do(req)
	elapsed := int(time.Since(start).Milliseconds())

	if err != nil {
		r.logger.Debug("http fetch failed", "url", fullURL, "error", err.Error())
		return domain.HTTPResult{ElapsedMs: elapsed, ErrorMessage: err.Error()}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	result := domain.HTTPResult{
		StatusCode: resp.StatusCode,
		ElapsedMs:  elapsed,
	}
	if resp.StatusCode >= 1 && resp.StatusCode < 500 {
		result.Success = true
	} else {
		result.ErrorMessage = fmt.Sprintf("server error: %s", resp.Status)
	}

	r.logger.Debug("http fetch complete",
		"url", fullURL,
		"status", resp.StatusCode,
		"elapsed_ms", elapsed,
	)
	return result
}

func normalizeURL(target string) (string, error) {
	if u, err := url.ParseRequestURI(target); err == nil && u.Scheme != "" {
		return target, nil
	}
	if u, err := url.Parse("http://" + target); err == nil && u.Host != "" {
		return u.String(), nil
	}
	return "", fmt.Errorf("invalid URL format: %s", target)
}
