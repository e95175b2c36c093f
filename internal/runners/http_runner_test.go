package runner

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPRunner_StatusOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	r := NewHTTPRunner(2*time.Second, testLogger())
	out := r.Run(context.Background(), s.URL)
	if !out.Success {
		t.Fatalf("want success, got %+v", out)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want status 200, got %d", out.StatusCode)
	}
	if out.ElapsedMs < 0 {
		t.Fatalf("elapsed should be >= 0, got %d", out.ElapsedMs)
	}
}

func TestHTTPRunner_ClientErrorIsStillSuccess(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", 404)
	}))
	defer s.Close()

	r := NewHTTPRunner(2*time.Second, testLogger())
	out := r.Run(context.Background(), s.URL)
	if !out.Success {
		t.Fatalf("404 means the server answered, want success, got %+v", out)
	}
	if out.StatusCode != 404 {
		t.Fatalf("want status 404, got %d", out.StatusCode)
	}
}

func TestHTTPRunner_ServerErrorIsFailure(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 503)
	}))
	defer s.Close()

	r := NewHTTPRunner(2*time.Second, testLogger())
	out := r.Run(context.Background(), s.URL)
	if out.Success {
		t.Fatalf("want failure on 503, got %+v", out)
	}
	if out.StatusCode != 503 {
		t.Fatalf("want status 503, got %d", out.StatusCode)
	}
	if out.ErrorMessage == "" {
		t.Fatalf("want error message on server error")
	}
}

func TestHTTPRunner_TimeoutSetsStatusZero(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	r := NewHTTPRunner(50*time.Millisecond, testLogger())
	out := r.Run(context.Background(), s.URL)
	if out.Success {
		t.Fatalf("want failure due to timeout, got %+v", out)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.StatusCode)
	}
	if out.ErrorMessage == "" {
		t.Fatalf("want non-empty error message")
	}
}

func TestHTTPRunner_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})
	s := httptest.NewServer(mux)
	defer s.Close()

	r := NewHTTPRunner(2*time.Second, testLogger())
	out := r.Run(context.Background(), s.URL)
	if !out.Success || out.StatusCode != 200 {
		t.Fatalf("want redirect followed to 200, got %+v", out)
	}
}

func TestHTTPRunner_InvalidURLNeverLeaves(t *testing.T) {
	r := NewHTTPRunner(2*time.Second, testLogger())
	out := r.Run(context.Background(), "exa mple.com")
	if out.Success {
		t.Fatalf("want failure for invalid URL, got %+v", out)
	}
	if out.ElapsedMs != 0 {
		t.Fatalf("request never left, want elapsed 0, got %d", out.ElapsedMs)
	}
	if out.ErrorMessage == "" {
		t.Fatalf("want non-empty error message")
	}
}

func TestNormalizeURL_AddsScheme(t *testing.T) {
	got, err := normalizeURL("intranet.corp.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "http://intranet.corp.example" {
		t.Fatalf("want http scheme added, got %q", got)
	}
}
