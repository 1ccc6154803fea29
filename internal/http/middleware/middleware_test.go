package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"masters-league-service/internal/metrics"
	"masters-league-service/internal/testutil"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	var seen string
	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/league", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "abc-123" {
		t.Fatalf("expected request ID from header, got %q", seen)
	}
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request ID echoed in response, got %q", got)
	}
}

func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/league", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated request ID")
	}
}

func TestLoggingMiddlewareRejectsMalformedRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/league", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	got := rr.Header().Get("X-Request-ID")
	if got == "" || got == "bad id with spaces!" {
		t.Fatalf("expected malformed ID replaced, got %q", got)
	}
}

func TestLoggingMiddlewareCapturesStatus(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, rec, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/week/7", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 passed through, got %d", rr.Code)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/league", "/api/league"},
		{"/api/week/7", "/api/week/:week"},
		{"/api/week/13", "/api/week/:week"},
		{"/api/schedule?x=1", "/api/schedule"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeRequestID(t *testing.T) {
	if got := sanitizeRequestID("valid_id-42"); got != "valid_id-42" {
		t.Fatalf("expected valid ID kept, got %q", got)
	}
	if got := sanitizeRequestID(""); got == "" {
		t.Fatalf("expected generated ID for empty input")
	}
	if got := sanitizeRequestID("has spaces"); got == "has spaces" {
		t.Fatalf("expected malformed ID replaced")
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty ID, got %q", got)
	}
}

func TestLoggingMiddlewareTimingIsPositive(t *testing.T) {
	rec := metrics.NewRecorder()
	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, rec, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rr.Code)
	}
}
