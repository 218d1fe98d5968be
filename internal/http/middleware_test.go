package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scoreboard-data-service/internal/metrics"
	"scoreboard-data-service/internal/testutil"
)

func echoRequestID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echoed-ID", RequestIDFromContext(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestMiddlewareKeepsValidRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil)(echoRequestID())

	req := httptest.NewRequest(http.MethodGet, "/all", nil)
	req.Header.Set("X-Request-ID", "trace-abc_123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "trace-abc_123" {
		t.Fatalf("response id = %q", got)
	}
	if got := rec.Header().Get("X-Echoed-ID"); got != "trace-abc_123" {
		t.Fatalf("context id = %q", got)
	}
	if !strings.Contains(buf.String(), "trace-abc_123") {
		t.Fatalf("request id missing from log: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("completion line missing: %s", buf.String())
	}
}

func TestMiddlewareReplacesInvalidRequestID(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
	}{
		{"empty", ""},
		{"spaces", "has spaces"},
		{"injection", `x" bad=1`},
		{"too long", strings.Repeat("a", 65)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := LoggingMiddleware(nil, nil)(echoRequestID())
			req := httptest.NewRequest(http.MethodGet, "/all", nil)
			if tc.incoming != "" {
				req.Header.Set("X-Request-ID", tc.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			got := rec.Header().Get("X-Request-ID")
			if got == tc.incoming {
				t.Fatalf("invalid id %q survived", tc.incoming)
			}
			if !requestIDPattern.MatchString(got) {
				t.Fatalf("generated id %q is not well formed", got)
			}
		})
	}
}

func TestMiddlewareRecordsStatus(t *testing.T) {
	recorder := metrics.NewRecorder()
	handler := LoggingMiddleware(nil, recorder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cricket", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/all", "/all"},
		{"/health", "/health"},
		{"/ready", "/ready"},
		{"/hockey", "/:sport"},
		{"/college-football", "/:sport"},
		{"/golf?round=2", "/:sport"},
		{"/cricket", "/cricket"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizePath(tc.path); got != tc.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestSanitizeRequestIDGeneratesUnique(t *testing.T) {
	a := sanitizeRequestID("")
	b := sanitizeRequestID("")
	if a == b {
		t.Fatalf("generated ids collided: %q", a)
	}
}
