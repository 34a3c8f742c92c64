package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/zergmon/internal/sysmon"
)

func serve(s *Server, method, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// TestServer_SecurityHeaders checks the hardening headers on every route,
// including error responses.
func TestServer_SecurityHeaders(t *testing.T) {
	headers := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"X-XSS-Protection":        "1; mode=block",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	}
	routes := []struct {
		method, path string
		code         int
	}{
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/snapshot", http.StatusServiceUnavailable},
		{http.MethodPost, "/metrics", http.StatusMethodNotAllowed},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := serve(newTestServer(), rt.method, rt.path, "")
			if rec.Code != rt.code {
				t.Errorf("status = %d, want %d", rec.Code, rt.code)
			}
			for name, want := range headers {
				if got := rec.Header().Get(name); got != want {
					t.Errorf("%s = %q, want %q", name, got, want)
				}
			}
		})
	}
}

// TestServer_CORS covers cross-origin reads of the scrape and JSON endpoints
// under the default and a restricted origin list.
func TestServer_CORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		path       string
		origin     string
		wantOrigin string
	}{
		{"wildcard snapshot", []string{"*"}, "/snapshot", "https://grafana.local", "*"},
		{"wildcard metrics without origin", []string{"*"}, "/metrics", "", "*"},
		{"listed origin echoed", []string{"https://grafana.local"}, "/snapshot", "https://grafana.local", "https://grafana.local"},
		{"unlisted origin refused", []string{"https://grafana.local"}, "/metrics", "https://evil.example", ""},
		{"no origin against list", []string{"https://grafana.local"}, "/snapshot", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer()
			s.security.AllowedOrigins = tt.origins
			rec := serve(s, http.MethodGet, tt.path, tt.origin)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.wantOrigin == "" {
				if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "" {
					t.Errorf("refused origin should get no Allow-Methods, got %q", got)
				}
				return
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, OPTIONS" {
				t.Errorf("Access-Control-Allow-Methods = %q", got)
			}
		})
	}

	t.Run("disabled", func(t *testing.T) {
		s := newTestServer()
		s.security.EnableCORS = false
		rec := serve(s, http.MethodGet, "/snapshot", "https://grafana.local")
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("CORS disabled should set no Allow-Origin, got %q", got)
		}
		if rec.Header().Get("X-Frame-Options") != "DENY" {
			t.Error("security headers should stay on with CORS disabled")
		}
	})
}

// TestServer_Preflight checks that OPTIONS is answered before the route
// handler runs: no 503 from /snapshot, no scrape body and no request count.
func TestServer_Preflight(t *testing.T) {
	for _, path := range []string{"/snapshot", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			s := newTestServer()
			rec := serve(s, http.MethodOptions, path, "https://grafana.local")

			if rec.Code != http.StatusNoContent {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
			}
			if rec.Body.Len() != 0 {
				t.Errorf("preflight body should be empty, got %q", rec.Body.String())
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
			}
			if got := rec.Header().Get("Access-Control-Max-Age"); got != "86400" {
				t.Errorf("Access-Control-Max-Age = %q, want 86400", got)
			}

			scrape := serve(s, http.MethodGet, "/metrics", "")
			if strings.Contains(scrape.Body.String(), `code="204"`) {
				t.Error("preflight should not reach the request counter")
			}
		})
	}
}

// TestServer_SnapshotCrossOrigin reads a published snapshot from a browser
// origin, the way a dashboard polls the exporter.
func TestServer_SnapshotCrossOrigin(t *testing.T) {
	s := newTestServer()
	s.exporter.Observe(sysmon.Snapshot{Overall: 50, PerCore: []float64{40, 60}})

	rec := serve(s, http.MethodGet, "/snapshot", "https://grafana.local")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("snapshot should be readable cross-origin")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}
