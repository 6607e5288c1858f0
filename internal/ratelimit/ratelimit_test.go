package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/time/rate"
)

func TestAllowPerIPIndependence(t *testing.T) {
	l := NewIPLimiter(rate.Limit(1), 1)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first request from an IP should pass")
	}
	if l.Allow("10.0.0.1") {
		t.Error("second immediate request from same IP should be limited")
	}
	// A different IP has its own bucket.
	if !l.Allow("10.0.0.2") {
		t.Error("other IPs must not share the exhausted bucket")
	}
}

func TestMiddlewareRejectsWith429(t *testing.T) {
	l := NewIPLimiter(rate.Limit(1), 1)
	handler := l.Middleware(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/asteroids/autocomplete", nil)
	req.RemoteAddr = "203.0.113.7:1234"

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second request: status = %d, want 429", w.Code)
	}
}

func TestClientIPKeying(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		xff        string
		xri        string
		want       string
	}{
		{"remote addr", false, "", "", "203.0.113.7"},
		{"headers ignored without trust", false, "198.51.100.1", "", "203.0.113.7"},
		{"forwarded-for", true, "198.51.100.1", "", "198.51.100.1"},
		{"forwarded-for chain takes leftmost", true, "198.51.100.1, 10.0.0.1, 10.0.0.2", "", "198.51.100.1"},
		{"real-ip fallback", true, "", "198.51.100.2", "198.51.100.2"},
		{"trusted but no headers", true, "", "", "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = "203.0.113.7:54321"
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}

			if got := clientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddlewareBurst(t *testing.T) {
	l := NewIPLimiter(rate.Limit(1), 5)
	for i := 0; i < 5; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d within burst should pass", i)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request beyond burst should be limited")
	}
}
