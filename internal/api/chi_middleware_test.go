// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/flavorlens/internal/config"
	"github.com/tomtom215/flavorlens/internal/models"
)

func TestChiMiddlewareConfigFrom(t *testing.T) {
	t.Parallel()

	c := ChiMiddlewareConfigFrom(
		config.CORSConfig{Origins: []string{"http://localhost:3000"}, AllowCredentials: true},
		config.RateLimitConfig{Requests: 5, Window: 10 * time.Second},
	)
	if len(c.CORSAllowedOrigins) != 1 || !c.CORSAllowCredentials {
		t.Errorf("cors = %+v", c)
	}
	if c.CORSMaxAge != 600 {
		t.Errorf("max age = %d, want default 600", c.CORSMaxAge)
	}
	if c.RateLimitRequests != 5 || c.RateLimitWindow != 10*time.Second {
		t.Errorf("rate limit = %d/%v", c.RateLimitRequests, c.RateLimitWindow)
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	router := newTestRouter(&stubQuerier{}, nil, mw)

	for i := 0; i < 2; i++ {
		if rec := get(t, router, "/api/phase?ingredient=matcha"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}

	rec := get(t, router, "/api/phase?ingredient=matcha")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q, want 60", rec.Header().Get("Retry-After"))
	}
	if resp := decodeError(t, rec); resp.Error.Code != models.ErrCodeRateLimited {
		t.Errorf("code = %q", resp.Error.Code)
	}

	// health checks are outside /api
	if rec := get(t, router, "/health"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	mw.CORSAllowedOrigins = []string{"http://localhost:3000"}
	router := newTestRouter(&stubQuerier{}, nil, mw)

	tests := []struct {
		origin string
		want   string
	}{
		{"http://localhost:3000", "http://localhost:3000"},
		{"https://evil.example", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/phase?ingredient=matcha", nil)
		req.Header.Set("Origin", tt.origin)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: allow-origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(&stubQuerier{}, nil, nil), "/api/phase?ingredient=matcha")
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("nosniff header missing")
	}
}
