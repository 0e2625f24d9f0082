// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/flavorlens/internal/analytics"
	"github.com/tomtom215/flavorlens/internal/config"
	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/models"
)

// stubQuerier answers every template from rows and fails those listed in errs.
// Bound args are recorded per template.
type stubQuerier struct {
	mu     sync.Mutex
	rows   map[string][]map[string]any
	errs   map[string]error
	args   map[string][]any
	cached bool
	calls  int
}

func (s *stubQuerier) Execute(_ context.Context, _ string, args []any, opts database.Options) (*database.QueryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.args == nil {
		s.args = make(map[string][]any)
	}
	s.args[opts.Template] = args
	if err := s.errs[opts.Template]; err != nil {
		return nil, err
	}
	return &database.QueryResult{
		Rows:     s.rows[opts.Template],
		Cached:   s.cached,
		Duration: 1500 * time.Microsecond,
	}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestRouter(q analytics.Querier, db Pinger, mw *ChiMiddlewareConfig) http.Handler {
	svc := analytics.NewService(q, config.AnalyticsConfig{ReferenceYear: 2024}, "")
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(svc, db, "1.2.3"), NewChiMiddleware(mw)).SetupChi()
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	if resp.Success {
		t.Error("success = true in error envelope")
	}
	return resp
}

// ===================================================================================================
// Routing
// ===================================================================================================

func TestRoutes_EmptyDataIsOK(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubQuerier{}, nil, nil)
	paths := []string{
		"/api/category/distribution",
		"/api/category/penetration",
		"/api/category/trends",
		"/api/category/analysis",
		"/api/geographic/distribution",
		"/api/geographic/penetration",
		"/api/geographic/trends",
		"/api/geographic/regions",
		"/api/subcategory/distribution?category=dessert",
		"/api/subcategory/penetration",
		"/api/subcategory/trends",
		"/api/subcategory/analysis",
		"/api/cuisine-distribution",
		"/api/cuisine/analysis",
		"/api/phase",
		"/api/phase?source=menu",
		"/api/recipe-share",
		"/api/menu-share",
		"/api/social-share",
		"/api/general/summary-stats",
		"/api/season/distribution",
		"/api/serving-temperature",
		"/api/pairings?page=2&limit=5&sort_by=growth&sort_direction=asc",
		"/api/consumer-insights/texture?start_year=2020&end_year=2024",
		"/api/dish/top-dishes?source=menu&cuisine=japanese",
		"/api/general/trends",
		"/api/format-adoption",
		"/api/applications/detailed?category=dessert&lifecycle_phase=declining&min_share=12.5",
		"/api/texture-attributes",
		"/api/category-distribution",
		"/api/category-penetration",
		"/api/geographic-distribution",
		"/api/subcategory-trends",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			sep := "?"
			if strings.Contains(path, "?") {
				sep = "&"
			}
			rec := get(t, router, path+sep+"ingredient=matcha")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if rec.Header().Get(HeaderQueryTime) == "" {
				t.Errorf("%s header missing", HeaderQueryTime)
			}
			if strings.HasPrefix(rec.Body.String(), "null") {
				t.Error("body is null")
			}
		})
	}
}

func TestRoutes_EmptyListIsArray(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubQuerier{}, nil, nil)
	rec := get(t, router, "/api/category/distribution?ingredient=unobtainium")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(&stubQuerier{}, nil, nil), "/api/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != models.ErrCodeNotFound {
		t.Errorf("code = %q", resp.Error.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubQuerier{}, nil, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/phase?ingredient=matcha", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error.Code != models.ErrCodeMethodNotAllowed {
		t.Errorf("code = %q", resp.Error.Code)
	}
}

// ===================================================================================================
// Parameter validation
// ===================================================================================================

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubQuerier{}, nil, nil)
	tests := []struct {
		name     string
		target   string
		wantCode string
		wantMsg  string
	}{
		{"missing ingredient", "/api/category/distribution", models.ErrCodeValidation, "ingredient is required"},
		{"blank ingredient", "/api/season/distribution?ingredient=%20%20", models.ErrCodeValidation, "ingredient is required"},
		{"long ingredient", "/api/phase?ingredient=" + strings.Repeat("a", 101), models.ErrCodeValidation, "ingredient must be at most 100 characters"},
		{"phase social", "/api/phase?ingredient=matcha&source=social", models.ErrCodeValidation, "source must be one of: recipe, menu"},
		{"non-integer page", "/api/pairings?ingredient=matcha&page=two", models.ErrCodeBadRequest, "page must be an integer"},
		{"limit over max", "/api/pairings?ingredient=matcha&limit=500", models.ErrCodeValidation, "limit must be less than or equal to 100"},
		{"bad sort", "/api/pairings?ingredient=matcha&sort_by=random", models.ErrCodeValidation, "sort_by must be one of: share_percent, growth, appeal_score, dish_count, partner_name"},
		{"bad year", "/api/consumer-insights/flavor?ingredient=matcha&start_year=soon", models.ErrCodeBadRequest, "start_year must be an integer"},
		{"reversed years", "/api/consumer-insights/flavor?ingredient=matcha&start_year=2024&end_year=2020", models.ErrCodeValidation, "start_year must not be after end_year"},
		{"bad dish source", "/api/dish/top-dishes?ingredient=matcha&source=blog", models.ErrCodeValidation, "source must be one of: recipe, menu, social"},
		{"bad application phase", "/api/applications/detailed?ingredient=matcha&lifecycle_phase=peak", models.ErrCodeValidation, "lifecycle_phase must be one of: emerging, growing, mature, declining"},
		{"non-numeric min share", "/api/applications/detailed?ingredient=matcha&min_share=half", models.ErrCodeBadRequest, "min_share must be a number"},
		{"min share over 100", "/api/applications/detailed?ingredient=matcha&min_share=150", models.ErrCodeValidation, "min_share must be less than or equal to 100"},
		{"texture without ingredient", "/api/texture-attributes", models.ErrCodeValidation, "ingredient is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, router, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			resp := decodeError(t, rec)
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
			if resp.Error.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Error.Message, tt.wantMsg)
			}
			if resp.Error.RequestID == "" || resp.Error.RequestID != rec.Header().Get("X-Request-ID") {
				t.Errorf("request_id = %q, header = %q", resp.Error.RequestID, rec.Header().Get("X-Request-ID"))
			}
		})
	}
}

func TestUnknownAttributeTypeListsAll(t *testing.T) {
	t.Parallel()

	q := &stubQuerier{}
	rec := get(t, newTestRouter(q, nil, nil), "/api/consumer-insights/visual?ingredient=matcha")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	resp := decodeError(t, rec)
	for _, kind := range analytics.AttributeTypes() {
		if !strings.Contains(resp.Error.Message, kind) {
			t.Errorf("message %q does not list %s", resp.Error.Message, kind)
		}
	}
	if q.calls != 0 {
		t.Errorf("%d queries ran for an invalid request", q.calls)
	}
}

// ===================================================================================================
// Engine failures
// ===================================================================================================

func TestEngineUnavailable(t *testing.T) {
	t.Parallel()

	q := &stubQuerier{errs: map[string]error{
		"season": fmt.Errorf("%w: query timed out", database.ErrUpstreamUnavailable),
	}}
	rec := get(t, newTestRouter(q, nil, nil), "/api/season/distribution?ingredient=matcha")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After missing")
	}
	if resp := decodeError(t, rec); resp.Error.Code != models.ErrCodeServiceUnavailable {
		t.Errorf("code = %q", resp.Error.Code)
	}
}

func TestCircuitOpenIsUnavailable(t *testing.T) {
	t.Parallel()

	q := &stubQuerier{errs: map[string]error{"distribution_country": database.ErrCircuitOpen}}
	rec := get(t, newTestRouter(q, nil, nil), "/api/geographic/distribution?ingredient=matcha")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestEngineErrorIsGeneric(t *testing.T) {
	t.Parallel()

	q := &stubQuerier{errs: map[string]error{
		"phase": &database.QueryError{Op: "query", Query: "SELECT secret_column", Err: errors.New("Binder Error: secret_column")},
	}}
	rec := get(t, newTestRouter(q, nil, nil), "/api/phase?ingredient=matcha")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error.Code != models.ErrCodeDatabase {
		t.Errorf("code = %q", resp.Error.Code)
	}
	if strings.Contains(rec.Body.String(), "secret_column") {
		t.Error("engine error text leaked to the client")
	}
}

// ===================================================================================================
// Success responses
// ===================================================================================================

func matchaRows() map[string][]map[string]any {
	return map[string][]map[string]any{
		"distribution_category": {
			{"name": "Beverage", "current_count": int64(3), "previous_count": int64(1)},
			{"name": "Dessert", "current_count": int64(1), "previous_count": int64(0)},
		},
	}
}

func TestDistributionBody(t *testing.T) {
	t.Parallel()

	rec := get(t, newTestRouter(&stubQuerier{rows: matchaRows()}, nil, nil), "/api/category/distribution?ingredient=matcha")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var rows []models.DistributionRow
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].Name != "Beverage" || rows[0].DishCount != 3 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Value == nil || *rows[0].Value != 75 {
		t.Errorf("Beverage value = %v, want 75", rows[0].Value)
	}
	if got := rec.Header().Get(HeaderQueryTime); got != "1.50" {
		t.Errorf("%s = %q, want 1.50", HeaderQueryTime, got)
	}
	if got := rec.Header().Get(HeaderCache); got != "MISS" {
		t.Errorf("%s = %q, want MISS", HeaderCache, got)
	}
}

func TestCachedResponse(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubQuerier{rows: matchaRows(), cached: true}, nil, nil)
	first := get(t, router, "/api/category/distribution?ingredient=matcha")
	second := get(t, router, "/api/category/distribution?ingredient=matcha")

	if got := second.Header().Get(HeaderCache); got != "HIT" {
		t.Errorf("%s = %q, want HIT", HeaderCache, got)
	}
	if got := second.Header().Get(HeaderQueryTime); got != "0.00" {
		t.Errorf("%s = %q, want 0.00", HeaderQueryTime, got)
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("identical requests produced different bodies")
	}
}

// ===================================================================================================
// Health
// ===================================================================================================

func TestHealth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubQuerier{}, nil, nil)
	for _, path := range []string{"/", "/health"} {
		rec := get(t, router, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, rec.Code)
		}
		var resp models.HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Status != "healthy" || resp.Service != "FlavorLens API" || resp.Version != "1.2.3" {
			t.Errorf("%s body = %+v", path, resp)
		}
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		wantState  string
	}{
		{"engine answers", stubPinger{}, http.StatusOK, "ready"},
		{"engine down", stubPinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "not_ready"},
		{"no engine", nil, http.StatusServiceUnavailable, "not_ready"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, newTestRouter(&stubQuerier{}, tt.db, nil), "/health/ready")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp models.ReadinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantState)
			}
			if strings.Contains(rec.Body.String(), "connection refused") {
				t.Error("ping error leaked")
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(&stubQuerier{}, nil, nil)
	get(t, router, "/health")
	rec := get(t, router, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "flavorlens_api_requests_total") {
		t.Error("api request counter not exported")
	}
}

func TestRoutes_CategoryFilterReachesQuery(t *testing.T) {
	tests := []struct {
		target   string
		template string
	}{
		{"/api/category/distribution?ingredient=matcha&category=Beverage", "distribution_category"},
		{"/api/category/penetration?ingredient=matcha&category=Beverage", "penetration_category"},
		{"/api/category/trends?ingredient=matcha&category=Beverage", "trend_series_category"},
		{"/api/geographic/distribution?ingredient=matcha&category=Beverage", "distribution_country"},
		{"/api/subcategory/distribution?ingredient=matcha&category=Beverage", "distribution_subcategory"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			q := &stubQuerier{}
			rec := get(t, newTestRouter(q, nil, nil), tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}

			q.mu.Lock()
			args := q.args[tt.template]
			q.mu.Unlock()
			if !containsArg(args, "%Beverage%") {
				t.Errorf("args for %s = %v, want category pattern %%Beverage%%", tt.template, args)
			}
			if !containsArg(args, "%matcha%") {
				t.Errorf("args for %s = %v, want ingredient pattern", tt.template, args)
			}
		})
	}
}

func TestRoutes_NoCategoryLeavesQueryUnfiltered(t *testing.T) {
	q := &stubQuerier{}
	rec := get(t, newTestRouter(q, nil, nil), "/api/category/distribution?ingredient=matcha&category=%20%20")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	for _, a := range q.args["distribution_category"] {
		if s, ok := a.(string); ok && s != "%matcha%" && strings.HasPrefix(s, "%") {
			t.Errorf("unexpected pattern arg %q for blank category", s)
		}
	}
}

func containsArg(args []any, want string) bool {
	for _, a := range args {
		if s, ok := a.(string); ok && s == want {
			return true
		}
	}
	return false
}
