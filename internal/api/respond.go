// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/flavorlens/internal/analytics"
	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/logging"
	"github.com/tomtom215/flavorlens/internal/models"
)

// Response headers carrying per-request query statistics.
const (
	HeaderQueryTime = "X-Query-Time-Ms"
	HeaderCache     = "X-Cache"
)

// retryAfterSeconds is sent with 503 responses.
const retryAfterSeconds = 30

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON writes payload as the bare response body.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondWithStats adds the query timing headers before writing payload.
func respondWithStats(w http.ResponseWriter, payload any, stats *analytics.QueryStats) {
	ms := float64(stats.Elapsed().Microseconds()) / 1000
	w.Header().Set(HeaderQueryTime, strconv.FormatFloat(ms, 'f', 2, 64))
	if stats.Cached() {
		w.Header().Set(HeaderCache, "HIT")
	} else {
		w.Header().Set(HeaderCache, "MISS")
	}
	respondJSON(w, http.StatusOK, payload)
}

// respondError writes the error envelope.
func respondError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError) {
	apiErr.RequestID = logging.RequestIDFromContext(r.Context())
	respondJSON(w, status, &models.ErrorResponse{Success: false, Error: *apiErr})
}

// respondServiceError maps an analytics failure to a status code. The
// underlying error is logged, never returned to the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.Ctx(r.Context())

	switch {
	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		logger.Debug().Str("path", r.URL.Path).Msg("Client went away before the query finished")
		return
	case errors.Is(err, analytics.ErrEmptyIngredient):
		respondError(w, r, http.StatusBadRequest, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: "ingredient is required",
			Details: map[string]any{"field": "ingredient"},
		})
		return
	case database.IsUnavailable(err):
		logger.Warn().Str("path", r.URL.Path).Str("error", sanitizeLogValue(err.Error())).Msg("Analytic engine unavailable")
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
			Code:    models.ErrCodeServiceUnavailable,
			Message: "The analytics engine is temporarily unavailable, please retry shortly",
		})
		return
	}

	ev := logger.Error().Str("path", r.URL.Path).Str("error", sanitizeLogValue(err.Error()))
	var qe *database.QueryError
	if errors.As(err, &qe) {
		ev = ev.Str("op", qe.Op).Str("query", logging.TruncateQuery(qe.Query)).Interface("args", qe.Args)
	}
	ev.Msg("Analytics query failed")

	respondError(w, r, http.StatusInternalServerError, &models.APIError{
		Code:    models.ErrCodeDatabase,
		Message: "An error occurred while computing analytics",
	})
}

// serve runs fetch with query statistics attached and writes its result.
func serve[T any](w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context) (T, error)) {
	ctx, stats := analytics.WithQueryStats(r.Context())
	res, err := fetch(ctx)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondWithStats(w, res, stats)
}
