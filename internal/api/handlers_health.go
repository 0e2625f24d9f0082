// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/flavorlens/internal/logging"
	"github.com/tomtom215/flavorlens/internal/models"
)

// serviceName is reported by the liveness endpoints.
const serviceName = "FlavorLens API"

// readyTimeout bounds the readiness ping.
const readyTimeout = 3 * time.Second

// Health handles liveness requests
//
// @Summary Liveness
// @Description Static status; does not touch the analytic engine
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
// @Router / [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: h.version,
	})
}

// Ready handles readiness requests
//
// @Summary Readiness
// @Description 200 when the analytic engine answers a ping, 503 otherwise
// @Tags Health
// @Produce json
// @Success 200 {object} models.ReadinessResponse
// @Failure 503 {object} models.ReadinessResponse
// @Router /health/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respondJSON(w, http.StatusServiceUnavailable, &models.ReadinessResponse{
			Status:   "not_ready",
			Database: "not_configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness ping failed")
		respondJSON(w, http.StatusServiceUnavailable, &models.ReadinessResponse{
			Status:   "not_ready",
			Database: "unreachable",
			Error:    "analytic engine did not answer",
		})
		return
	}

	respondJSON(w, http.StatusOK, &models.ReadinessResponse{
		Status:   "ready",
		Database: "connected",
	})
}

// NotFound writes the error envelope for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, &models.APIError{
		Code:    models.ErrCodeNotFound,
		Message: "Route not found",
	})
}

// MethodNotAllowed writes the error envelope for unsupported methods.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, &models.APIError{
		Code:    models.ErrCodeMethodNotAllowed,
		Message: "Method not allowed",
	})
}
