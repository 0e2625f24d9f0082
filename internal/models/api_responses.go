// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// Error codes carried in APIError.Code.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimited        = "RATE_LIMIT_EXCEEDED"
)

// ErrorResponse is the envelope written for every failed request. Successful
// requests return the bare payload; only failures are wrapped.
//
// Example:
//
//	{
//	  "success": false,
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "source must be one of: recipe, menu",
//	    "details": {"field": "source", "allowed": ["recipe", "menu"]},
//	    "request_id": "0f8fad5b-d9cb-469f-a165-70867728950e"
//	  }
//	}
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// APIError is the structured error detail inside ErrorResponse.
//
// Common codes:
//   - VALIDATION_ERROR: a query parameter failed validation
//   - BAD_REQUEST: a query parameter could not be parsed
//   - SERVICE_UNAVAILABLE: the engine timed out or the circuit breaker is open
//   - DATABASE_ERROR: any other engine failure (message is generic)
//   - NOT_FOUND: unknown route
type APIError struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// HealthResponse is returned by the liveness endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ReadinessResponse is returned by the readiness check.
type ReadinessResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}
