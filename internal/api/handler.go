// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"context"
	"time"

	"github.com/tomtom215/flavorlens/internal/analytics"
)

// Pinger checks that the analytic engine answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the analytics endpoints.
type Handler struct {
	svc       *analytics.Service
	db        Pinger
	version   string
	startTime time.Time
}

// NewHandler creates a Handler. db may be nil, in which case the readiness
// check always fails.
func NewHandler(svc *analytics.Service, db Pinger, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		svc:       svc,
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}
