// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package api provides the HTTP surface of FlavorLens using the Chi router.

Every analytics route is a GET under /api that takes an ingredient query
parameter and returns the bare JSON payload built by the analytics package.
Query timing and cache status travel in headers:

	X-Query-Time-Ms: summed engine time of uncached queries, two decimals
	X-Cache:         HIT when every query was served from the result cache

Request Flow:

 1. queryParams reads and trims parameters, applies defaults and records the
    first integer parse failure (400 BAD_REQUEST)
 2. validation.ValidateStruct checks the parameter struct (400 VALIDATION_ERROR)
 3. serve attaches analytics.QueryStats to the context and calls the service
 4. respondServiceError maps failures: engine unavailable to 503 with
    Retry-After, any other engine error to 500 with a generic message

Failures use the envelope

	{"success": false, "error": {"code": "...", "message": "...", "details": {...}, "request_id": "..."}}

Middleware:

Global: request id, real IP, access log, panic recovery, CORS (go-chi/cors)
and Prometheus instrumentation. The /api group adds a per-IP limit
(go-chi/httprate) and security headers. Health, readiness, /metrics and the
Swagger UI sit outside the limit.
*/
package api
