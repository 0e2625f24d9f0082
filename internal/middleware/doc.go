// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package middleware provides HTTP middleware for the FlavorLens API.

All middleware uses the standard func(http.Handler) http.Handler shape, so it
mounts directly with chi's Router.Use.

Key Components:

  - RequestID: reuses X-Request-ID or generates a UUID v4, and stores it for logging.Ctx
  - AccessLog: one zerolog line per request with route, status and duration
  - PrometheusMetrics: request count, latency histogram and in-flight gauge

Middleware Stack:

The router mounts them in this order:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

Metric Labels:

PrometheusMetrics labels requests with the chi route pattern
(e.g. "/api/consumer-insights/{attribute_type}") read after the handler
returns. Requests no route matched use "unmatched", so probing random URLs
cannot grow the label set.
*/
package middleware
