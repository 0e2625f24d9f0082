// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and are
exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

Query metrics:
  - flavorlens_db_query_duration_seconds: engine round-trip per template (histogram)
    Labels: template
  - flavorlens_db_query_errors_total: failed queries (counter)
    Labels: template, kind (timeout, connection, breaker, query)
  - flavorlens_db_reconnects_total: connection resets after connection-class errors

Result cache metrics:
  - flavorlens_cache_hits_total, flavorlens_cache_misses_total,
    flavorlens_cache_evictions_total (counters)
  - flavorlens_cache_entries (gauge)
    Labels: backend (memory, badger)

Circuit breaker metrics:
  - flavorlens_circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - flavorlens_circuit_breaker_state_transitions_total
    Labels: name, from_state, to_state

HTTP metrics:
  - flavorlens_api_requests_total: Labels method, endpoint, status_code
  - flavorlens_api_request_duration_seconds: Labels method, endpoint
  - flavorlens_api_active_requests (gauge)

The endpoint label is always the chi route pattern (for example
/api/consumer-insights/{attribute_type}), never the raw URL, which keeps label
cardinality bounded.
*/
package metrics
