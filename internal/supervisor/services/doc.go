// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package services provides suture.Service wrappers for FlavorLens components.

Each wrapper implements

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so supervisor events name the service.

# Available Services

HTTPServerService:
  - Runs ListenAndServe in a goroutine
  - Cancelling the context calls Shutdown with the configured timeout
  - http.ErrServerClosed is treated as a clean exit

CacheStatsService:
  - Samples the executor's result cache on an interval
  - Each sample refreshes the flavorlens_cache_entries gauge
*/
package services
