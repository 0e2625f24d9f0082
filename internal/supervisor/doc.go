// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package supervisor provides process supervision for FlavorLens using suture v4.

# Overview

	RootSupervisor ("flavorlens")
	├── DataSupervisor ("data-layer")
	│   └── CacheStatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with backoff once FailureThreshold failures
accumulate (decaying at FailureDecay per second). Supervisor events go to
log/slog through sutureslog; main passes logging.NewSlogLogger so they end up
in the zerolog stream.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewCacheStatsService(exec, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Cancelling the context stops every service. Services still running after
ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
