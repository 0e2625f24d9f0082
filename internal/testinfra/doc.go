// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// Package testinfra provides an embedded DuckDB fixture for tests that need a
// real analytic engine.
//
// The fixture runs DuckDB in-memory through the production Executor, so the
// SQL produced by the metric templates is exercised exactly as in production:
//
//	func TestDistribution(t *testing.T) {
//	    exec := testinfra.NewExecutor(t)
//	    testinfra.SeedDishes(t, exec,
//	        testinfra.Dish{ID: 1, Year: 2024, Category: "Beverages",
//	            Ingredients: []testinfra.Ingredient{testinfra.Aromatic("matcha")}},
//	    )
//	    svc := analytics.NewService(exec, cfg)
//	    // ...
//	}
//
// # Concurrency
//
// Fixtures are serialized: NewExecutor blocks until the previous fixture's
// test has completed.
package testinfra
