// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// Package analytics builds the ingredient metric templates and assembles
// their results into response models.
//
// Every template binds user text as arguments. The ingredient and the
// optional name filters become "col ILIKE ? ESCAPE '\'" with an escaped
// "%value%" pattern. Grouping columns, attribute tables, sort columns and
// sort directions come only from the maps in this package.
//
// Templates and their files:
//
//   - distribution.go: Distribution, Penetration
//   - trends.go: Trends with analysis, insights and summary text
//   - composite.go: CategoryAnalysis, SubcategoryShares, Regions
//   - cuisine.go: CuisineDistribution, CuisineAnalysis
//   - lifecycle.go: Phase, Share, SummaryStats
//   - season.go: Season, ServingTemperature
//   - pairings.go: Pairings (paginated)
//   - consumer_insights.go: ConsumerInsights
//   - dishes.go: TopDishes
//
// Composite views fan out with errgroup. The first failing sub-query
// cancels its siblings and fails the call; partial results are never
// returned.
//
// "Current" is analytics.reference_year (or the calendar year when 0) and
// "previous" is the year before. Percent, Growth, ClassifyStatus and
// ClassifyPhase in compute.go are the only implementations of those rules.
//
// Requests that need timing and cache status wrap their context with
// WithQueryStats before calling the Service.
package analytics
