// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package models defines the JSON payloads returned by the FlavorLens API.

Successful responses are the bare payload types below; failures use the
ErrorResponse envelope.

Model Categories:

1. Dimension views (category, country, subcategory, cuisine):
  - DistributionRow: share of the ingredient's current-year dishes
  - PenetrationRow: share of a group's dishes containing the ingredient
  - TrendResponse: padded adoption series with analysis and insight text
  - CategoryAnalysisResponse, CuisineAnalysisResponse, GeographicData

2. Lifecycle and share:
  - LifecycleData, ShareData, SummaryStatsResponse

3. Seasonality and serving:
  - SeasonResponse, TemperatureDistribution

4. Co-occurrence and dishes:
  - PairingsResponse, TopDish

5. Consumer insights:
  - AttributeInsightsResponse

6. Envelope and health:
  - ErrorResponse, APIError, HealthResponse, ReadinessResponse

# Null Handling

Percentages over an empty denominator and growth over two empty years are
pointers so they serialize as null rather than a misleading 0. Slices are
always initialized by the producers so empty results serialize as [].

# Classification Labels

Status (Hot, Rising, Stable, Declining, New) and Phase (Emerging, Growing,
Mature, Declining) are string types with fixed constants; the analytics
package is the only producer.
*/
package models
