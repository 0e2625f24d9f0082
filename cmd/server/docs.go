// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// FlavorLens API general annotations for swag.
//
// @title FlavorLens API
// @version 1.0
// @description Ingredient trend analytics over recipe, menu and social dish data.
// @description
// @description ## Conventions
// @description
// @description - Every analytics endpoint takes a required `ingredient` query parameter (case-insensitive substring match).
// @description - Successful responses are the bare payload. `X-Query-Time-Ms` and `X-Cache` (HIT or MISS) headers describe how it was produced.
// @description - Year-over-year metrics compare the reference year (REFERENCE_YEAR, default 2024) with the year before.
// @description
// @description ## Rate Limiting
// @description
// @description Default: 100 requests per minute per client IP on /api routes. Exceeding it returns 429 with Retry-After.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "ingredient is required",
// @description     "details": {"field": "ingredient", "tag": "required"},
// @description     "request_id": "0f8fad5b-d9cb-469f-a165-70867728950e"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/flavorlens/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness checks
//
// @tag.name Category
// @tag.description Distribution, penetration and trends by general category
//
// @tag.name Geographic
// @tag.description Distribution, penetration and regional growth by country
//
// @tag.name Lifecycle
// @tag.description Adoption phase and per-source share
//
// @tag.name Pairings
// @tag.description Co-occurring ingredients with paging and sorting
//
// @tag.name Consumer
// @tag.description Consumer attribute insights
package main
