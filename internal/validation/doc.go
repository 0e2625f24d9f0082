// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// Package validation checks API query parameters using go-playground/validator v10.
//
// A single validator instance is built on first use and reused for every request.
// Error field names come from each struct's `query` tag, so a message names the
// parameter the caller actually sent:
//
//	params := validation.PhaseParams{Ingredient: "matcha", Source: "blog"}
//	if verr := validation.ValidateStruct(&params); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // apiErr.Message == "source must be one of: recipe, menu"
//	}
//
// # Parameter Structs
//
//   - IngredientParams: endpoints that take only an ingredient
//   - FilterParams: subcategory endpoints with an optional category
//   - PhaseParams: lifecycle source (recipe or menu)
//   - PairingsParams: paging, sorting and filtering of pairings
//   - ConsumerInsightsParams: attribute type plus an optional year window
//   - TopDishesParams: source and substring filters for top dishes
//
// Handlers apply defaults before validating. Any parameter left empty after
// defaulting is checked as given.
//
// # Error Translation
//
// oneof failures list the allowed values separated by commas, and ToAPIError
// also returns them under details.allowed. A start_year later than end_year is
// reported on start_year with the year_order tag.
//
// # Thread Safety
//
// The shared validator is built with sync.OnceValue and is safe for concurrent
// use.
package validation
