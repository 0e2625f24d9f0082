// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// Package query provides SQL fragment builders for the analytic templates.
//
// Every user-supplied value is bound through a ? placeholder. Substring filters
// use ILIKE with an explicit escape character so that %, _ and \ typed by a
// user match literally:
//
//	wb := query.NewWhereBuilder()
//	wb.AddContains("ingredient_name", "50%_salt")
//	where, args := wb.Build()
//	// where: ingredient_name ILIKE ? ESCAPE '\'
//	// args:  ["%50\%\_salt%"]
//
// Column names passed to the builder are identifiers chosen by the calling
// template, never request input.
package query
