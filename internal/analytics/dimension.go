// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"fmt"

	"github.com/tomtom215/flavorlens/internal/database/query"
)

// Dimension is a grouping column of the dish table.
type Dimension string

// Dimensions.
const (
	DimCategory    Dimension = "category"
	DimCountry     Dimension = "country"
	DimSubcategory Dimension = "subcategory"
	DimCuisine     Dimension = "cuisine"
)

// dimensionColumns is the only source of grouping identifiers.
var dimensionColumns = map[Dimension]string{
	DimCategory:    "general_category",
	DimCountry:     "country",
	DimSubcategory: "specific_category",
	DimCuisine:     "cuisine",
}

// trendTopN is the number of series kept per trend dimension.
var trendTopN = map[Dimension]int{
	DimCategory:    5,
	DimSubcategory: 5,
	DimCountry:     8,
	DimCuisine:     5,
}

// trendNoun names a dimension's values in summary text.
var trendNoun = map[Dimension]string{
	DimCategory:    "food service categories",
	DimSubcategory: "subcategories",
	DimCountry:     "countries",
	DimCuisine:     "cuisines",
}

func (d Dimension) column() (string, error) {
	col, ok := dimensionColumns[d]
	if !ok {
		return "", fmt.Errorf("unknown dimension %q", d)
	}
	return col, nil
}

// Filter narrows the dishes a template considers.
type Filter struct {
	// Category restricts dishes to a general_category substring.
	Category string
}

// apply adds the filter's clauses to wb.
func (f Filter) apply(wb *query.WhereBuilder) *query.WhereBuilder {
	return wb.AddContains("general_category", f.Category)
}

// dimensionScope returns the WHERE clause selecting rows that carry a value
// for col and pass the filter.
func dimensionScope(col string, f Filter) (string, []any) {
	wb := query.NewWhereBuilder().
		AddClause(fmt.Sprintf("%[1]s IS NOT NULL AND %[1]s <> ''", col))
	return f.apply(wb).Build()
}

// ingredientScope is dimensionScope plus the ingredient pattern.
func ingredientScope(ingredient, col string, f Filter) (string, []any) {
	wb := query.NewWhereBuilder().
		AddContains("ingredient_name", ingredient)
	if col != "" {
		wb.AddClause(fmt.Sprintf("%[1]s IS NOT NULL AND %[1]s <> ''", col))
	}
	return f.apply(wb).Build()
}
