// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// CuisineDistribution is one cuisine's share of the ingredient's
// current-year dishes plus the ingredient's adoption within the cuisine.
type CuisineDistribution struct {
	Cuisine    string   `json:"cuisine"`
	DishCount  int      `json:"dish_count"`
	Percentage *float64 `json:"percentage"`
	Growth     *float64 `json:"growth"`
	Adoption   float64  `json:"adoption"`
}

// CuisineData is one row of the cuisine analysis.
type CuisineData struct {
	Cuisine     string  `json:"cuisine"`
	Percentage  float64 `json:"percentage"`
	Growth      float64 `json:"growth"`
	Penetration float64 `json:"penetration"`
	DishCount   int     `json:"dish_count"`
}

// PieSlice is one slice of the cuisine pie chart.
type PieSlice struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
	Fill       string  `json:"fill"`
}

// PenetrationPoint is one point of the penetration versus growth chart.
type PenetrationPoint struct {
	Name        string  `json:"name"`
	Penetration float64 `json:"penetration"`
	Growth      float64 `json:"growth"`
}

// CuisineAnalysisResponse is the composite cuisine view. The highest-*
// fields are null when no cuisine qualifies.
type CuisineAnalysisResponse struct {
	Ingredient                string             `json:"ingredient"`
	CuisineData               []CuisineData      `json:"cuisine_data"`
	PieData                   []PieSlice         `json:"pie_data"`
	PenetrationData           []PenetrationPoint `json:"penetration_data"`
	TotalDishes               int                `json:"total_dishes"`
	TotalCuisines             int                `json:"total_cuisines"`
	HighestGrowthCuisine      *CuisineData       `json:"highest_growth_cuisine"`
	HighestPenetrationCuisine *CuisineData       `json:"highest_penetration_cuisine"`
	EmergingCuisines          []CuisineData      `json:"emerging_cuisines"`
	AvgGrowthRate             float64            `json:"avg_growth_rate"`
}
