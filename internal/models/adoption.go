// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// AdoptionPoint is one year of overall adoption: the share of all dishes
// that year containing the ingredient.
type AdoptionPoint struct {
	Year               int     `json:"year"`
	AdoptionPercentage float64 `json:"adoption_percentage"`
	TotalDishes        int     `json:"total_dishes"`
	IngredientDishes   int     `json:"ingredient_dishes"`
}

// Adoption trend labels.
const (
	TrendIncreasing   = "increasing"
	TrendDecreasing   = "decreasing"
	TrendStable       = "stable"
	TrendInsufficient = "insufficient_data"
	TrendNoData       = "no_data"
	LabelUnknown      = "unknown"
)

// AdoptionAnalysis reads the adoption series. RecentChange is the latest
// year against the one before, in percentage points; AverageGrowthRate is
// the compound annual rate over the whole series.
type AdoptionAnalysis struct {
	CurrentTrend      string   `json:"current_trend"`
	TrendStrength     string   `json:"trend_strength"`
	PeakYear          *int     `json:"peak_year"`
	PeakPercentage    *float64 `json:"peak_percentage"`
	RecentChange      float64  `json:"recent_change"`
	AverageGrowthRate float64  `json:"average_growth_rate"`
	Volatility        string   `json:"volatility"`
}

// AdoptionTrendResponse is returned by the general trends endpoint.
type AdoptionTrendResponse struct {
	Ingredient string           `json:"ingredient"`
	DataPoints []AdoptionPoint  `json:"data_points"`
	Analysis   AdoptionAnalysis `json:"analysis"`
	Summary    string           `json:"summary"`
}
