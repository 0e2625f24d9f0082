// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// SeasonDistribution is the share of seasoned dishes in one season. Value is
// null when no dish carries season data.
type SeasonDistribution struct {
	Name      string   `json:"name"`
	Value     *float64 `json:"value"`
	DishCount int      `json:"dish_count"`
}

// SeasonAnalysis reads the four-season spread plus all-season usage.
type SeasonAnalysis struct {
	PeakSeason              string  `json:"peak_season"`
	PeakValue               float64 `json:"peak_value"`
	LowestSeason            string  `json:"lowest_season"`
	LowestValue             float64 `json:"lowest_value"`
	SeasonalVariation       float64 `json:"seasonal_variation"`
	YearRoundAppeal         float64 `json:"year_round_appeal"`
	SeasonalityIndex        string  `json:"seasonality_index"`
	IsSeasonalIngredient    bool    `json:"is_seasonal_ingredient"`
	AllSeasonUsage          float64 `json:"all_season_usage"`
	TotalDishesAnalyzed     int     `json:"total_dishes_analyzed"`
	DishesWithSeasonData    int     `json:"dishes_with_season_data"`
	DishesWithoutSeasonData int     `json:"dishes_without_season_data"`
}

// SeasonResponse is returned by the season endpoint. Distribution always
// holds the five canonical seasons in order.
type SeasonResponse struct {
	Ingredient   string               `json:"ingredient"`
	Distribution []SeasonDistribution `json:"distribution"`
	Analysis     SeasonAnalysis       `json:"analysis"`
	Summary      string               `json:"summary"`
}

// TemperatureDistribution is the share of dishes served at one standardized
// temperature.
type TemperatureDistribution struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	DishCount int     `json:"dish_count"`
	Fill      string  `json:"fill"`
}
