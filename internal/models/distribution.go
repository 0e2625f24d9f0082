// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// Status is the trend label of a dimension value compared year over year.
type Status string

// Status values.
const (
	StatusHot       Status = "Hot"
	StatusRising    Status = "Rising"
	StatusStable    Status = "Stable"
	StatusDeclining Status = "Declining"
	StatusNew       Status = "New"
)

// DistributionRow is one dimension value (category, country, subcategory or
// cuisine) with its share of the ingredient's current-year dishes.
// Value is null when the ingredient has no current-year dishes at all;
// YoYGrowthPercentage is null when both years are zero.
type DistributionRow struct {
	Name                string   `json:"name"`
	Value               *float64 `json:"value"`
	DishCount           int      `json:"dish_count"`
	PreviousCount       int      `json:"previous_count"`
	YoYGrowthPercentage *float64 `json:"yoy_growth_percentage"`
	Fill                string   `json:"fill"`
}

// PenetrationRow is the share of all dishes in a group that contain the
// ingredient, with growth and status.
type PenetrationRow struct {
	Name             string  `json:"name"`
	Penetration      float64 `json:"penetration"`
	Growth           float64 `json:"growth"`
	Status           Status  `json:"status"`
	IngredientDishes int     `json:"ingredient_dishes"`
	TotalDishes      int     `json:"total_dishes"`
	Color            string  `json:"color"`
}

// TrendSeries is one dimension value's adoption over the trend years.
// Values and AbsoluteValues are aligned with TrendResponse.Years.
type TrendSeries struct {
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	Values         []float64 `json:"values"`
	AbsoluteValues []int     `json:"absolute_values"`
}

// TrendAnalysis summarizes a set of trend series.
type TrendAnalysis struct {
	TopPerformer      string  `json:"top_performer"`
	TopPerformerRate  float64 `json:"top_performer_rate"`
	FastestGrowing    string  `json:"fastest_growing"`
	FastestGrowthRate float64 `json:"fastest_growth_rate"`
	MostConsistent    string  `json:"most_consistent"`
	TotalCategories   int     `json:"total_categories"`
	AvgAdoptionRate   float64 `json:"avg_adoption_rate"`
}

// Growth patterns used by TrendInsight.
const (
	PatternStrongGrowth = "strong_growth"
	PatternSteadyGrowth = "steady_growth"
	PatternStable       = "stable"
	PatternDeclining    = "declining"
)

// TrendInsight is a one-line reading of a single series.
type TrendInsight struct {
	Category      string `json:"category"`
	Insight       string `json:"insight"`
	GrowthPattern string `json:"growth_pattern"`
}

// TrendResponse is returned by the category, geographic and subcategory
// trend endpoints.
type TrendResponse struct {
	Ingredient string         `json:"ingredient"`
	Years      []int          `json:"years"`
	Categories []TrendSeries  `json:"categories"`
	Analysis   TrendAnalysis  `json:"analysis"`
	Insights   []TrendInsight `json:"insights"`
	Summary    string         `json:"summary"`
}

// CategoryAnalysis aggregates a penetration table.
type CategoryAnalysis struct {
	HighestPenetration     string  `json:"highest_penetration"`
	HighestPenetrationRate float64 `json:"highest_penetration_rate"`
	FastestGrowing         string  `json:"fastest_growing"`
	FastestGrowthRate      float64 `json:"fastest_growth_rate"`
	TotalCategories        int     `json:"total_categories"`
	HotCategories          int     `json:"hot_categories"`
	DecliningCategories    int     `json:"declining_categories"`
	AvgPenetration         float64 `json:"avg_penetration"`
}

// CategoryInsight reads one penetration row. OpportunityType is the
// lower-cased status.
type CategoryInsight struct {
	Category        string `json:"category"`
	Insight         string `json:"insight"`
	OpportunityType string `json:"opportunity_type"`
}

// CategoryAnalysisResponse joins category distribution and penetration.
type CategoryAnalysisResponse struct {
	Ingredient   string            `json:"ingredient"`
	Distribution []DistributionRow `json:"distribution"`
	Penetration  []PenetrationRow  `json:"penetration"`
	Analysis     CategoryAnalysis  `json:"analysis"`
	Insights     []CategoryInsight `json:"insights"`
	Summary      string            `json:"summary"`
}

// SubcategoryShare is a subcategory's share of all matching dishes.
type SubcategoryShare struct {
	Subcategory       string  `json:"subcategory"`
	PercentageOfTotal float64 `json:"percentage_of_total"`
}

// CountryAdoption is one country row of the regional view.
type CountryAdoption struct {
	Country  string  `json:"country"`
	Adoption float64 `json:"adoption"`
	Growth   float64 `json:"growth"`
}

// RegionalInsight averages the countries of one region.
type RegionalInsight struct {
	Name     string  `json:"name"`
	Adoption float64 `json:"adoption"`
	Growth   float64 `json:"growth"`
}

// GeographicData is returned by the regions endpoint.
type GeographicData struct {
	Regions          []CountryAdoption `json:"regions"`
	RegionalInsights []RegionalInsight `json:"regionalInsights"`
}
