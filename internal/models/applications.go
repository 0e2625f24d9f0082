// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// FormatAdoption is the share of the ingredient's dishes using one format,
// counting both the ingredient format and the dish format.
type FormatAdoption struct {
	Format          string   `json:"format"`
	Adoption        float64  `json:"adoption"`
	DishCount       int      `json:"dish_count"`
	TopApplications []string `json:"top_applications"`
}

// PopularApplication is a ranked subcategory by dish count.
type PopularApplication struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Rank  int    `json:"rank"`
}

// FormatData is returned by the format adoption endpoint.
type FormatData struct {
	Formats             []FormatAdoption     `json:"formats"`
	PopularApplications []PopularApplication `json:"popularApplications"`
}

// FlavorRoles splits the ingredient's occurrences in an application by the
// flavor role it plays. Shares need not sum to 100: unlabelled roles are not
// counted.
type FlavorRoles struct {
	Dominant    float64 `json:"dominant"`
	Enhancing   float64 `json:"enhancing"`
	Background  float64 `json:"background"`
	Contrasting float64 `json:"contrasting"`
}

// CuisineShare is one cuisine's share of an application's dishes.
type CuisineShare struct {
	Cuisine    string  `json:"cuisine"`
	Percentage float64 `json:"percentage"`
}

// ApplicationDetail describes the ingredient inside one subcategory.
// Growth is the change in penetration from the previous year, in percentage
// points.
type ApplicationDetail struct {
	Title               string         `json:"title"`
	SharePercent        float64        `json:"share_percent"`
	Growth              float64        `json:"growth"`
	LifecyclePhase      string         `json:"lifecycle_phase"`
	AppealScore         float64        `json:"appeal_score"`
	FlavorRoles         FlavorRoles    `json:"flavor_roles"`
	CuisineDistribution []CuisineShare `json:"cuisine_distribution"`
	TopDishes           []string       `json:"top_dishes"`
}
