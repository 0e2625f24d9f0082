// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package models

// TopApplication is a dish category the pair appears in, with its share of
// the pair's dishes.
type TopApplication struct {
	Application string `json:"application"`
	Percentage  int    `json:"percentage"`
}

// Pairing is one partner ingredient that co-occurs with the queried one.
type Pairing struct {
	Title                     string           `json:"title"`
	PartnerName               string           `json:"partner_name"`
	SharePercent              float64          `json:"share_percent"`
	Growth                    float64          `json:"growth"`
	LifecyclePhase            string           `json:"lifecycle_phase"`
	AppealScore               int              `json:"appeal_score"`
	DominantIngredientPercent int              `json:"dominant_ingredient_percent"`
	PartnerIngredientPercent  int              `json:"partner_ingredient_percent"`
	DishCount                 int              `json:"dish_count"`
	TopApplications           []TopApplication `json:"top_applications"`
	TopDishes                 []string         `json:"top_dishes"`
}

// PaginationInfo describes an offset page.
type PaginationInfo struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// PairingsResponse is one page of pairings. TotalPairings counts every
// pairing matching the filters, not only this page.
type PairingsResponse struct {
	Ingredient    string         `json:"ingredient"`
	Pairings      []Pairing      `json:"pairings"`
	TotalPairings int            `json:"total_pairings"`
	Pagination    PaginationInfo `json:"pagination"`
}

// TopDish is one of the ingredient's best-rated dishes.
type TopDish struct {
	Name    string   `json:"name"`
	Rating  *float64 `json:"rating"`
	Reviews *int     `json:"reviews"`
}
