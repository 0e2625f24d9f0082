// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package validation

import "github.com/go-playground/validator/v10"

// IngredientParams is shared by every ingredient endpoint.
type IngredientParams struct {
	Ingredient string `query:"ingredient" validate:"required,max=100"`
}

// FilterParams narrows distribution, penetration and trend queries.
type FilterParams struct {
	Ingredient string `query:"ingredient" validate:"required,max=100"`
	Category   string `query:"category" validate:"max=100"`
}

// PhaseParams selects the lifecycle source.
type PhaseParams struct {
	Ingredient string `query:"ingredient" validate:"required,max=100"`
	Source     string `query:"source" validate:"required,oneof=recipe menu"`
}

// PairingsParams is the pairings page request.
type PairingsParams struct {
	Ingredient     string `query:"ingredient" validate:"required,max=100"`
	Category       string `query:"category" validate:"max=100"`
	Page           int    `query:"page" validate:"gte=1"`
	Limit          int    `query:"limit" validate:"gte=1,lte=100"`
	SortBy         string `query:"sort_by" validate:"oneof=share_percent growth appeal_score dish_count partner_name"`
	SortDirection  string `query:"sort_direction" validate:"oneof=asc desc"`
	LifecyclePhase string `query:"lifecycle_phase" validate:"omitempty,oneof=emerging growing mature"`
	Search         string `query:"search" validate:"max=100"`
}

// ApplicationsParams filters the detailed application list.
type ApplicationsParams struct {
	Ingredient     string   `query:"ingredient" validate:"required,max=100"`
	Category       string   `query:"category" validate:"max=100"`
	LifecyclePhase string   `query:"lifecycle_phase" validate:"omitempty,oneof=emerging growing mature declining"`
	MinShare       *float64 `query:"min_share" validate:"omitempty,gte=0,lte=100"`
}

// ConsumerInsightsParams selects an attribute table and optional year window.
type ConsumerInsightsParams struct {
	Ingredient    string `query:"ingredient" validate:"required,max=100"`
	AttributeType string `query:"attribute_type" validate:"required,oneof=flavor texture aroma diet functional_health occasions convenience social emotional cooking_technique"`
	StartYear     *int   `query:"start_year" validate:"omitempty,gte=1900,lte=2100"`
	EndYear       *int   `query:"end_year" validate:"omitempty,gte=1900,lte=2100"`
}

// TopDishesParams filters the top-rated dish listing.
type TopDishesParams struct {
	Ingredient  string `query:"ingredient" validate:"required,max=100"`
	Source      string `query:"source" validate:"omitempty,oneof=recipe menu social"`
	Category    string `query:"category" validate:"max=100"`
	Subcategory string `query:"subcategory" validate:"max=100"`
	Cuisine     string `query:"cuisine" validate:"max=100"`
	Country     string `query:"country" validate:"max=100"`
}

func yearRangeOrder(sl validator.StructLevel) {
	p, ok := sl.Current().Interface().(ConsumerInsightsParams)
	if !ok || p.StartYear == nil || p.EndYear == nil {
		return
	}
	if *p.StartYear > *p.EndYear {
		sl.ReportError(p.StartYear, "start_year", "StartYear", "year_order", "")
	}
}
