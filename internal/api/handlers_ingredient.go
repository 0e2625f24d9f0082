// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/flavorlens/internal/analytics"
	"github.com/tomtom215/flavorlens/internal/models"
	"github.com/tomtom215/flavorlens/internal/validation"
)

// CuisineDistribution godoc
//
// @Summary Cuisine distribution
// @Description Cuisines ranked by penetration with growth and status
// @Tags Cuisine
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {array} models.CuisineDistribution
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cuisine-distribution [get]
func (h *Handler) CuisineDistribution(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) ([]models.CuisineDistribution, error) {
		return h.svc.CuisineDistribution(ctx, ingredient)
	})
}

// CuisineAnalysis godoc
//
// @Summary Cuisine analysis
// @Tags Cuisine
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.CuisineAnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cuisine/analysis [get]
func (h *Handler) CuisineAnalysis(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.CuisineAnalysisResponse, error) {
		return h.svc.CuisineAnalysis(ctx, ingredient)
	})
}

// Phase godoc
//
// @Summary Adoption phase
// @Description Lifecycle stage from the year-over-year dish count
// @Tags Lifecycle
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param source query string false "Dish source" Enums(recipe, menu) default(recipe)
// @Success 200 {object} models.LifecycleData
// @Failure 400 {object} models.ErrorResponse
// @Router /api/phase [get]
func (h *Handler) Phase(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	p := validation.PhaseParams{
		Ingredient: q.String("ingredient", ""),
		Source:     q.String("source", analytics.SourceRecipe),
	}
	if !q.check(w, &p) {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.LifecycleData, error) {
		return h.svc.Phase(ctx, p.Ingredient, p.Source)
	})
}

// Share returns the handler for one source's share endpoint.
//
// @Summary Source share
// @Description Share of the source's dishes containing the ingredient, current vs previous year
// @Tags Lifecycle
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.ShareData
// @Failure 400 {object} models.ErrorResponse
// @Router /api/recipe-share [get]
// @Router /api/menu-share [get]
// @Router /api/social-share [get]
func (h *Handler) Share(source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredient, ok := ingredientParam(w, r)
		if !ok {
			return
		}
		serve(w, r, func(ctx context.Context) (*models.ShareData, error) {
			return h.svc.Share(ctx, ingredient, source)
		})
	}
}

// SummaryStats godoc
//
// @Summary Summary statistics
// @Tags General
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.SummaryStatsResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/general/summary-stats [get]
func (h *Handler) SummaryStats(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.SummaryStatsResponse, error) {
		return h.svc.SummaryStats(ctx, ingredient)
	})
}

// SeasonDistribution godoc
//
// @Summary Season distribution
// @Tags Season
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.SeasonResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/season/distribution [get]
func (h *Handler) SeasonDistribution(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.SeasonResponse, error) {
		return h.svc.Season(ctx, ingredient)
	})
}

// ServingTemperature godoc
//
// @Summary Serving temperature
// @Tags Season
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {array} models.TemperatureDistribution
// @Failure 400 {object} models.ErrorResponse
// @Router /api/serving-temperature [get]
func (h *Handler) ServingTemperature(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) ([]models.TemperatureDistribution, error) {
		return h.svc.ServingTemperature(ctx, ingredient)
	})
}

// Pairings godoc
//
// @Summary Ingredient pairings
// @Description Paginated partners co-occurring with the ingredient in at least 3 dishes
// @Tags Pairings
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param category query string false "General category substring"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Param sort_by query string false "Sort key" Enums(share_percent, growth, appeal_score, dish_count, partner_name) default(share_percent)
// @Param sort_direction query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param lifecycle_phase query string false "Lifecycle filter" Enums(emerging, growing, mature)
// @Param search query string false "Partner name substring"
// @Success 200 {object} models.PairingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/pairings [get]
func (h *Handler) Pairings(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	p := validation.PairingsParams{
		Ingredient:     q.String("ingredient", ""),
		Category:       q.String("category", ""),
		Page:           q.Int("page", 1),
		Limit:          q.Int("limit", analytics.DefaultPairingsLimit),
		SortBy:         q.String("sort_by", "share_percent"),
		SortDirection:  q.String("sort_direction", "desc"),
		LifecyclePhase: q.String("lifecycle_phase", ""),
		Search:         q.String("search", ""),
	}
	if !q.check(w, &p) {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.PairingsResponse, error) {
		return h.svc.Pairings(ctx, p.Ingredient, analytics.PairingsParams{
			Category:       p.Category,
			Page:           p.Page,
			Limit:          p.Limit,
			SortBy:         p.SortBy,
			SortDirection:  p.SortDirection,
			LifecyclePhase: p.LifecyclePhase,
			Search:         p.Search,
		})
	})
}

// ConsumerInsights godoc
//
// @Summary Consumer insights
// @Description Attribute distribution, yearly trends and details for one attribute type
// @Tags Consumer Insights
// @Produce json
// @Param attribute_type path string true "Attribute type" Enums(flavor, texture, aroma, diet, functional_health, occasions, convenience, social, emotional, cooking_technique)
// @Param ingredient query string true "Ingredient name"
// @Param start_year query int false "First year included"
// @Param end_year query int false "Last year included"
// @Success 200 {object} models.AttributeInsightsResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/consumer-insights/{attribute_type} [get]
func (h *Handler) ConsumerInsights(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	p := validation.ConsumerInsightsParams{
		Ingredient:    q.String("ingredient", ""),
		AttributeType: urlParam(r, "attribute_type"),
		StartYear:     q.OptionalInt("start_year"),
		EndYear:       q.OptionalInt("end_year"),
	}
	if !q.check(w, &p) {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.AttributeInsightsResponse, error) {
		return h.svc.ConsumerInsights(ctx, p.Ingredient, p.AttributeType, analytics.YearRange{
			Start: p.StartYear,
			End:   p.EndYear,
		})
	})
}

// TopDishes godoc
//
// @Summary Top dishes
// @Description The ten best-rated dishes containing the ingredient
// @Tags Dishes
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param source query string false "Dish source" Enums(recipe, menu, social)
// @Param category query string false "General category substring"
// @Param subcategory query string false "Specific category substring"
// @Param cuisine query string false "Cuisine substring"
// @Param country query string false "Country substring"
// @Success 200 {array} models.TopDish
// @Failure 400 {object} models.ErrorResponse
// @Router /api/dish/top-dishes [get]
func (h *Handler) TopDishes(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	p := validation.TopDishesParams{
		Ingredient:  q.String("ingredient", ""),
		Source:      q.String("source", ""),
		Category:    q.String("category", ""),
		Subcategory: q.String("subcategory", ""),
		Cuisine:     q.String("cuisine", ""),
		Country:     q.String("country", ""),
	}
	if !q.check(w, &p) {
		return
	}
	serve(w, r, func(ctx context.Context) ([]models.TopDish, error) {
		return h.svc.TopDishes(ctx, p.Ingredient, analytics.DishFilter{
			Source:      p.Source,
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Cuisine:     p.Cuisine,
			Country:     p.Country,
		})
	})
}
