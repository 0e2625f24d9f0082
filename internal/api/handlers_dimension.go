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

// dimensionParams parses ingredient and the optional category filter.
func dimensionParams(w http.ResponseWriter, r *http.Request) (string, analytics.Filter, bool) {
	q := newQueryParams(r)
	p := validation.FilterParams{
		Ingredient: q.String("ingredient", ""),
		Category:   q.String("category", ""),
	}
	if !q.check(w, &p) {
		return "", analytics.Filter{}, false
	}
	return p.Ingredient, analytics.Filter{Category: p.Category}, true
}

// Distribution returns the dish-count share per dimension value.
func (h *Handler) Distribution(dim analytics.Dimension) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredient, f, ok := dimensionParams(w, r)
		if !ok {
			return
		}
		serve(w, r, func(ctx context.Context) ([]models.DistributionRow, error) {
			return h.svc.Distribution(ctx, dim, ingredient, f)
		})
	}
}

// Penetration returns the share of each dimension value's dishes containing the ingredient.
func (h *Handler) Penetration(dim analytics.Dimension) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredient, f, ok := dimensionParams(w, r)
		if !ok {
			return
		}
		serve(w, r, func(ctx context.Context) ([]models.PenetrationRow, error) {
			return h.svc.Penetration(ctx, dim, ingredient, f)
		})
	}
}

// Trends returns yearly penetration series for the top dimension values.
func (h *Handler) Trends(dim analytics.Dimension) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ingredient, f, ok := dimensionParams(w, r)
		if !ok {
			return
		}
		serve(w, r, func(ctx context.Context) (*models.TrendResponse, error) {
			return h.svc.Trends(ctx, dim, ingredient, f)
		})
	}
}

// CategoryDistribution godoc
//
// @Summary Category distribution
// @Description Share of the ingredient's dishes in each food service category
// @Tags Category
// @Produce json
// @Param ingredient query string true "Ingredient name (substring match)"
// @Param category query string false "General category substring"
// @Success 200 {array} models.DistributionRow
// @Failure 400 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/category/distribution [get]
func (h *Handler) CategoryDistribution(w http.ResponseWriter, r *http.Request) {
	h.Distribution(analytics.DimCategory)(w, r)
}

// CategoryPenetration godoc
//
// @Summary Category penetration
// @Description Current and previous year penetration per category with status
// @Tags Category
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param category query string false "General category substring"
// @Success 200 {array} models.PenetrationRow
// @Failure 400 {object} models.ErrorResponse
// @Router /api/category/penetration [get]
func (h *Handler) CategoryPenetration(w http.ResponseWriter, r *http.Request) {
	h.Penetration(analytics.DimCategory)(w, r)
}

// CategoryTrends godoc
//
// @Summary Category trends
// @Tags Category
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param category query string false "General category substring"
// @Success 200 {object} models.TrendResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/category/trends [get]
func (h *Handler) CategoryTrends(w http.ResponseWriter, r *http.Request) {
	h.Trends(analytics.DimCategory)(w, r)
}

// CategoryAnalysis godoc
//
// @Summary Category analysis
// @Description Distribution joined with penetration, plus insights and a summary
// @Tags Category
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.CategoryAnalysisResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/category/analysis [get]
func (h *Handler) CategoryAnalysis(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.CategoryAnalysisResponse, error) {
		return h.svc.CategoryAnalysis(ctx, ingredient)
	})
}

// GeographicRegions godoc
//
// @Summary Geographic regions
// @Description Country adoption grouped into regional insights
// @Tags Geographic
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.GeographicData
// @Failure 400 {object} models.ErrorResponse
// @Router /api/geographic/regions [get]
func (h *Handler) GeographicRegions(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.GeographicData, error) {
		return h.svc.Regions(ctx, ingredient)
	})
}

// SubcategoryAnalysis godoc
//
// @Summary Subcategory shares
// @Tags Subcategory
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param category query string false "General category substring"
// @Success 200 {array} models.SubcategoryShare
// @Failure 400 {object} models.ErrorResponse
// @Router /api/subcategory/analysis [get]
func (h *Handler) SubcategoryAnalysis(w http.ResponseWriter, r *http.Request) {
	ingredient, f, ok := dimensionParams(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) ([]models.SubcategoryShare, error) {
		return h.svc.SubcategoryShares(ctx, ingredient, f)
	})
}

// ingredientParam parses and validates the ingredient parameter alone.
func ingredientParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := newQueryParams(r)
	p := validation.IngredientParams{Ingredient: q.String("ingredient", "")}
	if !q.check(w, &p) {
		return "", false
	}
	return p.Ingredient, true
}
