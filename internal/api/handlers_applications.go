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

// AdoptionTrend godoc
//
// @Summary Overall adoption trend
// @Description Yearly share of all dishes containing the ingredient, with trend direction, peak and volatility
// @Tags General
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.AdoptionTrendResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/general/trends [get]
func (h *Handler) AdoptionTrend(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.AdoptionTrendResponse, error) {
		return h.svc.AdoptionTrend(ctx, ingredient)
	})
}

// FormatAdoption godoc
//
// @Summary Format adoption
// @Description Ingredient and dish formats by share of the ingredient's dishes, plus the most common applications
// @Tags Applications
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.FormatData
// @Failure 400 {object} models.ErrorResponse
// @Router /api/format-adoption [get]
func (h *Handler) FormatAdoption(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.FormatData, error) {
		return h.svc.FormatAdoption(ctx, ingredient)
	})
}

// Applications godoc
//
// @Summary Detailed applications
// @Description Subcategories holding the ingredient with share, growth, lifecycle phase, appeal, flavor roles, cuisines and top dishes
// @Tags Applications
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param category query string false "General category substring"
// @Param lifecycle_phase query string false "Lifecycle phase" Enums(emerging, growing, mature, declining)
// @Param min_share query number false "Minimum share percent"
// @Success 200 {array} models.ApplicationDetail
// @Failure 400 {object} models.ErrorResponse
// @Router /api/applications/detailed [get]
func (h *Handler) Applications(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	p := validation.ApplicationsParams{
		Ingredient:     q.String("ingredient", ""),
		Category:       q.String("category", ""),
		LifecyclePhase: q.String("lifecycle_phase", ""),
		MinShare:       q.OptionalFloat("min_share"),
	}
	if !q.check(w, &p) {
		return
	}
	serve(w, r, func(ctx context.Context) ([]models.ApplicationDetail, error) {
		return h.svc.Applications(ctx, p.Ingredient, analytics.ApplicationsParams{
			Category:       p.Category,
			LifecyclePhase: p.LifecyclePhase,
			MinShare:       p.MinShare,
		})
	})
}

// TextureAttributes godoc
//
// @Summary Texture attributes
// @Description Most mentioned textures with scale labels, and yearly counts of the tracked textures
// @Tags Consumer
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} models.TextureData
// @Failure 400 {object} models.ErrorResponse
// @Router /api/texture-attributes [get]
func (h *Handler) TextureAttributes(w http.ResponseWriter, r *http.Request) {
	ingredient, ok := ingredientParam(w, r)
	if !ok {
		return
	}
	serve(w, r, func(ctx context.Context) (*models.TextureData, error) {
		return h.svc.TextureAttributes(ctx, ingredient)
	})
}
