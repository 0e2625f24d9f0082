// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/flavorlens/internal/analytics"
	"github.com/tomtom215/flavorlens/internal/middleware"
)

// Router wires handlers and middleware into a chi.Mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// urlParam returns a chi URL parameter.
func urlParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	// Health
	r.Get("/", h.Health)
	r.Get("/health", h.Health)
	r.Get("/health/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(SecurityHeaders())

		r.Route("/category", func(r chi.Router) {
			r.Get("/distribution", h.CategoryDistribution)
			r.Get("/penetration", h.CategoryPenetration)
			r.Get("/trends", h.CategoryTrends)
			r.Get("/analysis", h.CategoryAnalysis)
		})

		r.Route("/geographic", func(r chi.Router) {
			r.Get("/distribution", h.Distribution(analytics.DimCountry))
			r.Get("/penetration", h.Penetration(analytics.DimCountry))
			r.Get("/trends", h.Trends(analytics.DimCountry))
			r.Get("/regions", h.GeographicRegions)
		})

		r.Route("/subcategory", func(r chi.Router) {
			r.Get("/distribution", h.Distribution(analytics.DimSubcategory))
			r.Get("/penetration", h.Penetration(analytics.DimSubcategory))
			r.Get("/trends", h.Trends(analytics.DimSubcategory))
			r.Get("/analysis", h.SubcategoryAnalysis)
		})

		r.Get("/cuisine-distribution", h.CuisineDistribution)
		r.Get("/cuisine/analysis", h.CuisineAnalysis)

		r.Get("/phase", h.Phase)
		r.Get("/recipe-share", h.Share(analytics.SourceRecipe))
		r.Get("/menu-share", h.Share(analytics.SourceMenu))
		r.Get("/social-share", h.Share(analytics.SourceSocial))
		r.Get("/general/summary-stats", h.SummaryStats)
		r.Get("/general/trends", h.AdoptionTrend)

		r.Get("/season/distribution", h.SeasonDistribution)
		r.Get("/serving-temperature", h.ServingTemperature)

		r.Get("/pairings", h.Pairings)
		r.Get("/consumer-insights/{attribute_type}", h.ConsumerInsights)
		r.Get("/texture-attributes", h.TextureAttributes)
		r.Get("/dish/top-dishes", h.TopDishes)

		r.Get("/format-adoption", h.FormatAdoption)
		r.Get("/applications/detailed", h.Applications)

		// Paths used by earlier frontend builds
		r.Get("/category-distribution", h.CategoryDistribution)
		r.Get("/category-penetration", h.CategoryPenetration)
		r.Get("/geographic-distribution", h.GeographicRegions)
		r.Get("/subcategory-trends", h.Trends(analytics.DimSubcategory))
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}
