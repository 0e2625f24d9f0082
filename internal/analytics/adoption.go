// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/database/query"
	"github.com/tomtom215/flavorlens/internal/models"
)

// Adoption trend thresholds, in percentage points.
const (
	adoptionTrendThreshold = 0.5
	adoptionStrongChange   = 2.0
	adoptionModerateChange = 0.8
	adoptionHighStdDev     = 1.5
	adoptionMediumStdDev   = 0.5
)

// AdoptionTrend returns the ingredient's share of all dishes for every year
// from the configured trend start, with a read of the series and a summary.
// Years with dishes but no ingredient report 0.
func (s *Service) AdoptionTrend(ctx context.Context, ingredient string) (*models.AdoptionTrendResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	where, args := query.NewWhereBuilder().AddContains("ingredient_name", ingredient).Build()
	start := s.cfg.TrendStartYear

	q := fmt.Sprintf(`
	WITH yearly_totals AS (
		SELECT year, COUNT(DISTINCT dish_id) AS total_dishes
		FROM %[1]s
		WHERE year >= ?
		GROUP BY year
	),
	yearly_hits AS (
		SELECT year, COUNT(DISTINCT dish_id) AS ingredient_dishes
		FROM %[1]s
		WHERE %[2]s AND year >= ?
		GROUP BY year
	)
	SELECT t.year, t.total_dishes, COALESCE(h.ingredient_dishes, 0) AS ingredient_dishes
	FROM yearly_totals t
	LEFT JOIN yearly_hits h ON h.year = t.year
	ORDER BY t.year ASC`, s.table, where)

	params := append([]any{start}, args...)
	params = append(params, start)

	res, err := s.run(ctx, "adoption_trend", q, params, 0)
	if err != nil {
		return nil, err
	}

	points := make([]models.AdoptionPoint, 0, len(res.Rows))
	for _, row := range res.Rows {
		total := database.Int(row, "total_dishes")
		hits := database.Int(row, "ingredient_dishes")
		points = append(points, models.AdoptionPoint{
			Year:               database.Int(row, "year"),
			AdoptionPercentage: Round(valueOr(Percent(hits, total), 0), 2),
			TotalDishes:        total,
			IngredientDishes:   hits,
		})
	}

	analysis := analyzeAdoption(points)
	return &models.AdoptionTrendResponse{
		Ingredient: ingredient,
		DataPoints: points,
		Analysis:   analysis,
		Summary:    adoptionSummary(ingredient, analysis, points),
	}, nil
}

func analyzeAdoption(points []models.AdoptionPoint) models.AdoptionAnalysis {
	switch len(points) {
	case 0:
		return models.AdoptionAnalysis{
			CurrentTrend:  models.TrendNoData,
			TrendStrength: models.LabelUnknown,
			Volatility:    models.LabelUnknown,
		}
	case 1:
		return models.AdoptionAnalysis{
			CurrentTrend:  models.TrendInsufficient,
			TrendStrength: models.LabelUnknown,
			Volatility:    models.LabelUnknown,
		}
	}

	first, last := points[0], points[len(points)-1]
	recent := last.AdoptionPercentage - points[len(points)-2].AdoptionPercentage

	peak := first
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.AdoptionPercentage
		if p.AdoptionPercentage > peak.AdoptionPercentage {
			peak = p
		}
	}

	rate := 0.0
	if span := last.Year - first.Year; span > 0 && first.AdoptionPercentage > 0 {
		ratio := last.AdoptionPercentage / first.AdoptionPercentage
		rate = (math.Pow(ratio, 1/float64(span)) - 1) * 100
	}

	a := models.AdoptionAnalysis{
		CurrentTrend:      models.TrendStable,
		TrendStrength:     "weak",
		PeakYear:          &peak.Year,
		PeakPercentage:    &peak.AdoptionPercentage,
		RecentChange:      Round(recent, 2),
		AverageGrowthRate: Round(rate, 2),
		Volatility:        "low",
	}
	switch {
	case recent > adoptionTrendThreshold:
		a.CurrentTrend = models.TrendIncreasing
	case recent < -adoptionTrendThreshold:
		a.CurrentTrend = models.TrendDecreasing
	}
	switch change := math.Abs(recent); {
	case change > adoptionStrongChange:
		a.TrendStrength = "strong"
	case change > adoptionModerateChange:
		a.TrendStrength = "moderate"
	}
	_, std := stat.PopMeanStdDev(values, nil)
	switch {
	case std > adoptionHighStdDev:
		a.Volatility = "high"
	case std > adoptionMediumStdDev:
		a.Volatility = "medium"
	}
	return a
}

func adoptionSummary(ingredient string, a models.AdoptionAnalysis, points []models.AdoptionPoint) string {
	if len(points) == 0 {
		return fmt.Sprintf("No trend data available for %s.", ingredient)
	}
	last := points[len(points)-1]

	var trend string
	switch a.CurrentTrend {
	case models.TrendIncreasing:
		trend = fmt.Sprintf("trending upward with %s momentum", a.TrendStrength)
	case models.TrendDecreasing:
		trend = fmt.Sprintf("trending downward with %s decline", a.TrendStrength)
	default:
		trend = "showing stable adoption"
	}

	var peak string
	if a.PeakYear != nil && a.PeakPercentage != nil && *a.PeakPercentage > 0 {
		if *a.PeakYear == last.Year {
			peak = " and is currently at its peak"
		} else {
			peak = fmt.Sprintf(", with its peak of %.1f%% in %d", *a.PeakPercentage, *a.PeakYear)
		}
	}

	return fmt.Sprintf("%s is currently at %.1f%% adoption, %s%s.",
		titleCase(ingredient), last.AdoptionPercentage, trend, peak)
}
