// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/models"
)

// trendInsightCount is the number of series that get an insight line.
const trendInsightCount = 4

// Trends returns yearly adoption series for the dimension's top values.
// The years query and the series query run concurrently.
func (s *Service) Trends(ctx context.Context, dim Dimension, ingredient string, f Filter) (*models.TrendResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	col, err := dim.column()
	if err != nil {
		return nil, err
	}
	first, last := s.cfg.TrendStartYear, s.now().Year()
	if ref, _ := s.years(); ref > last {
		last = ref
	}

	var years []int
	var rows []map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.run(gctx, "trend_years", fmt.Sprintf(`
		SELECT DISTINCT year
		FROM %s
		WHERE year >= ? AND year <= ?
		ORDER BY year ASC
		LIMIT ?`, s.table), []any{first, last, s.cfg.TrendMaxPoints}, 0)
		if err != nil {
			return err
		}
		years = make([]int, 0, len(res.Rows))
		for _, row := range res.Rows {
			years = append(years, database.Int(row, "year"))
		}
		return nil
	})
	g.Go(func() error {
		totalWhere, totalArgs := dimensionScope(col, f)
		hitWhere, hitArgs := ingredientScope(ingredient, col, f)
		q := fmt.Sprintf(`
		WITH totals AS (
			SELECT year, %[2]s AS name, COUNT(DISTINCT dish_id) AS total_dishes
			FROM %[1]s
			WHERE %[3]s AND year >= ? AND year <= ?
			GROUP BY year, %[2]s
		),
		hits AS (
			SELECT year, %[2]s AS name, COUNT(DISTINCT dish_id) AS ingredient_dishes
			FROM %[1]s
			WHERE %[4]s AND year >= ? AND year <= ?
			GROUP BY year, %[2]s
		)
		SELECT h.year, h.name, h.ingredient_dishes, t.total_dishes
		FROM hits h
		JOIN totals t ON t.year = h.year AND t.name = h.name
		ORDER BY h.year ASC, h.name ASC`, s.table, col, totalWhere, hitWhere)

		params := append([]any{}, totalArgs...)
		params = append(params, first, last)
		params = append(params, hitArgs...)
		params = append(params, first, last)

		res, err := s.run(gctx, "trend_series_"+string(dim), q, params, 0)
		if err != nil {
			return err
		}
		rows = res.Rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	series := buildSeries(years, rows, trendTopN[dim])
	analysis := analyzeTrends(series)
	return &models.TrendResponse{
		Ingredient: ingredient,
		Years:      years,
		Categories: series,
		Analysis:   analysis,
		Insights:   trendInsights(series, years),
		Summary:    trendSummary(ingredient, trendNoun[dim], series, analysis),
	}, nil
}

// buildSeries pads each value's counts to years, keeps the topN values by
// total ingredient dishes (ties by name) and computes adoption percentages.
func buildSeries(years []int, rows []map[string]any, topN int) []models.TrendSeries {
	out := make([]models.TrendSeries, 0)
	if len(years) == 0 {
		return out
	}
	index := make(map[int]int, len(years))
	for i, y := range years {
		index[y] = i
	}

	type acc struct {
		name   string
		hits   []int
		totals []int
		sum    int
	}
	byName := make(map[string]*acc)
	for _, row := range rows {
		i, ok := index[database.Int(row, "year")]
		if !ok {
			continue
		}
		name := database.String(row, "name")
		a, ok := byName[name]
		if !ok {
			a = &acc{name: name, hits: make([]int, len(years)), totals: make([]int, len(years))}
			byName[name] = a
		}
		n := database.Int(row, "ingredient_dishes")
		a.hits[i] = n
		a.totals[i] = database.Int(row, "total_dishes")
		a.sum += n
	}

	ranked := make([]*acc, 0, len(byName))
	for _, a := range byName {
		ranked = append(ranked, a)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].sum != ranked[j].sum {
			return ranked[i].sum > ranked[j].sum
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	for i, a := range ranked {
		values := make([]float64, len(years))
		for y := range years {
			values[y] = Round(valueOr(Percent(a.hits[y], a.totals[y]), 0), 2)
		}
		out = append(out, models.TrendSeries{
			Name:           a.name,
			Color:          colorAt(i),
			Values:         values,
			AbsoluteValues: a.hits,
		})
	}
	return out
}

func firstPositive(values []float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func positives(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}

func lastValue(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return values[len(values)-1]
}

// analyzeTrends picks the top performer (highest latest adoption), the
// fastest grower (first non-zero to latest) and the most consistent series
// (lowest coefficient of variation over its non-zero values).
func analyzeTrends(series []models.TrendSeries) models.TrendAnalysis {
	if len(series) == 0 {
		return models.TrendAnalysis{
			TopPerformer:   "Unknown",
			FastestGrowing: "Unknown",
			MostConsistent: "Unknown",
		}
	}

	top := series[0]
	for _, sr := range series[1:] {
		if lastValue(sr.Values) > lastValue(top.Values) {
			top = sr
		}
	}

	fastest, fastestRate := series[0].Name, 0.0
	for _, sr := range series {
		if len(sr.Values) < 2 {
			continue
		}
		first := firstPositive(sr.Values)
		if first <= 0 {
			continue
		}
		rate := (lastValue(sr.Values) - first) / first * 100
		if rate > fastestRate {
			fastest, fastestRate = sr.Name, rate
		}
	}

	consistent, lowestCV := series[0].Name, math.Inf(1)
	var all []float64
	for _, sr := range series {
		vals := positives(sr.Values)
		all = append(all, vals...)
		if len(vals) < 2 {
			continue
		}
		mean, std := stat.PopMeanStdDev(vals, nil)
		if mean <= 0 {
			continue
		}
		if cv := std / mean; cv < lowestCV {
			consistent, lowestCV = sr.Name, cv
		}
	}

	avg := 0.0
	if len(all) > 0 {
		avg = stat.Mean(all, nil)
	}

	return models.TrendAnalysis{
		TopPerformer:      top.Name,
		TopPerformerRate:  lastValue(top.Values),
		FastestGrowing:    fastest,
		FastestGrowthRate: Round(fastestRate, 2),
		MostConsistent:    consistent,
		TotalCategories:   len(series),
		AvgAdoptionRate:   Round(avg, 2),
	}
}

func trendInsights(series []models.TrendSeries, years []int) []models.TrendInsight {
	out := make([]models.TrendInsight, 0, trendInsightCount)
	for i, sr := range series {
		if i == trendInsightCount {
			break
		}
		out = append(out, trendInsight(sr, years))
	}
	return out
}

func trendInsight(sr models.TrendSeries, years []int) models.TrendInsight {
	in := models.TrendInsight{Category: sr.Name, GrowthPattern: models.PatternStable}
	values := sr.Values
	if len(values) < 2 {
		if len(values) == 1 {
			in.Insight = fmt.Sprintf("Current adoption: %.1f%%", values[0])
		} else {
			in.Insight = "No data available"
		}
		return in
	}

	last := lastValue(values)
	first := firstPositive(values)
	if first <= 0 {
		in.Insight = fmt.Sprintf("Current adoption: %.1f%%", last)
		return in
	}

	total := (last - first) / first * 100
	recent := last - values[len(values)-2]
	switch {
	case total > 50:
		in.GrowthPattern = models.PatternStrongGrowth
		in.Insight = fmt.Sprintf("Strong growth trajectory (+%.0f%% since %d)", total, years[0])
	case total > 20:
		in.GrowthPattern = models.PatternSteadyGrowth
		in.Insight = fmt.Sprintf("Steady growth (+%.0f%% since %d)", total, years[0])
	case recent > 1:
		in.GrowthPattern = models.PatternSteadyGrowth
		in.Insight = fmt.Sprintf("Recent growth (+%.1f%% last year)", recent)
	case recent < -1:
		in.GrowthPattern = models.PatternDeclining
		in.Insight = fmt.Sprintf("Recent decline (%.1f%% last year)", recent)
	default:
		in.Insight = fmt.Sprintf("Stable at %.1f%% adoption", last)
	}
	return in
}

func trendSummary(ingredient, noun string, series []models.TrendSeries, a models.TrendAnalysis) string {
	if len(series) == 0 {
		return fmt.Sprintf("No trend data available for %s.", ingredient)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s shows varied adoption across %d %s. ", titleCase(ingredient), a.TotalCategories, noun)
	fmt.Fprintf(&b, "%s leads with %.1f%% adoption, ", a.TopPerformer, a.TopPerformerRate)
	switch {
	case a.FastestGrowthRate > 30:
		fmt.Fprintf(&b, "while %s demonstrates exceptional growth (+%.0f%%). ", a.FastestGrowing, a.FastestGrowthRate)
	case a.FastestGrowthRate > 10:
		fmt.Fprintf(&b, "with %s showing solid growth (+%.0f%%). ", a.FastestGrowing, a.FastestGrowthRate)
	default:
		b.WriteString("with generally stable performance. ")
	}
	switch {
	case a.AvgAdoptionRate > 10:
		b.WriteString("The ingredient maintains strong market presence")
	case a.AvgAdoptionRate > 5:
		b.WriteString("The ingredient shows moderate market presence")
	default:
		b.WriteString("The ingredient has emerging market presence")
	}
	fmt.Fprintf(&b, " with %.1f%% average adoption across analyzed %s.", a.AvgAdoptionRate, noun)
	return b.String()
}
