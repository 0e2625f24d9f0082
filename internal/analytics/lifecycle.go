// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/database/query"
	"github.com/tomtom215/flavorlens/internal/models"
)

// Dish sources.
const (
	SourceRecipe = "recipe"
	SourceMenu   = "menu"
	SourceSocial = "social"
)

// PhaseSources are the sources the phase template accepts.
var PhaseSources = []string{SourceRecipe, SourceMenu}

// Sources are all dish sources.
var Sources = []string{SourceRecipe, SourceMenu, SourceSocial}

func isOneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Phase classifies the ingredient's lifecycle within one source from its
// current and previous year dish counts.
func (s *Service) Phase(ctx context.Context, ingredient, source string) (*models.LifecycleData, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	if !isOneOf(source, PhaseSources) {
		return nil, fmt.Errorf("unsupported phase source %q", source)
	}
	cur, prev := s.years()
	where, args := query.NewWhereBuilder().
		AddContains("ingredient_name", ingredient).
		AddEquals("source", source).
		Build()

	q := fmt.Sprintf(`
	SELECT
		COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_count,
		COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS previous_count
	FROM %s
	WHERE %s`, s.table, where)

	res, err := s.run(ctx, "phase", q, append([]any{cur, prev}, args...), shortTTL)
	if err != nil {
		return nil, err
	}

	var current, previous int
	if len(res.Rows) > 0 {
		current = database.Int(res.Rows[0], "current_count")
		previous = database.Int(res.Rows[0], "previous_count")
	}
	return lifecycle(previous, current, prev, cur), nil
}

func lifecycle(previous, current, prevYear, curYear int) *models.LifecycleData {
	var yoy *float64
	if previous > 0 {
		yoy = RoundPtr(Growth(float64(previous), float64(current), GrowthZeroNull), 2)
	}
	phase := ClassifyPhase(previous, current, valueOr(yoy, 0))

	var desc string
	switch {
	case phase == models.PhaseEmerging:
		desc = fmt.Sprintf("New ingredient appearing in %d dishes this year", current)
	case previous == 0 && current == 0:
		desc = fmt.Sprintf("No dishes recorded in %d or %d", prevYear, curYear)
	case current == 0:
		desc = "Ingredient no longer appearing in dishes"
	case phase == models.PhaseGrowing:
		desc = fmt.Sprintf("Strong growth of %.1f%% year-over-year", *yoy)
	case phase == models.PhaseDeclining:
		desc = fmt.Sprintf("Significant decline of %.1f%% year-over-year", *yoy)
	default:
		desc = fmt.Sprintf("Stable with %.1f%% year-over-year change", *yoy)
	}

	return &models.LifecycleData{
		Phase:             phase,
		CurrentYearCount:  current,
		PreviousYearCount: previous,
		YoYGrowthPercent:  yoy,
		Description:       desc,
	}
}

// Share returns the ingredient's share of one source's current-year dishes
// and the change in its dish count from the previous year.
func (s *Service) Share(ctx context.Context, ingredient, source string) (*models.ShareData, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	if !isOneOf(source, Sources) {
		return nil, fmt.Errorf("unsupported share source %q", source)
	}
	cur, prev := s.years()
	match := query.ContainsClause("ingredient_name")
	pattern := query.ContainsPattern(ingredient)

	q := fmt.Sprintf(`
	SELECT
		COUNT(DISTINCT CASE WHEN year = ? AND %[2]s THEN dish_id END) AS current_count,
		COUNT(DISTINCT CASE WHEN year = ? AND %[2]s THEN dish_id END) AS previous_count,
		COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_total
	FROM %[1]s
	WHERE source = ?`, s.table, match)

	res, err := s.run(ctx, "share_"+source, q, []any{cur, pattern, prev, pattern, cur, source}, shortTTL)
	if err != nil {
		return nil, err
	}

	var current, previous, total int
	if len(res.Rows) > 0 {
		row := res.Rows[0]
		current = database.Int(row, "current_count")
		previous = database.Int(row, "previous_count")
		total = database.Int(row, "current_total")
	}
	change := Round(valueOr(Growth(float64(previous), float64(current), GrowthZeroZero), 0), 2)
	return &models.ShareData{
		SharePercent:  RoundPtr(Percent(current, total), 2),
		ChangePercent: change,
		IsPositive:    change > 0,
		CurrentCount:  current,
		PreviousCount: previous,
	}, nil
}

type sourceYear struct {
	source string
	year   int
}

type sourceCounts struct {
	share  float64
	dishes int
}

// SummaryStats returns the dashboard tiles: recipe, menu and social share of
// current-year dishes with the percentage-point change since the previous
// year, and the overall adoption phase.
func (s *Service) SummaryStats(ctx context.Context, ingredient string) (*models.SummaryStatsResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	cur, prev := s.years()

	q := fmt.Sprintf(`
	SELECT
		year,
		source,
		COUNT(DISTINCT dish_id) AS total_dishes,
		COUNT(DISTINCT CASE WHEN %[2]s THEN dish_id END) AS ingredient_dishes
	FROM %[1]s
	WHERE year IN (?, ?) AND source IS NOT NULL
	GROUP BY year, source`, s.table, query.ContainsClause("ingredient_name"))

	res, err := s.run(ctx, "summary_stats", q, []any{query.ContainsPattern(ingredient), cur, prev}, shortTTL)
	if err != nil {
		return nil, err
	}

	counts := make(map[sourceYear]sourceCounts, len(res.Rows))
	for _, row := range res.Rows {
		hits := database.Int(row, "ingredient_dishes")
		counts[sourceYear{database.String(row, "source"), database.Int(row, "year")}] = sourceCounts{
			share:  Round(valueOr(Percent(hits, database.Int(row, "total_dishes")), 0), 2),
			dishes: hits,
		}
	}

	tiles := []struct {
		source, title, desc string
	}{
		{SourceRecipe, "Recipe Share", "Share of recipes containing this ingredient"},
		{SourceMenu, "Menu Share", "Presence on restaurant menus"},
		{SourceSocial, "Social Content Share", "Share of social content mentions"},
	}

	metrics := make([]models.MetricBox, 0, len(tiles)+1)
	var totalCur, totalPrev int
	for _, t := range tiles {
		now := counts[sourceYear{t.source, cur}]
		before := counts[sourceYear{t.source, prev}]
		totalCur += now.dishes
		totalPrev += before.dishes

		delta := now.share - before.share
		positive := delta >= 0
		metrics = append(metrics, models.MetricBox{
			Title:       t.title,
			Value:       fmt.Sprintf("%.1f%%", now.share),
			Growth:      fmt.Sprintf("%+.1f%%", delta),
			IsPositive:  &positive,
			Description: t.desc,
		})
	}

	yoy := valueOr(Growth(float64(totalPrev), float64(totalCur), GrowthZeroZero), 0)
	phase := ClassifyPhase(totalPrev, totalCur, yoy)
	metrics = append(metrics, models.MetricBox{
		Title:       "Adoption Phase",
		Value:       string(phase),
		Phase:       phase.Number(),
		TotalPhases: 4,
		Description: "Current lifecycle position",
	})

	return &models.SummaryStatsResponse{Ingredient: ingredient, Metrics: metrics}, nil
}
