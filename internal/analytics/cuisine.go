// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/models"
)

const (
	cuisineAnalysisLimit = 12
	cuisineMinDishes     = 2
	cuisineChartLimit    = 8
	emergingCuisineLimit = 5
)

// CuisineDistribution returns each cuisine's share of the ingredient's
// current-year dishes and the ingredient's adoption within the cuisine.
func (s *Service) CuisineDistribution(ctx context.Context, ingredient string) ([]models.CuisineDistribution, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	cur, prev := s.years()
	col := dimensionColumns[DimCuisine]
	totalWhere, totalArgs := dimensionScope(col, Filter{})
	hitWhere, hitArgs := ingredientScope(ingredient, col, Filter{})

	q := fmt.Sprintf(`
	WITH totals AS (
		SELECT %[2]s AS name, COUNT(DISTINCT dish_id) AS total_dishes
		FROM %[1]s
		WHERE %[3]s
		GROUP BY %[2]s
	),
	hits AS (
		SELECT
			%[2]s AS name,
			COUNT(DISTINCT dish_id) AS ingredient_dishes,
			COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_count,
			COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS previous_count
		FROM %[1]s
		WHERE %[4]s
		GROUP BY %[2]s
	)
	SELECT h.name, h.ingredient_dishes, h.current_count, h.previous_count, t.total_dishes
	FROM hits h
	JOIN totals t ON t.name = h.name
	ORDER BY h.current_count DESC, h.name ASC`, s.table, col, totalWhere, hitWhere)

	params := append([]any{}, totalArgs...)
	params = append(params, cur, prev)
	params = append(params, hitArgs...)

	res, err := s.run(ctx, "cuisine_distribution", q, params, 0)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, row := range res.Rows {
		total += database.Int(row, "current_count")
	}
	out := make([]models.CuisineDistribution, 0, len(res.Rows))
	for _, row := range res.Rows {
		cur := database.Int(row, "current_count")
		prev := database.Int(row, "previous_count")
		if cur == 0 && prev == 0 {
			continue
		}
		out = append(out, models.CuisineDistribution{
			Cuisine:    database.String(row, "name"),
			DishCount:  cur,
			Percentage: RoundPtr(Percent(cur, total), 1),
			Growth:     RoundPtr(Growth(float64(prev), float64(cur), GrowthZeroNull), 1),
			Adoption:   Round(valueOr(Percent(database.Int(row, "ingredient_dishes"), database.Int(row, "total_dishes")), 0), 1),
		})
	}
	return out, nil
}

// CuisineAnalysis looks at dishes where the ingredient is a flavor
// aromatic. Its usage and the per-cuisine dish totals run concurrently and
// are joined by cuisine.
func (s *Service) CuisineAnalysis(ctx context.Context, ingredient string) (*models.CuisineAnalysisResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	cur, prev := s.years()
	col := dimensionColumns[DimCuisine]

	var usage, totals []map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		where, args := ingredientScope(ingredient, col, Filter{})
		q := fmt.Sprintf(`
		SELECT
			%[2]s AS name,
			COUNT(DISTINCT dish_id) AS dish_count,
			COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_count,
			COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS previous_count
		FROM %[1]s
		WHERE %[3]s AND ingredient_role = 'flavor-aromatic'
		GROUP BY %[2]s`, s.table, col, where)
		res, err := s.run(gctx, "cuisine_usage", q, append([]any{cur, prev}, args...), 0)
		if err != nil {
			return err
		}
		usage = res.Rows
		return nil
	})
	g.Go(func() error {
		where, args := dimensionScope(col, Filter{})
		q := fmt.Sprintf(`
		SELECT %[2]s AS name, COUNT(DISTINCT dish_id) AS total_dishes
		FROM %[1]s
		WHERE %[3]s
		GROUP BY %[2]s`, s.table, col, where)
		res, err := s.run(gctx, "cuisine_totals", q, args, 0)
		if err != nil {
			return err
		}
		totals = res.Rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildCuisineAnalysis(ingredient, usage, totals), nil
}

func buildCuisineAnalysis(ingredient string, usage, totals []map[string]any) *models.CuisineAnalysisResponse {
	cuisineTotals := make(map[string]int, len(totals))
	for _, row := range totals {
		cuisineTotals[database.String(row, "name")] = database.Int(row, "total_dishes")
	}

	all := 0
	for _, row := range usage {
		all += database.Int(row, "dish_count")
	}

	data := make([]models.CuisineData, 0, len(usage))
	for _, row := range usage {
		n := database.Int(row, "dish_count")
		if n < cuisineMinDishes {
			continue
		}
		name := database.String(row, "name")
		prev := float64(database.Int(row, "previous_count"))
		cur := float64(database.Int(row, "current_count"))
		data = append(data, models.CuisineData{
			Cuisine:     name,
			Percentage:  Round(valueOr(Percent(n, all), 0), 1),
			Growth:      Round(valueOr(Growth(prev, cur, GrowthZeroZero), 0), 1),
			Penetration: Round(valueOr(Percent(n, cuisineTotals[name]), 0), 1),
			DishCount:   n,
		})
	}
	sort.SliceStable(data, func(i, j int) bool {
		if data[i].DishCount != data[j].DishCount {
			return data[i].DishCount > data[j].DishCount
		}
		return data[i].Cuisine < data[j].Cuisine
	})
	if len(data) > cuisineAnalysisLimit {
		data = data[:cuisineAnalysisLimit]
	}

	resp := &models.CuisineAnalysisResponse{
		Ingredient:       titleCase(ingredient),
		CuisineData:      data,
		PieData:          make([]models.PieSlice, 0, cuisineChartLimit),
		PenetrationData:  make([]models.PenetrationPoint, 0, cuisineChartLimit),
		TotalCuisines:    len(data),
		EmergingCuisines: make([]models.CuisineData, 0, emergingCuisineLimit),
	}
	if len(data) == 0 {
		return resp
	}

	top := data
	if len(top) > cuisineChartLimit {
		top = top[:cuisineChartLimit]
	}
	for i, c := range top {
		resp.PieData = append(resp.PieData, models.PieSlice{
			Name:       c.Cuisine,
			Value:      c.DishCount,
			Percentage: c.Percentage,
			Fill:       colorAt(i),
		})
	}
	byPenetration := append([]models.CuisineData(nil), top...)
	sort.SliceStable(byPenetration, func(i, j int) bool {
		return byPenetration[i].Penetration > byPenetration[j].Penetration
	})
	for _, c := range byPenetration {
		resp.PenetrationData = append(resp.PenetrationData, models.PenetrationPoint{
			Name:        c.Cuisine,
			Penetration: c.Penetration,
			Growth:      c.Growth,
		})
	}

	highestGrowth, highestPen := data[0], data[0]
	var growthSum float64
	var emerging []models.CuisineData
	for _, c := range data {
		resp.TotalDishes += c.DishCount
		growthSum += c.Growth
		if c.Growth > highestGrowth.Growth {
			highestGrowth = c
		}
		if c.Penetration > highestPen.Penetration {
			highestPen = c
		}
		if c.Growth > 20 && c.Penetration < 50 {
			emerging = append(emerging, c)
		}
	}
	sort.SliceStable(emerging, func(i, j int) bool { return emerging[i].Growth > emerging[j].Growth })
	if len(emerging) > emergingCuisineLimit {
		emerging = emerging[:emergingCuisineLimit]
	}

	resp.HighestGrowthCuisine = &highestGrowth
	resp.HighestPenetrationCuisine = &highestPen
	resp.EmergingCuisines = append(resp.EmergingCuisines, emerging...)
	resp.AvgGrowthRate = Round(growthSum/float64(len(data)), 1)
	return resp
}
