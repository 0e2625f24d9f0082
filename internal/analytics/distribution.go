// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/models"
)

// penetrationTopN caps the penetration table.
const penetrationTopN = 10

// Distribution returns the ingredient's current-year dishes split by
// dimension value, ordered by dish count then name.
func (s *Service) Distribution(ctx context.Context, dim Dimension, ingredient string, f Filter) ([]models.DistributionRow, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	col, err := dim.column()
	if err != nil {
		return nil, err
	}
	cur, prev := s.years()
	where, args := ingredientScope(ingredient, col, f)

	q := fmt.Sprintf(`
	SELECT
		%[2]s AS name,
		COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_count,
		COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS previous_count
	FROM %[1]s
	WHERE %[3]s AND year IN (?, ?)
	GROUP BY %[2]s
	ORDER BY current_count DESC, name ASC`, s.table, col, where)

	params := append([]any{cur, prev}, args...)
	params = append(params, cur, prev)

	res, err := s.run(ctx, "distribution_"+string(dim), q, params, 0)
	if err != nil {
		return nil, err
	}
	return buildDistribution(res.Rows), nil
}

func buildDistribution(rows []map[string]any) []models.DistributionRow {
	total := 0
	for _, row := range rows {
		total += database.Int(row, "current_count")
	}

	out := make([]models.DistributionRow, 0, len(rows))
	for _, row := range rows {
		cur := database.Int(row, "current_count")
		prev := database.Int(row, "previous_count")
		if cur == 0 && prev == 0 {
			continue
		}
		out = append(out, models.DistributionRow{
			Name:                database.String(row, "name"),
			Value:               RoundPtr(Percent(cur, total), 2),
			DishCount:           cur,
			PreviousCount:       prev,
			YoYGrowthPercentage: RoundPtr(Growth(float64(prev), float64(cur), GrowthZeroNull), 2),
			Fill:                colorAt(len(out)),
		})
	}
	return out
}

// Penetration returns, per dimension value, the share of all dishes that
// contain the ingredient, ordered by penetration then name. At most 10 rows.
func (s *Service) Penetration(ctx context.Context, dim Dimension, ingredient string, f Filter) ([]models.PenetrationRow, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	col, err := dim.column()
	if err != nil {
		return nil, err
	}
	cur, prev := s.years()
	totalWhere, totalArgs := dimensionScope(col, f)
	hitWhere, hitArgs := ingredientScope(ingredient, col, f)

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
	SELECT h.name, h.ingredient_dishes, t.total_dishes, h.current_count, h.previous_count
	FROM hits h
	JOIN totals t ON t.name = h.name`, s.table, col, totalWhere, hitWhere)

	params := append([]any{}, totalArgs...)
	params = append(params, cur, prev)
	params = append(params, hitArgs...)

	res, err := s.run(ctx, "penetration_"+string(dim), q, params, 0)
	if err != nil {
		return nil, err
	}
	return buildPenetration(res.Rows, penetrationTopN), nil
}

func buildPenetration(rows []map[string]any, limit int) []models.PenetrationRow {
	out := make([]models.PenetrationRow, 0, len(rows))
	for _, row := range rows {
		hits := database.Int(row, "ingredient_dishes")
		total := database.Int(row, "total_dishes")
		cur := database.Int(row, "current_count")
		prev := database.Int(row, "previous_count")
		out = append(out, models.PenetrationRow{
			Name:             database.String(row, "name"),
			Penetration:      Round(valueOr(Percent(hits, total), 0), 1),
			Growth:           Round(valueOr(Growth(float64(prev), float64(cur), GrowthZeroZero), 0), 1),
			Status:           ClassifyStatus(prev, cur),
			IngredientDishes: hits,
			TotalDishes:      total,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Penetration != out[j].Penetration {
			return out[i].Penetration > out[j].Penetration
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Color = colorAt(i)
	}
	return out
}
