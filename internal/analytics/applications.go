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

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/database/query"
	"github.com/tomtom215/flavorlens/internal/models"
)

const (
	applicationTopN        = 20
	applicationCuisineTopN = 5
	applicationDishTopN    = 4
	neutralAppeal          = 50.0
)

// ApplicationPhases are the application lifecycle labels.
var ApplicationPhases = []string{"emerging", "growing", "mature", "declining"}

// ApplicationsParams filters the detailed application list.
type ApplicationsParams struct {
	Category       string
	LifecyclePhase string
	MinShare       *float64
}

// ApplicationPhase labels a penetration change in percentage points.
func ApplicationPhase(growth float64) string {
	switch {
	case growth > 20:
		return "emerging"
	case growth > 5:
		return "growing"
	case growth < -10:
		return "declining"
	default:
		return "mature"
	}
}

// AppealScore rates an application from 0 to 100: up to 80 points from the
// average star rating and up to 20 from the rating volume, saturating at
// 100 ratings. Without ratings the score is 50.
func AppealScore(avgRating *float64, totalRatings int) float64 {
	if avgRating == nil {
		return neutralAppeal
	}
	volume := math.Min(float64(totalRatings)/100*20, 20)
	return Round(*avgRating/5*80+volume, 1)
}

// Applications returns, per subcategory holding the ingredient, its share of
// the ingredient's dishes, the penetration change since last year, appeal,
// flavor roles, leading cuisines and best-rated dishes. Results are ordered
// by share and capped at 20 after the phase and minimum share filters.
func (s *Service) Applications(ctx context.Context, ingredient string, p ApplicationsParams) ([]models.ApplicationDetail, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	cur, prev := s.years()
	pattern := query.ContainsPattern(ingredient)
	hit := query.ContainsClause("ingredient_name")

	scope := func() *query.WhereBuilder {
		return query.NewWhereBuilder().
			AddClause("specific_category IS NOT NULL AND specific_category <> ''").
			AddContains("general_category", p.Category)
	}
	allWhere, allArgs := scope().Build()
	hitWhere, hitArgs := scope().AddContains("ingredient_name", ingredient).Build()

	var mainRows, cuisineRows, dishRows []map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := fmt.Sprintf(`
		WITH per_application AS (
			SELECT
				specific_category AS title,
				COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_dishes,
				COUNT(DISTINCT CASE WHEN year = ? AND %[4]s THEN dish_id END) AS current_hits,
				COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS previous_dishes,
				COUNT(DISTINCT CASE WHEN year = ? AND %[4]s THEN dish_id END) AS previous_hits
			FROM %[1]s
			WHERE %[2]s
			GROUP BY specific_category
		),
		hits AS (
			SELECT
				specific_category AS title,
				COUNT(DISTINCT dish_id) AS ingredient_dishes,
				AVG(star_rating) AS avg_rating,
				COALESCE(SUM(num_ratings), 0) AS total_ratings,
				COUNT(*) AS occurrences,
				COUNT(CASE WHEN flavor_role ILIKE '%%dominant%%' THEN 1 END) AS dominant,
				COUNT(CASE WHEN flavor_role ILIKE '%%enhancing%%' OR flavor_role ILIKE '%%supporting%%' THEN 1 END) AS enhancing,
				COUNT(CASE WHEN flavor_role ILIKE '%%background%%' OR flavor_role ILIKE '%%base%%' THEN 1 END) AS background,
				COUNT(CASE WHEN flavor_role ILIKE '%%contrast%%' OR flavor_role ILIKE '%%accent%%' THEN 1 END) AS contrasting
			FROM %[1]s
			WHERE %[3]s
			GROUP BY specific_category
		),
		total AS (
			SELECT COUNT(DISTINCT dish_id) AS dishes FROM %[1]s WHERE %[3]s
		)
		SELECT h.*, t.dishes AS total_dishes,
			a.current_dishes, a.current_hits, a.previous_dishes, a.previous_hits
		FROM hits h
		CROSS JOIN total t
		JOIN per_application a ON a.title = h.title`, s.table, allWhere, hitWhere, hit)

		params := []any{cur, cur, pattern, prev, prev, pattern}
		params = append(params, allArgs...)
		params = append(params, hitArgs...)
		params = append(params, hitArgs...)

		res, err := s.run(gctx, "applications", q, params, 0)
		if err != nil {
			return err
		}
		mainRows = res.Rows
		return nil
	})
	g.Go(func() error {
		q := fmt.Sprintf(`
		SELECT specific_category AS title, cuisine, COUNT(DISTINCT dish_id) AS dishes
		FROM %s
		WHERE %s AND cuisine IS NOT NULL AND cuisine <> ''
		GROUP BY specific_category, cuisine
		ORDER BY title ASC, dishes DESC, cuisine ASC`, s.table, hitWhere)

		res, err := s.run(gctx, "application_cuisines", q, hitArgs, 0)
		if err != nil {
			return err
		}
		cuisineRows = res.Rows
		return nil
	})
	g.Go(func() error {
		q := fmt.Sprintf(`
		SELECT title, dish_name
		FROM (
			SELECT
				specific_category AS title,
				dish_id,
				ANY_VALUE(TRIM(dish_name)) AS dish_name,
				MAX(COALESCE(star_rating, 0)) AS rating,
				MAX(COALESCE(num_ratings, 0)) AS ratings
			FROM %s
			WHERE %s AND dish_name IS NOT NULL AND TRIM(dish_name) <> ''
			GROUP BY specific_category, dish_id
		)
		QUALIFY ROW_NUMBER() OVER (PARTITION BY title ORDER BY rating DESC, ratings DESC, dish_name ASC) <= ?
		ORDER BY title ASC, rating DESC, ratings DESC, dish_name ASC`, s.table, hitWhere)

		res, err := s.run(gctx, "application_dishes", q, append(append([]any{}, hitArgs...), applicationDishTopN), 0)
		if err != nil {
			return err
		}
		dishRows = res.Rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildApplications(mainRows, groupCuisines(cuisineRows), groupDishes(dishRows), p), nil
}

func buildApplications(rows []map[string]any, cuisines map[string][]models.CuisineShare, dishes map[string][]string, p ApplicationsParams) []models.ApplicationDetail {
	out := make([]models.ApplicationDetail, 0, len(rows))
	for _, row := range rows {
		title := database.String(row, "title")
		hits := database.Int(row, "ingredient_dishes")
		if hits == 0 {
			continue
		}

		growth := 0.0
		curDishes, prevDishes := database.Int(row, "current_dishes"), database.Int(row, "previous_dishes")
		prevHits := database.Int(row, "previous_hits")
		if curDishes > 0 && prevDishes > 0 && prevHits > 0 {
			growth = *Percent(database.Int(row, "current_hits"), curDishes) - *Percent(prevHits, prevDishes)
		}
		growth = Round(growth, 2)

		occurrences := database.Int(row, "occurrences")
		role := func(col string) float64 {
			return Round(valueOr(Percent(database.Int(row, col), occurrences), 0), 1)
		}

		d := models.ApplicationDetail{
			Title:          title,
			SharePercent:   Round(valueOr(Percent(hits, database.Int(row, "total_dishes")), 0), 2),
			Growth:         growth,
			LifecyclePhase: ApplicationPhase(growth),
			AppealScore:    AppealScore(database.NullFloat64(row, "avg_rating"), database.Int(row, "total_ratings")),
			FlavorRoles: models.FlavorRoles{
				Dominant:    role("dominant"),
				Enhancing:   role("enhancing"),
				Background:  role("background"),
				Contrasting: role("contrasting"),
			},
			CuisineDistribution: cuisines[title],
			TopDishes:           dishes[title],
		}
		if d.CuisineDistribution == nil {
			d.CuisineDistribution = []models.CuisineShare{}
		}
		if d.TopDishes == nil {
			d.TopDishes = []string{}
		}

		if p.LifecyclePhase != "" && d.LifecyclePhase != p.LifecyclePhase {
			continue
		}
		if p.MinShare != nil && d.SharePercent < *p.MinShare {
			continue
		}
		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SharePercent != out[j].SharePercent {
			return out[i].SharePercent > out[j].SharePercent
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > applicationTopN {
		out = out[:applicationTopN]
	}
	return out
}

// groupCuisines turns (title, cuisine, dishes) rows, ordered by title then
// count, into each title's top cuisines as a share of its cuisine-labelled
// dishes.
func groupCuisines(rows []map[string]any) map[string][]models.CuisineShare {
	totals := make(map[string]int)
	for _, row := range rows {
		totals[database.String(row, "title")] += database.Int(row, "dishes")
	}

	out := make(map[string][]models.CuisineShare, len(totals))
	for _, row := range rows {
		title := database.String(row, "title")
		if len(out[title]) == applicationCuisineTopN {
			continue
		}
		out[title] = append(out[title], models.CuisineShare{
			Cuisine:    database.String(row, "cuisine"),
			Percentage: Round(valueOr(Percent(database.Int(row, "dishes"), totals[title]), 0), 1),
		})
	}
	return out
}

func groupDishes(rows []map[string]any) map[string][]string {
	out := make(map[string][]string)
	for _, row := range rows {
		title := database.String(row, "title")
		out[title] = append(out[title], database.String(row, "dish_name"))
	}
	return out
}
