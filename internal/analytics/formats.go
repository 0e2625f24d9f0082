// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/database/query"
	"github.com/tomtom215/flavorlens/internal/models"
)

const (
	formatTopN            = 10
	formatApplicationTopN = 3
	popularApplicationTop = 10
)

// FormatAdoption returns how the ingredient is used by format. A format
// counts the dishes whose ingredient format or dish format carries that
// name, so one dish can count under two formats; adoption is that count over
// all of the ingredient's dishes. Popular applications rank subcategories by
// dish count.
func (s *Service) FormatAdoption(ctx context.Context, ingredient string) (*models.FormatData, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	where, args := query.NewWhereBuilder().AddContains("ingredient_name", ingredient).Build()

	var formatRows, appRows []map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := fmt.Sprintf(`
		WITH scoped AS (
			SELECT dish_id, TRIM(ingredient_format) AS ingredient_format, TRIM(food_format) AS food_format, specific_category
			FROM %[1]s
			WHERE %[2]s
		),
		total AS (
			SELECT COUNT(DISTINCT dish_id) AS dishes FROM scoped
		),
		combined AS (
			SELECT ingredient_format AS format_name, COUNT(DISTINCT dish_id) AS dish_count
			FROM scoped
			WHERE ingredient_format IS NOT NULL AND ingredient_format <> ''
			GROUP BY ingredient_format
			UNION ALL
			SELECT food_format AS format_name, COUNT(DISTINCT dish_id) AS dish_count
			FROM scoped
			WHERE food_format IS NOT NULL AND food_format <> ''
			GROUP BY food_format
		),
		formats AS (
			SELECT format_name, SUM(dish_count)::BIGINT AS dish_count
			FROM combined
			GROUP BY format_name
		),
		applications AS (
			SELECT format_name, LIST(application ORDER BY n DESC, application ASC) AS applications
			FROM (
				SELECT ingredient_format AS format_name, specific_category AS application, COUNT(DISTINCT dish_id) AS n
				FROM scoped
				WHERE ingredient_format IS NOT NULL AND ingredient_format <> ''
					AND specific_category IS NOT NULL AND specific_category <> ''
				GROUP BY ingredient_format, specific_category
			)
			GROUP BY format_name
		)
		SELECT f.format_name, f.dish_count, t.dishes AS total_dishes, a.applications
		FROM formats f
		CROSS JOIN total t
		LEFT JOIN applications a ON a.format_name = f.format_name
		ORDER BY f.dish_count DESC, f.format_name ASC
		LIMIT ?`, s.table, where)

		res, err := s.run(gctx, "format_adoption", q, append(append([]any{}, args...), formatTopN), 0)
		if err != nil {
			return err
		}
		formatRows = res.Rows
		return nil
	})
	g.Go(func() error {
		q := fmt.Sprintf(`
		SELECT specific_category AS name, COUNT(DISTINCT dish_id) AS dish_count
		FROM %s
		WHERE %s AND specific_category IS NOT NULL AND specific_category <> ''
		GROUP BY specific_category
		ORDER BY dish_count DESC, name ASC
		LIMIT ?`, s.table, where)

		res, err := s.run(gctx, "popular_applications", q, append(append([]any{}, args...), popularApplicationTop), 0)
		if err != nil {
			return err
		}
		appRows = res.Rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &models.FormatData{
		Formats:             make([]models.FormatAdoption, 0, len(formatRows)),
		PopularApplications: make([]models.PopularApplication, 0, len(appRows)),
	}
	for _, row := range formatRows {
		count := database.Int(row, "dish_count")
		apps := make([]string, 0, formatApplicationTopN)
		for _, a := range database.List(row, "applications") {
			if len(apps) == formatApplicationTopN {
				break
			}
			if name, ok := a.(string); ok && strings.TrimSpace(name) != "" {
				apps = append(apps, name)
			}
		}
		out.Formats = append(out.Formats, models.FormatAdoption{
			Format:          database.String(row, "format_name"),
			Adoption:        Round(valueOr(Percent(count, database.Int(row, "total_dishes")), 0), 1),
			DishCount:       count,
			TopApplications: apps,
		})
	}
	for i, row := range appRows {
		out.PopularApplications = append(out.PopularApplications, models.PopularApplication{
			Name:  database.String(row, "name"),
			Count: database.Int(row, "dish_count"),
			Rank:  i + 1,
		})
	}
	return out, nil
}
