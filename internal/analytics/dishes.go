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

const topDishesLimit = 10

// DishFilter narrows the top dishes. Source is matched exactly, the rest as
// substrings. Empty fields are ignored.
type DishFilter struct {
	Source      string
	Category    string
	Subcategory string
	Cuisine     string
	Country     string
}

// TopDishes returns the best-rated dishes containing the ingredient.
func (s *Service) TopDishes(ctx context.Context, ingredient string, f DishFilter) ([]models.TopDish, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	where, args := query.NewWhereBuilder().
		AddContains("ingredient_name", ingredient).
		AddClause("dish_name IS NOT NULL").
		AddEquals("source", f.Source).
		AddContains("general_category", f.Category).
		AddContains("specific_category", f.Subcategory).
		AddContains("cuisine", f.Cuisine).
		AddContains("country", f.Country).
		Build()

	q := fmt.Sprintf(`
	SELECT dish_id, dish_name AS name, MAX(star_rating) AS rating, MAX(num_ratings) AS reviews
	FROM %s
	WHERE %s
	GROUP BY dish_id, dish_name
	ORDER BY rating DESC NULLS LAST, reviews DESC NULLS LAST, name ASC
	LIMIT %d`, s.table, where, topDishesLimit)

	res, err := s.run(ctx, "top_dishes", q, args, 0)
	if err != nil {
		return nil, err
	}

	out := make([]models.TopDish, 0, len(res.Rows))
	for _, row := range res.Rows {
		d := models.TopDish{
			Name:   database.String(row, "name"),
			Rating: RoundPtr(database.NullFloat64(row, "rating"), 2),
		}
		if row["reviews"] != nil {
			n := database.Int(row, "reviews")
			d.Reviews = &n
		}
		out = append(out, d)
	}
	return out, nil
}
