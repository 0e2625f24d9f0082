// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package testinfra

import (
	"context"
	"testing"

	"github.com/tomtom215/flavorlens/internal/database"
)

func TestSeedDishes(t *testing.T) {
	exec := NewExecutor(t)
	SeedDishes(t, exec,
		Dish{ID: 1, Name: "Latte", Year: 2024, Category: "Beverages", Rating: 4.5,
			Ingredients: []Ingredient{Aromatic("matcha"), Background("milk")}},
		Dish{ID: 2, Name: "Mochi", Year: 2023,
			Ingredients: []Ingredient{Aromatic("Matcha")}},
	)

	res, err := exec.Execute(context.Background(),
		`SELECT COUNT(*) AS rows_total, COUNT(DISTINCT dish_id) AS dishes,
		        COUNT(DISTINCT ingredient_id) AS ingredients,
		        COUNT(star_rating) AS rated, COUNT(general_category) AS categorized
		 FROM ingredient_details`, nil, database.Options{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	row := res.Rows[0]
	checks := map[string]int64{
		"rows_total":  3,
		"dishes":      2,
		"ingredients": 2, // "matcha" and "Matcha" share an id
		"rated":       1,
		"categorized": 2,
	}
	for col, want := range checks {
		if got := database.Int64(row, col); got != want {
			t.Errorf("%s = %d, want %d", col, got, want)
		}
	}
}

func TestSeedMentions(t *testing.T) {
	exec := NewExecutor(t)
	CreateAttributeTable(t, exec, "ingredient_flavor", "flavor_attribute")
	SeedMentions(t, exec, "ingredient_flavor",
		Mention{Ingredient: "matcha", Attribute: "Earthy", Year: 2023, Rating: 4},
		Mention{Ingredient: "matcha", Attribute: "bitter", Year: 2024},
	)

	res, err := exec.Execute(context.Background(),
		`SELECT COUNT(*) AS n FROM ingredient_flavor WHERE ingredient_name = ?`,
		[]any{"matcha"}, database.Options{})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := database.Int64(res.Rows[0], "n"); got != 2 {
		t.Errorf("n = %d, want 2", got)
	}
}
