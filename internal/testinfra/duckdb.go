// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package testinfra

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/flavorlens/internal/config"
	"github.com/tomtom215/flavorlens/internal/database"
)

// DishTable is the fixture's dish table name.
const DishTable = "ingredient_details"

// testDBSemaphore limits concurrent in-memory DuckDB fixtures to one per
// process. It is held for the entire test lifecycle.
var testDBSemaphore = make(chan struct{}, 1)

const dishSchema = `CREATE TABLE ingredient_details (
	dish_id             INTEGER,
	dish_name           VARCHAR,
	dish_date_created   TIMESTAMP,
	year                INTEGER,
	general_category    VARCHAR,
	specific_category   VARCHAR,
	cuisine             VARCHAR,
	country             VARCHAR,
	source              VARCHAR,
	star_rating         DOUBLE,
	num_ratings         INTEGER,
	ingredient_id       INTEGER,
	ingredient_name     VARCHAR,
	ingredient_role     VARCHAR,
	flavor_role         VARCHAR,
	season              VARCHAR,
	serving_temperature VARCHAR,
	ingredient_format   VARCHAR,
	food_format         VARCHAR
)`

// Ingredient is one ingredient occurrence inside a Dish. A zero ID is derived
// from the lower-cased name so the same name always maps to the same id.
type Ingredient struct {
	ID         int
	Name       string
	Role       string
	FlavorRole string
	Format     string
}

// Dish describes one dish; it becomes one table row per ingredient. Empty
// strings and a zero Rating are stored as NULL.
type Dish struct {
	ID          int
	Name        string
	Year        int
	Category    string
	Subcategory string
	Cuisine     string
	Country     string
	Source      string
	Rating      float64
	NumRatings  int
	Season      string
	Temperature string
	FoodFormat  string
	Ingredients []Ingredient
}

// Mention is one row of a consumer-insight attribute table.
type Mention struct {
	Ingredient string
	Attribute  string
	Year       int
	Rating     float64
	NumRatings int
}

// Aromatic returns a flavor-aromatic ingredient.
func Aromatic(name string) Ingredient {
	return Ingredient{Name: name, Role: "flavor-aromatic", FlavorRole: "dominant"}
}

// Supporting returns a supporting flavor ingredient.
func Supporting(name string) Ingredient {
	return Ingredient{Name: name, Role: "flavor-aromatic", FlavorRole: "supporting"}
}

// Background returns a background ingredient.
func Background(name string) Ingredient {
	return Ingredient{Name: name, Role: "background"}
}

// DatabaseConfig returns executor settings for an in-memory engine.
func DatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		URL:          "",
		Table:        DishTable,
		QueryTimeout: 30 * time.Second,
		Breaker: config.BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      2 * time.Minute,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

// NewExecutor returns an executor over a fresh in-memory DuckDB holding an
// empty dish table. The executor is closed when the test completes.
func NewExecutor(t testing.TB) *database.Executor {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	exec := database.NewExecutor(DatabaseConfig(), nil, 0)
	t.Cleanup(func() {
		if err := exec.Close(); err != nil {
			t.Errorf("close fixture: %v", err)
		}
	})

	if err := exec.Exec(context.Background(), dishSchema); err != nil {
		t.Fatalf("create dish table: %v", err)
	}
	return exec
}

// SeedDishes inserts dishes into the dish table.
func SeedDishes(t testing.TB, exec *database.Executor, dishes ...Dish) {
	t.Helper()

	ctx := context.Background()
	for _, d := range dishes {
		created := time.Date(d.Year, time.March, 1, 12, 0, 0, 0, time.UTC)
		for _, ing := range d.Ingredients {
			id := ing.ID
			if id == 0 {
				id = ingredientID(ing.Name)
			}
			err := exec.Exec(ctx,
				`INSERT INTO ingredient_details VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.ID, nullable(d.Name), created, d.Year,
				nullable(d.Category), nullable(d.Subcategory), nullable(d.Cuisine), nullable(d.Country),
				nullable(d.Source), nullableFloat(d.Rating), d.NumRatings,
				id, ing.Name, nullable(ing.Role), nullable(ing.FlavorRole),
				nullable(d.Season), nullable(d.Temperature),
				nullable(ing.Format), nullable(d.FoodFormat),
			)
			if err != nil {
				t.Fatalf("seed dish %d: %v", d.ID, err)
			}
		}
	}
}

// CreateAttributeTable creates an empty consumer-insight table. table and
// column must be fixed identifiers.
func CreateAttributeTable(t testing.TB, exec *database.Executor, table, column string) {
	t.Helper()

	stmt := fmt.Sprintf(`CREATE TABLE %s (ingredient_name VARCHAR, %s VARCHAR, year INTEGER, star_rating DOUBLE, num_ratings INTEGER)`, table, column)
	if err := exec.Exec(context.Background(), stmt); err != nil {
		t.Fatalf("create %s: %v", table, err)
	}
}

// SeedMentions inserts attribute mentions into table.
func SeedMentions(t testing.TB, exec *database.Executor, table string, mentions ...Mention) {
	t.Helper()

	stmt := fmt.Sprintf(`INSERT INTO %s VALUES (?, ?, ?, ?, ?)`, table)
	for _, m := range mentions {
		if err := exec.Exec(context.Background(), stmt, m.Ingredient, m.Attribute, m.Year, nullableFloat(m.Rating), m.NumRatings); err != nil {
			t.Fatalf("seed %s: %v", table, err)
		}
	}
}

func ingredientID(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(name)))
	return int(h.Sum32() & 0x7fffffff)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}
