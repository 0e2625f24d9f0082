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

// Pairing list limits.
const (
	DefaultPairingsLimit = 10
	MaxPairingsLimit     = 100
	pairingMinDishes     = 3
	pairingTopItems      = 4
)

// PairingSortColumns maps sort_by values to ranked columns.
var PairingSortColumns = map[string]string{
	"share_percent": "r.share_percent",
	"growth":        "r.growth",
	"appeal_score":  "r.appeal_score",
	"dish_count":    "r.dish_count",
	"partner_name":  "r.partner",
}

// PairingSortKeys lists PairingSortColumns in documentation order.
var PairingSortKeys = []string{"share_percent", "growth", "appeal_score", "dish_count", "partner_name"}

// SortDirections maps sort_direction values to SQL.
var SortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// LifecyclePhases are the pairing lifecycle labels.
var LifecyclePhases = []string{"emerging", "growing", "mature"}

// PairingsParams selects one page of pairings.
type PairingsParams struct {
	Category       string
	Page           int
	Limit          int
	SortBy         string
	SortDirection  string
	LifecyclePhase string
	Search         string
}

func (p *PairingsParams) normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPairingsLimit
	}
	if p.Limit > MaxPairingsLimit {
		p.Limit = MaxPairingsLimit
	}
	if _, ok := PairingSortColumns[p.SortBy]; !ok {
		p.SortBy = "share_percent"
	}
	if _, ok := SortDirections[p.SortDirection]; !ok {
		p.SortDirection = "desc"
	}
}

// pairingCTEs returns the shared WITH clause ending in the ranked CTE, with
// its arguments in placeholder order.
func (s *Service) pairingCTEs(ingredient, category string) (string, []any) {
	cur, prev := s.years()
	baseWhere, baseArgs := query.NewWhereBuilder().
		AddContains("ingredient_name", ingredient).
		AddClause("ingredient_role = 'flavor-aromatic'").
		AddContains("general_category", category).
		Build()

	sql := fmt.Sprintf(`
	WITH base AS (
		SELECT dish_id, dish_name, general_category, year, star_rating, ingredient_id, flavor_role
		FROM %[1]s
		WHERE %[2]s
	),
	base_totals AS (
		SELECT
			COUNT(DISTINCT dish_id) AS dishes,
			COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_dishes,
			COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS previous_dishes
		FROM base
	),
	pair_dishes AS (
		SELECT
			TRIM(p.ingredient_name) AS partner,
			b.dish_id,
			ANY_VALUE(b.dish_name) AS dish_name,
			ANY_VALUE(b.general_category) AS category,
			ANY_VALUE(b.year) AS year,
			MAX(b.star_rating) AS rating,
			BOOL_OR(b.flavor_role = 'dominant') AS base_dominant,
			BOOL_OR(p.flavor_role = 'dominant') AS partner_dominant
		FROM base b
		JOIN %[1]s p ON p.dish_id = b.dish_id
		WHERE %[3]s
			AND (p.ingredient_role IS NULL OR p.ingredient_role <> 'background')
			AND p.ingredient_id <> b.ingredient_id
		GROUP BY TRIM(p.ingredient_name), b.dish_id
	),
	metrics AS (
		SELECT
			partner,
			COUNT(*) AS dish_count,
			COUNT(CASE WHEN year = ? THEN 1 END) AS current_count,
			COUNT(CASE WHEN year = ? THEN 1 END) AS previous_count,
			AVG(rating) AS avg_rating,
			COUNT(CASE WHEN base_dominant THEN 1 END) AS base_dominant_count,
			COUNT(CASE WHEN partner_dominant THEN 1 END) AS partner_dominant_count
		FROM pair_dishes
		GROUP BY partner
		HAVING COUNT(*) >= %[4]d
	),
	penetration AS (
		SELECT
			m.*,
			bt.dishes AS base_dishes,
			CASE WHEN bt.current_dishes > 0 THEN m.current_count * 100.0 / bt.current_dishes ELSE 0 END AS current_pen,
			CASE WHEN bt.previous_dishes > 0 THEN m.previous_count * 100.0 / bt.previous_dishes ELSE 0 END AS previous_pen
		FROM metrics m
		CROSS JOIN base_totals bt
	),
	ranked AS (
		SELECT
			partner,
			dish_count,
			ROUND(dish_count * 100.0 / NULLIF(base_dishes, 0), 1) AS share_percent,
			CASE
				WHEN previous_pen > 0 THEN ROUND((current_pen - previous_pen) * 100.0 / previous_pen, 1)
				WHEN current_pen > 0 THEN 100.0
				ELSE 0.0
			END AS growth,
			LEAST(100, GREATEST(0, ROUND(COALESCE(avg_rating, 0) * 20)))::INTEGER AS appeal_score,
			ROUND(base_dominant_count * 100.0 / dish_count)::INTEGER AS base_dominant_percent,
			ROUND(partner_dominant_count * 100.0 / dish_count)::INTEGER AS partner_dominant_percent,
			CASE
				WHEN current_count * 10 > previous_count * 12 THEN 'growing'
				WHEN dish_count > 8 THEN 'mature'
				ELSE 'emerging'
			END AS lifecycle_phase
		FROM penetration
	)`, s.table, baseWhere, query.NotContainsClause("p.ingredient_name"), pairingMinDishes)

	args := append([]any{}, baseArgs...)
	args = append(args, cur, prev, query.ContainsPattern(ingredient), cur, prev)
	return sql, args
}

// Pairings returns one page of the ingredients that co-occur with the
// queried one in at least three dishes. The page and the total count run
// concurrently.
func (s *Service) Pairings(ctx context.Context, ingredient string, p PairingsParams) (*models.PairingsResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	p.normalize()

	ctes, cteArgs := s.pairingCTEs(ingredient, p.Category)
	filter, filterArgs := query.NewWhereBuilder().
		AddEquals("r.lifecycle_phase", strings.ToLower(strings.TrimSpace(p.LifecyclePhase))).
		AddContains("r.partner", p.Search).
		Build()
	scoped := append(append([]any{}, cteArgs...), filterArgs...)

	var rows []map[string]any
	var total int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := fmt.Sprintf(`%s,
	top_categories AS (
		SELECT partner, LIST({'category': category, 'n': n} ORDER BY n DESC, category ASC) AS categories
		FROM (
			SELECT partner, category, COUNT(*) AS n
			FROM pair_dishes
			WHERE category IS NOT NULL AND category <> ''
			GROUP BY partner, category
		)
		GROUP BY partner
	),
	top_dishes AS (
		SELECT partner, LIST(dish_name ORDER BY rating DESC NULLS LAST, dish_name ASC) AS dishes
		FROM pair_dishes
		WHERE dish_name IS NOT NULL
		GROUP BY partner
	)
	SELECT r.*, c.categories, d.dishes
	FROM ranked r
	LEFT JOIN top_categories c ON c.partner = r.partner
	LEFT JOIN top_dishes d ON d.partner = r.partner
	WHERE %s
	ORDER BY %s %s, r.partner ASC
	LIMIT ? OFFSET ?`, ctes, filter, PairingSortColumns[p.SortBy], SortDirections[p.SortDirection])

		args := append(append([]any{}, scoped...), p.Limit, (p.Page-1)*p.Limit)
		res, err := s.run(gctx, "pairings_page", q, args, 0)
		if err != nil {
			return err
		}
		rows = res.Rows
		return nil
	})
	g.Go(func() error {
		q := fmt.Sprintf(`%s
	SELECT COUNT(*) AS total
	FROM ranked r
	WHERE %s`, ctes, filter)
		res, err := s.run(gctx, "pairings_count", q, scoped, 0)
		if err != nil {
			return err
		}
		if len(res.Rows) > 0 {
			total = database.Int(res.Rows[0], "total")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pairings := make([]models.Pairing, 0, len(rows))
	for _, row := range rows {
		pairings = append(pairings, buildPairing(ingredient, row))
	}

	pages := (total + p.Limit - 1) / p.Limit
	return &models.PairingsResponse{
		Ingredient:    titleCase(ingredient),
		Pairings:      pairings,
		TotalPairings: total,
		Pagination: models.PaginationInfo{
			Page:        p.Page,
			Limit:       p.Limit,
			TotalPages:  pages,
			HasNext:     p.Page < pages,
			HasPrevious: p.Page > 1,
		},
	}, nil
}

func buildPairing(ingredient string, row map[string]any) models.Pairing {
	partner := database.String(row, "partner")
	dishCount := database.Int(row, "dish_count")

	apps := make([]models.TopApplication, 0, pairingTopItems)
	for _, c := range database.Structs(row, "categories") {
		if len(apps) == pairingTopItems {
			break
		}
		pct := 0
		if dishCount > 0 {
			pct = roundInt(float64(database.Int(c, "n")) * 100 / float64(dishCount))
		}
		apps = append(apps, models.TopApplication{
			Application: database.String(c, "category"),
			Percentage:  pct,
		})
	}

	dishes := make([]string, 0, pairingTopItems)
	for _, d := range database.List(row, "dishes") {
		if len(dishes) == pairingTopItems {
			break
		}
		if name, ok := d.(string); ok {
			dishes = append(dishes, strings.TrimSpace(name))
		}
	}

	return models.Pairing{
		Title:                     titleCase(ingredient) + " + " + titleCase(partner),
		PartnerName:               titleCase(partner),
		SharePercent:              database.Float64(row, "share_percent"),
		Growth:                    database.Float64(row, "growth"),
		LifecyclePhase:            database.String(row, "lifecycle_phase"),
		AppealScore:               database.Int(row, "appeal_score"),
		DominantIngredientPercent: database.Int(row, "base_dominant_percent"),
		PartnerIngredientPercent:  database.Int(row, "partner_dominant_percent"),
		DishCount:                 dishCount,
		TopApplications:           apps,
		TopDishes:                 dishes,
	}
}
