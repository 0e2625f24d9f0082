// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/database/query"
	"github.com/tomtom215/flavorlens/internal/models"
)

const textureTopN = 12

// textureScales names the low and high ends of each known texture axis.
var textureScales = map[string][2]string{
	"creamy":  {"Watery", "Creamy"},
	"smooth":  {"Rough", "Smooth"},
	"thick":   {"Thin", "Thick"},
	"frothy":  {"Flat", "Frothy"},
	"powdery": {"Solid", "Powdery"},
	"velvety": {"Rough", "Velvety"},
	"sticky":  {"Non-sticky", "Sticky"},
	"silky":   {"Coarse", "Silky"},
	"grainy":  {"Fine", "Grainy"},
	"fluffy":  {"Dense", "Fluffy"},
	"crunchy": {"Soft", "Crunchy"},
	"chewy":   {"Tender", "Chewy"},
}

var texturePalette = []string{
	"#00255a", "#199ef3", "#10B981", "#F59E0B", "#8B5CF6", "#EF4444",
	"#3179c0", "#5590d6", "#84abdd", "#adc5e5", "#c3d5ec", "#d1e3f6",
}

func textureScale(name string) []string {
	if s, ok := textureScales[strings.ToLower(name)]; ok {
		return []string{s[0], s[1]}
	}
	return []string{"Low", "High"}
}

// TextureAttributes returns the ingredient's twelve most mentioned textures,
// matched case-insensitively, with their share of all its texture mentions, and yearly mention counts of
// the tracked textures for every year the texture table covers within the
// trend window.
func (s *Service) TextureAttributes(ctx context.Context, ingredient string) (*models.TextureData, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	src, _ := lookupAttribute("texture")
	where, args := query.NewWhereBuilder().
		AddContains("ingredient_name", ingredient).
		AddClause(fmt.Sprintf("%[1]s IS NOT NULL AND TRIM(%[1]s) <> ''", src.column)).
		Build()
	last, _ := s.years()

	var attrRows, trendRows []map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q := fmt.Sprintf(`
		SELECT
			LOWER(TRIM(%[2]s)) AS name,
			COUNT(*) AS mentions,
			SUM(COUNT(*)) OVER () AS total_mentions,
			AVG(star_rating) AS avg_rating,
			COALESCE(SUM(num_ratings), 0) AS total_ratings
		FROM %[1]s
		WHERE %[3]s
		GROUP BY LOWER(TRIM(%[2]s))
		ORDER BY mentions DESC, name ASC
		LIMIT ?`, src.table, src.column, where)

		res, err := s.run(gctx, "texture_attributes", q, append(append([]any{}, args...), textureTopN), 0)
		if err != nil {
			return err
		}
		attrRows = res.Rows
		return nil
	})
	g.Go(func() error {
		q := fmt.Sprintf(`
		WITH years AS (
			SELECT DISTINCT year FROM %[1]s WHERE year >= ? AND year <= ?
		),
		counts AS (
			SELECT year, LOWER(TRIM(%[2]s)) AS name, COUNT(*) AS mentions
			FROM %[1]s
			WHERE %[3]s
			GROUP BY year, LOWER(TRIM(%[2]s))
		)
		SELECT y.year, c.name, c.mentions
		FROM years y
		LEFT JOIN counts c ON c.year = y.year
		ORDER BY y.year ASC`, src.table, src.column, where)

		params := append([]any{s.cfg.TrendStartYear, last}, args...)
		res, err := s.run(gctx, "texture_trends", q, params, 0)
		if err != nil {
			return err
		}
		trendRows = res.Rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &models.TextureData{
		Attributes: make([]models.TextureAttribute, 0, len(attrRows)),
		Trends:     buildTextureTrends(trendRows),
	}
	for i, row := range attrRows {
		name := capitalize(database.String(row, "name"))
		out.Attributes = append(out.Attributes, models.TextureAttribute{
			Name:         name,
			Value:        Round(valueOr(Percent(database.Int(row, "mentions"), database.Int(row, "total_mentions")), 0), 1),
			Count:        database.Int(row, "mentions"),
			AvgRating:    database.Float64(row, "avg_rating"),
			TotalRatings: database.Int(row, "total_ratings"),
			Scale:        textureScale(name),
			Fill:         texturePalette[i%len(texturePalette)],
		})
	}
	return out, nil
}

// buildTextureTrends folds (year, name, mentions) rows into one point per
// year. Untracked textures are ignored; missing ones count 0.
func buildTextureTrends(rows []map[string]any) []models.TextureTrend {
	out := make([]models.TextureTrend, 0)
	index := make(map[int]int)
	for _, row := range rows {
		year := database.Int(row, "year")
		i, ok := index[year]
		if !ok {
			i = len(out)
			index[year] = i
			out = append(out, models.TextureTrend{Year: strconv.Itoa(year)})
		}

		n := database.Int(row, "mentions")
		t := &out[i]
		switch database.String(row, "name") {
		case "creamy":
			t.Creamy = n
		case "smooth":
			t.Smooth = n
		case "thick":
			t.Thick = n
		case "frothy":
			t.Frothy = n
		case "powdery":
			t.Powdery = n
		}
	}
	return out
}
