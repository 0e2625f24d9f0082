// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/database/query"
	"github.com/tomtom215/flavorlens/internal/models"
)

const (
	attributeTopN    = 6
	attributeDetails = 10
	keyAttributeTopN = 5
)

type attributeSource struct {
	kind, table, column string
}

// attributeSources are the consumer-insight tables in documentation order.
var attributeSources = []attributeSource{
	{"flavor", "ingredient_flavor", "flavor_attribute"},
	{"texture", "ingredient_texture", "texture_attribute"},
	{"aroma", "ingredient_aroma", "aroma_attribute"},
	{"diet", "ingredient_diet", "diet_attribute"},
	{"functional_health", "ingredient_functional_health", "functional_health_attribute"},
	{"occasions", "ingredient_occasions", "occasion_attribute"},
	{"convenience", "ingredient_convenience", "convenience_attribute"},
	{"social", "ingredient_social", "social_attribute"},
	{"emotional", "ingredient_emotional", "emotional_attribute"},
	{"cooking_technique", "ingredient_cooking_technique", "cooking_technique_attribute"},
}

// AttributeTypes returns the supported attribute types.
func AttributeTypes() []string {
	out := make([]string, len(attributeSources))
	for i, src := range attributeSources {
		out[i] = src.kind
	}
	return out
}

func lookupAttribute(kind string) (attributeSource, bool) {
	for _, src := range attributeSources {
		if src.kind == kind {
			return src, true
		}
	}
	return attributeSource{}, false
}

// YearRange bounds the consumer-insight mentions. Nil bounds are open.
type YearRange struct {
	Start *int
	End   *int
}

// ConsumerInsights returns the top attributes of one type mentioned for the
// ingredient, their yearly trend and the derived insights.
func (s *Service) ConsumerInsights(ctx context.Context, ingredient, kind string, years YearRange) (*models.AttributeInsightsResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	src, ok := lookupAttribute(kind)
	if !ok {
		return nil, fmt.Errorf("unsupported attribute type %q", kind)
	}

	normalized := fmt.Sprintf("LOWER(TRIM(%s))", src.column)
	scope := func() *query.WhereBuilder {
		return query.NewWhereBuilder().
			AddContains("ingredient_name", ingredient).
			AddClause(fmt.Sprintf("%[1]s IS NOT NULL AND LENGTH(TRIM(%[1]s)) > 0", src.column)).
			AddYearRange("year", years.Start, years.End)
	}

	where, args := scope().Build()
	dist, err := s.run(ctx, "insights_distribution_"+kind, fmt.Sprintf(`
	WITH counts AS (
		SELECT %[3]s AS attribute, COUNT(*) AS mentions
		FROM %[1]s
		WHERE %[2]s
		GROUP BY %[3]s
	)
	SELECT attribute, mentions, SUM(mentions) OVER () AS total_mentions
	FROM counts
	ORDER BY mentions DESC, attribute ASC
	LIMIT %[4]d`, src.table, where, normalized, attributeTopN), args, 0)
	if err != nil {
		return nil, err
	}

	top := make([]string, 0, len(dist.Rows))
	attributes := make([]models.Attribute, 0, len(dist.Rows))
	for _, row := range dist.Rows {
		raw := database.String(row, "attribute")
		top = append(top, raw)
		attributes = append(attributes, models.Attribute{
			Name:  capitalize(raw),
			Value: Round(valueOr(Percent(database.Int(row, "mentions"), database.Int(row, "total_mentions")), 0), 1),
		})
	}

	var yearly, details []map[string]any
	g, gctx := errgroup.WithContext(ctx)
	if len(top) > 0 {
		g.Go(func() error {
			in := make([]any, len(top))
			for i, t := range top {
				in[i] = t
			}
			where, args := scope().AddIn(normalized, in...).AddClause("year IS NOT NULL").Build()
			res, err := s.run(gctx, "insights_trends_"+kind, fmt.Sprintf(`
			SELECT year, %[3]s AS attribute, COUNT(*) AS mentions
			FROM %[1]s
			WHERE %[2]s
			GROUP BY year, %[3]s
			ORDER BY year ASC, attribute ASC`, src.table, where, normalized), args, 0)
			if err != nil {
				return err
			}
			yearly = res.Rows
			return nil
		})
	}
	g.Go(func() error {
		where, args := scope().Build()
		res, err := s.run(gctx, "insights_details_"+kind, fmt.Sprintf(`
		SELECT %[3]s AS attribute, COUNT(*) AS mentions, AVG(star_rating) AS avg_rating
		FROM %[1]s
		WHERE %[2]s
		GROUP BY %[3]s
		ORDER BY mentions DESC, attribute ASC
		LIMIT %[4]d`, src.table, where, src.column, attributeDetails), args, 0)
		if err != nil {
			return err
		}
		details = res.Rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	trends := buildAttributeTrends(top, yearly)
	return &models.AttributeInsightsResponse{
		Attributes:    attributes,
		Trends:        trends,
		Insights:      attributeInsights(kind, attributes, trends, details),
		AttributeType: kind,
	}, nil
}

// buildAttributeTrends turns (year, attribute, mentions) rows into one point
// per year holding each top attribute's share of that year's mentions among
// the top attributes. Attributes missing in a year are 0.
func buildAttributeTrends(top []string, rows []map[string]any) []models.AttributeTrendPoint {
	counts := make(map[int]map[string]int)
	for _, row := range rows {
		y := database.Int(row, "year")
		if counts[y] == nil {
			counts[y] = make(map[string]int, len(top))
		}
		counts[y][database.String(row, "attribute")] += database.Int(row, "mentions")
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.AttributeTrendPoint, 0, len(years))
	for _, y := range years {
		total := 0
		for _, n := range counts[y] {
			total += n
		}
		point := models.AttributeTrendPoint{"year": strconv.Itoa(y)}
		for _, attr := range top {
			point[capitalize(attr)] = Round(valueOr(Percent(counts[y][attr], total), 0), 1)
		}
		out = append(out, point)
	}
	return out
}

func trendValue(p models.AttributeTrendPoint, name string) float64 {
	v, _ := p[name].(float64)
	return v
}

func attributeInsights(kind string, attributes []models.Attribute, trends []models.AttributeTrendPoint, details []map[string]any) models.AttributeInsights {
	in := models.AttributeInsights{
		KeyAttributes: make([]models.KeyAttribute, 0, keyAttributeTopN),
		AttributeType: kind,
	}

	if len(attributes) > 0 {
		dominant := attributes[0]
		for _, a := range attributes[1:] {
			if a.Value > dominant.Value {
				dominant = a
			}
		}
		in.DominantAttribute = dominant.Name
	}

	if len(trends) >= 2 {
		first, last := trends[0], trends[len(trends)-1]
		var growing, declining string
		var maxGrowth, minGrowth float64
		found := false
		for _, a := range attributes {
			start := trendValue(first, a.Name)
			if start <= 0 {
				continue
			}
			g := (trendValue(last, a.Name) - start) / start * 100
			if !found || g > maxGrowth {
				growing, maxGrowth = a.Name, g
			}
			if !found || g < minGrowth {
				declining, minGrowth = a.Name, g
			}
			found = true
		}
		if found {
			in.GrowingTrend = growing
			in.DecliningTrend = declining
			if minGrowth < 0 {
				minGrowth = -minGrowth
			}
			in.TrendSummary = fmt.Sprintf("Over the analysis period, %s %s preferences have grown by %.1f%%, while %s preferences have declined by %.1f%%.",
				growing, kind, maxGrowth, declining, minGrowth)
		}
	}

	for _, row := range details {
		if len(in.KeyAttributes) == keyAttributeTopN {
			break
		}
		in.KeyAttributes = append(in.KeyAttributes, models.KeyAttribute{
			Attribute: database.String(row, "attribute"),
			Mentions:  database.Int(row, "mentions"),
			AvgRating: Round(valueOr(database.NullFloat64(row, "avg_rating"), 0), 2),
		})
	}
	return in
}
