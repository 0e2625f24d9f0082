// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/flavorlens/internal/database"
	"github.com/tomtom215/flavorlens/internal/models"
)

const (
	categoryInsightCount = 5
	regionCountryLimit   = 10
)

// CategoryAnalysis joins category distribution and penetration, which run
// concurrently, and derives the analysis, insights and summary.
func (s *Service) CategoryAnalysis(ctx context.Context, ingredient string) (*models.CategoryAnalysisResponse, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}

	var dist []models.DistributionRow
	var pen []models.PenetrationRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dist, err = s.Distribution(gctx, DimCategory, ingredient, Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		pen, err = s.Penetration(gctx, DimCategory, ingredient, Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	analysis := analyzeCategories(pen)
	return &models.CategoryAnalysisResponse{
		Ingredient:   ingredient,
		Distribution: dist,
		Penetration:  pen,
		Analysis:     analysis,
		Insights:     categoryInsights(pen, dist),
		Summary:      categorySummary(ingredient, pen, analysis),
	}, nil
}

func analyzeCategories(pen []models.PenetrationRow) models.CategoryAnalysis {
	if len(pen) == 0 {
		return models.CategoryAnalysis{HighestPenetration: "Unknown", FastestGrowing: "Unknown"}
	}

	highest, fastest := pen[0], pen[0]
	var hot, declining int
	var sum float64
	for _, p := range pen {
		if p.Penetration > highest.Penetration {
			highest = p
		}
		if p.Growth > fastest.Growth {
			fastest = p
		}
		switch p.Status {
		case models.StatusHot, models.StatusRising:
			hot++
		case models.StatusDeclining:
			declining++
		}
		sum += p.Penetration
	}

	return models.CategoryAnalysis{
		HighestPenetration:     highest.Name,
		HighestPenetrationRate: highest.Penetration,
		FastestGrowing:         fastest.Name,
		FastestGrowthRate:      fastest.Growth,
		TotalCategories:        len(pen),
		HotCategories:          hot,
		DecliningCategories:    declining,
		AvgPenetration:         Round(sum/float64(len(pen)), 2),
	}
}

func categoryInsights(pen []models.PenetrationRow, dist []models.DistributionRow) []models.CategoryInsight {
	dishes := make(map[string]int, len(dist))
	for _, d := range dist {
		dishes[d.Name] = d.DishCount
	}

	out := make([]models.CategoryInsight, 0, categoryInsightCount)
	for i, p := range pen {
		if i == categoryInsightCount {
			break
		}
		var text string
		switch p.Status {
		case models.StatusHot:
			if p.Growth > 50 {
				text = fmt.Sprintf("Explosive growth (+%.0f%%) with %.1f%% penetration", p.Growth, p.Penetration)
			} else {
				text = fmt.Sprintf("Strong momentum (+%.0f%%) in established market", p.Growth)
			}
		case models.StatusRising:
			text = fmt.Sprintf("Growing adoption (+%.0f%%) with %.1f%% penetration", p.Growth, p.Penetration)
		case models.StatusStable:
			if p.Penetration > 50 {
				text = fmt.Sprintf("Mature market with %.1f%% penetration, stable performance", p.Penetration)
			} else {
				text = fmt.Sprintf("Steady %.1f%% penetration, potential for growth", p.Penetration)
			}
		case models.StatusDeclining:
			text = fmt.Sprintf("Declining adoption (%.0f%%) despite %.1f%% penetration", p.Growth, p.Penetration)
		default:
			text = fmt.Sprintf("Current penetration: %.1f%%", p.Penetration)
		}
		if n := dishes[p.Name]; n > 0 {
			text += fmt.Sprintf(" (%d dishes)", n)
		}
		out = append(out, models.CategoryInsight{
			Category:        p.Name,
			Insight:         text,
			OpportunityType: strings.ToLower(string(p.Status)),
		})
	}
	return out
}

func categorySummary(ingredient string, pen []models.PenetrationRow, a models.CategoryAnalysis) string {
	if len(pen) == 0 {
		return fmt.Sprintf("No category analysis data available for %s.", ingredient)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s shows strong presence across %d food service categories. ", titleCase(ingredient), a.TotalCategories)
	fmt.Fprintf(&b, "%s leads with %.1f%% penetration, ", a.HighestPenetration, a.HighestPenetrationRate)
	switch {
	case a.FastestGrowthRate > 30:
		fmt.Fprintf(&b, "while %s demonstrates exceptional growth (+%.0f%%). ", a.FastestGrowing, a.FastestGrowthRate)
	case a.FastestGrowthRate > 10:
		fmt.Fprintf(&b, "with %s showing solid growth (+%.0f%%). ", a.FastestGrowing, a.FastestGrowthRate)
	default:
		b.WriteString("with generally stable performance across categories. ")
	}
	if a.HotCategories > a.DecliningCategories {
		fmt.Fprintf(&b, "Market shows positive momentum with %d hot/rising categories ", a.HotCategories)
	} else {
		fmt.Fprintf(&b, "Market shows mixed signals with %d declining categories ", a.DecliningCategories)
	}
	fmt.Fprintf(&b, "and %.1f%% average penetration rate.", a.AvgPenetration)
	return b.String()
}

// SubcategoryShares returns each subcategory's share of the ingredient's
// dishes, ordered by share then name.
func (s *Service) SubcategoryShares(ctx context.Context, ingredient string, f Filter) ([]models.SubcategoryShare, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	col := dimensionColumns[DimSubcategory]
	where, args := ingredientScope(ingredient, col, f)

	q := fmt.Sprintf(`
	SELECT %[2]s AS subcategory, COUNT(DISTINCT dish_id) AS dishes
	FROM %[1]s
	WHERE %[3]s
	GROUP BY %[2]s`, s.table, col, where)

	res, err := s.run(ctx, "subcategory_share", q, args, 0)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, row := range res.Rows {
		total += database.Int(row, "dishes")
	}
	out := make([]models.SubcategoryShare, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, models.SubcategoryShare{
			Subcategory:       database.String(row, "subcategory"),
			PercentageOfTotal: Round(valueOr(Percent(database.Int(row, "dishes"), total), 0), 2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PercentageOfTotal != out[j].PercentageOfTotal {
			return out[i].PercentageOfTotal > out[j].PercentageOfTotal
		}
		return out[i].Subcategory < out[j].Subcategory
	})
	return out, nil
}

// regionOf maps a country to its region; unknown countries are "Other".
var regionOf = map[string]string{
	"USA": "North America", "United States": "North America", "Canada": "North America", "Mexico": "North America",

	"UK": "Europe", "United Kingdom": "Europe", "France": "Europe", "Germany": "Europe", "Italy": "Europe",
	"Spain": "Europe", "Netherlands": "Europe", "Belgium": "Europe", "Switzerland": "Europe", "Austria": "Europe",
	"Sweden": "Europe", "Norway": "Europe", "Denmark": "Europe", "Finland": "Europe", "Portugal": "Europe",

	"Japan": "Asia", "China": "Asia", "Korea": "Asia", "South Korea": "Asia", "Thailand": "Asia",
	"Vietnam": "Asia", "India": "Asia", "Indonesia": "Asia", "Malaysia": "Asia", "Singapore": "Asia",
	"Philippines": "Asia", "Taiwan": "Asia", "Hong Kong": "Asia",

	"Brazil": "Latin America", "Argentina": "Latin America", "Chile": "Latin America", "Colombia": "Latin America",
	"Peru": "Latin America", "Venezuela": "Latin America", "Ecuador": "Latin America", "Uruguay": "Latin America",

	"Australia": "Oceania", "New Zealand": "Oceania",

	"South Africa": "Africa", "Nigeria": "Africa", "Kenya": "Africa", "Egypt": "Africa", "Morocco": "Africa",
	"Ghana": "Africa", "Ethiopia": "Africa",
}

// Regions returns the top countries by share of the ingredient's dishes and
// their regional averages.
func (s *Service) Regions(ctx context.Context, ingredient string) (*models.GeographicData, error) {
	ingredient, err := cleanIngredient(ingredient)
	if err != nil {
		return nil, err
	}
	cur, prev := s.years()
	col := dimensionColumns[DimCountry]
	where, args := ingredientScope(ingredient, col, Filter{})

	q := fmt.Sprintf(`
	SELECT
		%[2]s AS name,
		COUNT(DISTINCT dish_id) AS dishes,
		COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS current_count,
		COUNT(DISTINCT CASE WHEN year = ? THEN dish_id END) AS previous_count
	FROM %[1]s
	WHERE %[3]s
	GROUP BY %[2]s`, s.table, col, where)

	res, err := s.run(ctx, "regions", q, append([]any{cur, prev}, args...), 0)
	if err != nil {
		return nil, err
	}
	return buildRegions(res.Rows), nil
}

func buildRegions(rows []map[string]any) *models.GeographicData {
	total := 0
	for _, row := range rows {
		total += database.Int(row, "dishes")
	}

	countries := make([]models.CountryAdoption, 0, len(rows))
	for _, row := range rows {
		prev := float64(database.Int(row, "previous_count"))
		cur := float64(database.Int(row, "current_count"))
		countries = append(countries, models.CountryAdoption{
			Country:  database.String(row, "name"),
			Adoption: Round(valueOr(Percent(database.Int(row, "dishes"), total), 0), 1),
			Growth:   Round(valueOr(Growth(prev, cur, GrowthZeroZero), 0), 1),
		})
	}
	sort.SliceStable(countries, func(i, j int) bool {
		if countries[i].Adoption != countries[j].Adoption {
			return countries[i].Adoption > countries[j].Adoption
		}
		return countries[i].Country < countries[j].Country
	})
	if len(countries) > regionCountryLimit {
		countries = countries[:regionCountryLimit]
	}

	type agg struct {
		adoption, growth float64
		n                int
	}
	byRegion := make(map[string]*agg)
	for _, c := range countries {
		region, ok := regionOf[c.Country]
		if !ok {
			region = "Other"
		}
		a, ok := byRegion[region]
		if !ok {
			a = &agg{}
			byRegion[region] = a
		}
		a.adoption += c.Adoption
		a.growth += c.Growth
		a.n++
	}

	insights := make([]models.RegionalInsight, 0, len(byRegion))
	for name, a := range byRegion {
		insights = append(insights, models.RegionalInsight{
			Name:     name,
			Adoption: Round(a.adoption/float64(a.n), 1),
			Growth:   Round(a.growth/float64(a.n), 1),
		})
	}
	sort.Slice(insights, func(i, j int) bool {
		if insights[i].Adoption != insights[j].Adoption {
			return insights[i].Adoption > insights[j].Adoption
		}
		return insights[i].Name < insights[j].Name
	})

	return &models.GeographicData{Regions: countries, RegionalInsights: insights}
}
